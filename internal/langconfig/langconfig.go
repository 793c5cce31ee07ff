// Package langconfig holds small Lua-language constants shared across the
// parser, cursor, and editor-integration layers: recognized source file
// extensions and the reserved keyword set, kept here rather than duplicated
// at each call site.
package langconfig

// SourceFileExtensions are the file extensions an editor integration should
// treat as Lua source.
var SourceFileExtensions = []string{".lua"}

// HasSourceExt returns true if path ends with a recognized Lua extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// Keywords is the Lua 5.3 reserved word set (mirrors internal/token's
// keyword table; kept as plain strings here for hosts that want the list
// without importing the lexer).
var Keywords = []string{
	"and", "break", "do", "else", "elseif", "end", "false", "for",
	"function", "goto", "if", "in", "local", "nil", "not", "or",
	"repeat", "return", "then", "true", "until", "while",
}

// IsKeyword reports whether word is a reserved Lua keyword.
func IsKeyword(word string) bool {
	for _, k := range Keywords {
		if k == word {
			return true
		}
	}
	return false
}
