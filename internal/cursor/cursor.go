// Package cursor implements component D: purely textual cursor
// localization and the AST/scope narrowing it feeds into (spec §4.D).
package cursor

import (
	"github.com/cguebert/luaautocomplete/internal/ast"
	"github.com/cguebert/luaautocomplete/internal/scope"
)

// GetBlockAtPos returns the innermost Block (by DFS over root's
// descendants) whose span covers pos (spec §4.D "getBlockAtPos").
func GetBlockAtPos(root *ast.Block, pos int) (*ast.Block, bool) {
	return scope.GetBlockAtPos(root, pos)
}

// GetScopeAtPos narrows rootScope to the innermost scope whose defining
// block covers pos (spec §4.D "getScopeAtPos").
func GetScopeAtPos(rootScope *scope.Scope, pos int) *scope.Scope {
	return scope.GetScopeAtPos(rootScope, pos)
}

func isNameChar(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// ExtractVariableAtPos reconstructs a dotted/colon-chained variable-or-call
// fragment around pos, purely from the text (spec §4.D
// "extractVariableAtPos"); the buffer may be syntactically invalid
// elsewhere. Returns "" if pos is not on a recognizable fragment.
func ExtractVariableAtPos(text string, pos int) string {
	if pos < 0 || pos >= len(text) {
		return ""
	}
	ch := text[pos]
	if !isNameChar(ch) && ch != ')' {
		return ""
	}

	var begin, end int
	if ch == ')' {
		open, ok := matchingOpenParen(text, pos)
		if !ok {
			return ""
		}
		begin, end = absorbCallee(text, open), pos+1
	} else {
		begin, end = nameExtent(text, pos)
	}

	for {
		left := skipWhitespaceLeft(text, begin-1)
		if left < 0 {
			break
		}
		c := text[left]
		if c != '.' && c != ':' {
			break
		}
		prev := skipWhitespaceLeft(text, left-1)
		if prev < 0 {
			break
		}
		switch {
		case text[prev] == ')':
			open, ok := matchingOpenParen(text, prev)
			if !ok {
				return text[begin:end]
			}
			begin = absorbCallee(text, open)
		case isNameChar(text[prev]):
			nb, _ := nameExtent(text, prev)
			begin = nb
		default:
			return text[begin:end]
		}
	}
	return text[begin:end]
}

// absorbCallee extends a balanced-group's start backward across an
// immediately preceding name, e.g. the "foo" of "foo(...)" (spec §4.D rule
// 3: "treat its start as if it were on a name and continue the leftward
// walk"). Returns openIdx unchanged if no name character precedes it.
func absorbCallee(text string, openIdx int) int {
	prev := skipWhitespaceLeft(text, openIdx-1)
	if prev < 0 || !isNameChar(text[prev]) {
		return openIdx
	}
	begin, _ := nameExtent(text, prev)
	return begin
}

func nameExtent(text string, pos int) (int, int) {
	b, e := pos, pos+1
	for b > 0 && isNameChar(text[b-1]) {
		b--
	}
	for e < len(text) && isNameChar(text[e]) {
		e++
	}
	return b, e
}

func skipWhitespaceLeft(text string, i int) int {
	for i >= 0 && isSpace(text[i]) {
		i--
	}
	return i
}

// matchingOpenParen scans left from the ')' at closeIdx to its matching
// '(' by plain depth counting. String literals are not special-cased
// (spec §4.D: "ignores string literals, a known simplification").
func matchingOpenParen(text string, closeIdx int) (int, bool) {
	depth := 0
	for i := closeIdx; i >= 0; i-- {
		switch text[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
