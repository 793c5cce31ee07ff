// Package session implements component E, the query surface (spec §4.E):
// a single in-memory Lua source buffer with its derived AST, position
// index, and scope tree, plus the positional query operations an editor
// calls on every keystroke or cursor move.
package session

import (
	"github.com/google/uuid"

	"github.com/cguebert/luaautocomplete/internal/ast"
	"github.com/cguebert/luaautocomplete/internal/cursor"
	"github.com/cguebert/luaautocomplete/internal/parser"
	"github.com/cguebert/luaautocomplete/internal/scope"
	"github.com/cguebert/luaautocomplete/internal/typesystem"
)

// snapshot is the atomically-swapped unit of derived state (spec §5:
// "swap is atomic at the logical level … must not expose half-swapped
// state, e.g. new AST with old position index").
type snapshot struct {
	source    string
	block     *ast.Block
	positions *ast.PositionIndex
	rootScope *scope.Scope
}

// Session owns one source buffer's AST, position index, and scope tree
// (spec §5 "a single logical session"). It is not safe for concurrent use;
// callers serialize access externally.
type Session struct {
	ID          uuid.UUID
	userDefined *scope.UserDefined
	current     snapshot
}

// New creates a Session bound to userDefined (borrowed for the session's
// lifetime, never copied — spec §5 "Resource policy"). A nil userDefined
// is treated as an empty ambient environment.
func New(userDefined *scope.UserDefined) *Session {
	if userDefined == nil {
		userDefined = scope.NewUserDefined()
	}
	return &Session{
		ID:          uuid.New(),
		userDefined: userDefined,
		current: snapshot{
			block:     &ast.Block{},
			positions: ast.NewPositionIndex(),
			rootScope: scope.Analyze(&ast.Block{}, userDefined),
		},
	}
}

// UpdateProgram parses source and, on success, atomically swaps the
// session's AST, position index, and scope tree; on failure the previous
// state is retained (spec §4.E "updateProgram"). It is the only query-
// surface operation whose success/failure is exposed to the caller.
func (s *Session) UpdateProgram(source string) bool {
	result := parser.ParseBlock(source, true)
	if !result.Parsed {
		return false
	}
	s.current = snapshot{
		source:    source,
		block:     result.Block,
		positions: result.Positions,
		rootScope: scope.Analyze(result.Block, s.userDefined),
	}
	return true
}

// Positions returns the element index produced by the last successful
// UpdateProgram, for syntax-coloring integrations.
func (s *Session) Positions() *ast.PositionIndex { return s.current.positions }

// GetTypeAtPos implements spec §4.E "getTypeAtPos".
func (s *Session) GetTypeAtPos(pos int) typesystem.TypeInfo {
	t, _ := cursor.TypeAtPos(s.current.rootScope, s.current.source, pos)
	return t
}

// GetTypeHierarchyAtPos implements spec §4.E "getTypeHierarchyAtPos".
func (s *Session) GetTypeHierarchyAtPos(pos int) []string {
	_, hierarchy := cursor.TypeAtPos(s.current.rootScope, s.current.source, pos)
	return hierarchy
}

// GetVariableCompletionList implements spec §4.E
// "getVariableCompletionList".
func (s *Session) GetVariableCompletionList(pos int) scope.Elements {
	return cursor.GetVariableCompletionList(s.current.rootScope, s.current.source, pos)
}

// GetArgumentCompletionList implements spec §4.E
// "getArgumentCompletionList".
func (s *Session) GetArgumentCompletionList(pos int) scope.Elements {
	return cursor.GetArgumentCompletionList(s.current.rootScope, s.current.source, pos)
}

// GetArgumentContext implements spec §4.D "getArgumentAtPos": the signature
// of the call enclosing pos and the zero-based active argument index, for
// hosts rendering signature help rather than a plain name list.
func (s *Session) GetArgumentContext(pos int) (cursor.ArgumentContext, bool) {
	return cursor.GetArgumentAtPos(s.current.rootScope, s.current.source, pos)
}

// UserDefined exposes the session's ambient environment so a host can keep
// registering variables, functions, and records before the next
// UpdateProgram call.
func (s *Session) UserDefined() *scope.UserDefined { return s.userDefined }
