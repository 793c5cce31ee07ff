package cursor

import (
	"github.com/cguebert/luaautocomplete/internal/parser"
	"github.com/cguebert/luaautocomplete/internal/scope"
	"github.com/cguebert/luaautocomplete/internal/typesystem"
)

// TypeAtPos implements the extractVariableAtPos → parseVariableOrFunction →
// getScopeAtPos → subType-fold chain shared by getTypeAtPos and
// getTypeHierarchyAtPos (spec §4.E). It returns typesystem.Nil and a nil
// hierarchy if any step fails.
func TypeAtPos(rootScope *scope.Scope, text string, pos int) (typesystem.TypeInfo, []string) {
	fragment := ExtractVariableAtPos(text, pos)
	if fragment == "" {
		return typesystem.Nil, nil
	}
	ok, vof := parser.ParseVariableOrFunction(fragment)
	if !ok {
		return typesystem.Nil, nil
	}
	sc := GetScopeAtPos(rootScope, pos)
	return scope.ResolveFragment(sc, vof)
}

// ArgumentContext is the result of GetArgumentAtPos: the signature of the
// call enclosing pos and the zero-based index of the active argument.
type ArgumentContext struct {
	Signature     typesystem.FunctionSignature
	ArgumentIndex int
}

// GetArgumentAtPos implements spec §4.D "getArgumentAtPos": walk leftward
// counting depth-1 commas until the enclosing call's '(' is found, resolve
// the callee just before it, and return its signature if it is a function.
func GetArgumentAtPos(rootScope *scope.Scope, text string, pos int) (ArgumentContext, bool) {
	openIdx, argIndex, ok := findEnclosingCall(text, pos)
	if !ok {
		return ArgumentContext{}, false
	}
	calleeEnd := skipWhitespaceLeft(text, openIdx-1)
	if calleeEnd < 0 {
		return ArgumentContext{}, false
	}
	t, _ := TypeAtPos(rootScope, text, calleeEnd)
	if t.Kind != typesystem.KindFunction || t.Function == nil {
		return ArgumentContext{}, false
	}
	return ArgumentContext{Signature: *t.Function, ArgumentIndex: argIndex}, true
}

func findEnclosingCall(text string, pos int) (openIdx, argIndex int, ok bool) {
	depth := 0
	for i := pos - 1; i >= 0; i-- {
		switch text[i] {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				return i, argIndex, true
			}
			depth--
		case ',':
			if depth == 0 {
				argIndex++
			}
		}
	}
	return 0, 0, false
}
