package cursor

import (
	"github.com/cguebert/luaautocomplete/internal/scope"
	"github.com/cguebert/luaautocomplete/internal/typesystem"
)

// GetVariableCompletionList implements spec §4.E
// "getVariableCompletionList": right after '.' or ':', the left-hand
// subexpression's member elements (filtered to methods for ':', non-
// methods for '.'); otherwise the enclosing scope's visible identifiers.
func GetVariableCompletionList(rootScope *scope.Scope, text string, pos int) scope.Elements {
	if pos > 0 && pos <= len(text) {
		opIdx := pos - 1
		if text[opIdx] == '.' || text[opIdx] == ':' {
			isMethod := text[opIdx] == ':'
			lhsEnd := skipWhitespaceLeft(text, opIdx-1)
			if lhsEnd >= 0 {
				t, _ := TypeAtPos(rootScope, text, lhsEnd)
				return filterMembers(rootScope.MemberElements(t), isMethod)
			}
		}
	}
	return GetScopeAtPos(rootScope, pos).GetElements(false)
}

func filterMembers(elements scope.Elements, methodsOnly bool) scope.Elements {
	out := make(scope.Elements, len(elements))
	for name, el := range elements {
		isMethod := el.Type.Kind == typesystem.KindFunction && el.Type.Function != nil && el.Type.Function.IsMethod
		if isMethod == methodsOnly {
			out[name] = el
		}
	}
	return out
}

// GetArgumentCompletionList implements spec §4.E
// "getArgumentCompletionList": variable completions, plus names drawn from
// the active parameter's declared type (e.g. an enum-like userdata's
// members), falling back to plain variable completion when no call is
// active at pos.
func GetArgumentCompletionList(rootScope *scope.Scope, text string, pos int) scope.Elements {
	base := GetVariableCompletionList(rootScope, text, pos)
	argCtx, ok := GetArgumentAtPos(rootScope, text, pos)
	if !ok || argCtx.ArgumentIndex >= len(argCtx.Signature.Parameters) {
		return base
	}
	param := argCtx.Signature.Parameters[argCtx.ArgumentIndex]
	for name, el := range rootScope.MemberElements(param.Type) {
		if _, exists := base[name]; !exists {
			base[name] = el
		}
	}
	return base
}
