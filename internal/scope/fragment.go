package scope

import (
	"github.com/cguebert/luaautocomplete/internal/ast"
	"github.com/cguebert/luaautocomplete/internal/typesystem"
)

// ResolveFragment folds a parser.ParseVariableOrFunction result through
// subType starting from its head name resolved in sc (spec §4.E
// "getTypeAtPos"). It returns the final type and the chain of type names
// visited, the latter useful for a "Player.position.x" tooltip (spec §4.E
// "getTypeHierarchyAtPos").
func ResolveFragment(sc *Scope, vof *ast.VariableOrFunction) (typesystem.TypeInfo, []string) {
	var pe ast.PrefixExpression
	switch t := vof.Target.(type) {
	case *ast.Variable:
		pe = t.PrefixExpression
	case *ast.FunctionCall:
		pe = t.PrefixExpression
	default:
		return typesystem.Nil, nil
	}

	head, ok := headName(pe.Head)
	if !ok {
		return typesystem.Nil, nil
	}
	cur := sc.GetVariableType(head)
	hierarchy := []string{cur.TypeName()}
	for _, pf := range pe.Postfixes {
		cur = subType(sc, cur, pf)
		hierarchy = append(hierarchy, cur.TypeName())
	}
	if vof.Method != "" {
		if m, ok := sc.resolveMember(cur, vof.Method); ok {
			cur = m
		} else {
			cur = typesystem.Nil
		}
		hierarchy = append(hierarchy, cur.TypeName())
	}
	return cur, hierarchy
}
