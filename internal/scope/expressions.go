package scope

import (
	"github.com/cguebert/luaautocomplete/internal/ast"
	"github.com/cguebert/luaautocomplete/internal/token"
	"github.com/cguebert/luaautocomplete/internal/typesystem"
)

// TypeOfExpression is the pure expression-typing visitor (spec §4.C
// "Expression typing"). It never mutates sc.
func TypeOfExpression(sc *Scope, e *ast.Expression) typesystem.TypeInfo {
	if e == nil {
		return typesystem.Nil
	}
	left := typeOfOperand(sc, e.Operand)
	if e.Binary == nil {
		return left
	}
	right := TypeOfExpression(sc, e.Binary.Right)
	return typeOfBinary(e.Binary.Op, left, right)
}

func typeOfOperand(sc *Scope, op ast.Operand) typesystem.TypeInfo {
	switch o := op.(type) {
	case *ast.NilLiteral:
		return typesystem.Nil
	case *ast.TrueLiteral, *ast.FalseLiteral:
		return typesystem.Boolean
	case *ast.VarargLiteral:
		return typesystem.Unknown
	case *ast.Numeral:
		return typesystem.Number
	case *ast.LiteralString:
		return typesystem.String
	case *ast.UnaryOperation:
		return typeOfUnary(sc, o)
	case *ast.TableConstructor:
		return typeOfTableConstructor(sc, o)
	case *ast.FunctionBody:
		sig := functionSignature(o, o.IsMethod)
		return typesystem.NewFunction(sig)
	case *ast.Variable:
		return typeOfPrefix(sc, o.PrefixExpression)
	case *ast.FunctionCall:
		return typeOfPrefix(sc, o.PrefixExpression)
	}
	return typesystem.Unknown
}

func typeOfUnary(sc *Scope, u *ast.UnaryOperation) typesystem.TypeInfo {
	operand := typeOfOperand(sc, u.Operand)
	switch u.Op {
	case token.MINUS, token.TILDE:
		if !typesystem.Convertible(operand, typesystem.KindNumber) {
			return typesystem.Err
		}
		return typesystem.Number
	case token.HASH:
		if operand.Kind != typesystem.KindString && operand.Kind != typesystem.KindTable {
			return typesystem.Err
		}
		return typesystem.Number
	case token.NOT:
		return typesystem.Boolean
	}
	return typesystem.Unknown
}

func typeOfBinary(op token.Kind, left, right typesystem.TypeInfo) typesystem.TypeInfo {
	switch op {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.DSLASH, token.PERCENT, token.CARET,
		token.AMP, token.PIPE, token.TILDE, token.LSHIFT, token.RSHIFT:
		if !typesystem.Convertible(left, typesystem.KindNumber) || !typesystem.Convertible(right, typesystem.KindNumber) {
			return typesystem.Err
		}
		return typesystem.Number
	case token.CONCAT:
		if !typesystem.Convertible(left, typesystem.KindString) || !typesystem.Convertible(right, typesystem.KindString) {
			return typesystem.Err
		}
		return typesystem.String
	case token.LT, token.LE, token.GT, token.GE:
		if left.Kind != right.Kind {
			return typesystem.Err
		}
		if left.Kind != typesystem.KindNumber && left.Kind != typesystem.KindString {
			return typesystem.Err
		}
		return typesystem.Boolean
	case token.EQ, token.NE:
		return typesystem.Boolean
	case token.AND, token.OR:
		if left.Kind == right.Kind {
			return left
		}
		if left.HasInfo() {
			return typesystem.Unknown
		}
		if right.HasInfo() {
			return typesystem.Unknown
		}
		return typesystem.Err
	}
	return typesystem.Unknown
}

func typeOfTableConstructor(sc *Scope, tc *ast.TableConstructor) typesystem.TypeInfo {
	t := typesystem.NewTable()
	positional := 0
	for _, f := range tc.Fields {
		switch {
		case f.Key != nil:
			TypeOfExpression(sc, f.Key)
			TypeOfExpression(sc, f.Value)
		case f.Name != "":
			t.SetMember(f.Name, TypeOfExpression(sc, f.Value))
		default:
			positional++
			val := TypeOfExpression(sc, f.Value)
			t.SetMember(itoa(positional), val)
		}
	}
	return t
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// typeOfPrefix resolves a PrefixExpression's head, then folds each
// postfix through subType (spec §4.C "Prefix / variable expressions").
func typeOfPrefix(sc *Scope, pe ast.PrefixExpression) typesystem.TypeInfo {
	cur := typeOfHead(sc, pe.Head)
	for _, pf := range pe.Postfixes {
		cur = subType(sc, cur, pf)
	}
	return cur
}

func typeOfHead(sc *Scope, h ast.PrefixHead) typesystem.TypeInfo {
	switch head := h.(type) {
	case *ast.Name:
		return sc.GetVariableType(head.Value)
	case *ast.ParenExpr:
		return TypeOfExpression(sc, head.Inner)
	}
	return typesystem.Unknown
}

// subType folds one postfix onto parent's running type (spec §4.C
// "subType(parent, postfix)"). The spec's string-metatable call fallback
// (calling a method on a string-kinded reference resolving through the
// scope's function table) is not modeled: Lua's string library is outside
// this system's closed tag set of user-visible members.
func subType(sc *Scope, parent typesystem.TypeInfo, pf ast.Postfix) typesystem.TypeInfo {
	switch p := pf.(type) {
	case *ast.DotPostfix:
		if parent.Kind == typesystem.KindTable || parent.Kind == typesystem.KindUserdata {
			if m, ok := sc.resolveMember(parent, p.Name); ok {
				return m
			}
			return typesystem.Nil
		}
		return typesystem.Unknown
	case *ast.IndexPostfix:
		TypeOfExpression(sc, p.Index)
		return typesystem.Nil
	case *ast.MethodCallPostfix:
		for _, a := range p.Args {
			TypeOfExpression(sc, a)
		}
		sig := resolveCallSignature(parent)
		if sig == nil {
			return typesystem.Nil
		}
		return resultOf(sc, *sig, argTypes(sc, p.Args), parent)
	case *ast.CallPostfix:
		for _, a := range p.Args {
			TypeOfExpression(sc, a)
		}
		sig := resolveCallSignature(parent)
		if sig == nil {
			return typesystem.Nil
		}
		return resultOf(sc, *sig, argTypes(sc, p.Args), parent)
	}
	return typesystem.Unknown
}

func resolveCallSignature(t typesystem.TypeInfo) *typesystem.FunctionSignature {
	if t.Kind != typesystem.KindFunction || t.Function == nil {
		return nil
	}
	return t.Function
}

func argTypes(sc *Scope, args []*ast.Expression) []typesystem.TypeInfo {
	out := make([]typesystem.TypeInfo, len(args))
	for i, a := range args {
		out[i] = TypeOfExpression(sc, a)
	}
	return out
}

func resultOf(sc *Scope, sig typesystem.FunctionSignature, args []typesystem.TypeInfo, receiver typesystem.TypeInfo) typesystem.TypeInfo {
	if sig.ResultTypeResolver != nil {
		return sig.ResultTypeResolver(sc, args, receiver)
	}
	return sig.FirstResult()
}
