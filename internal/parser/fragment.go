package parser

import (
	"github.com/cguebert/luaautocomplete/internal/ast"
	"github.com/cguebert/luaautocomplete/internal/token"
)

// ParseVariableOrFunction parses source as a single prefix-expression
// fragment, optionally followed by a trailing `:methodName` with no call
// (spec §4.B). It is used on text already isolated by the cursor-
// localization pass (component D), never on a full chunk, so it tolerates
// a dangling method name that a full-chunk parse would reject.
func ParseVariableOrFunction(source string) (bool, *ast.VariableOrFunction) {
	p := newParser(source, false)
	ok := true
	var result *ast.VariableOrFunction
	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, isBailout := r.(parseBailout); isBailout {
					ok = false
					return
				}
				panic(r)
			}
		}()

		begin := p.cur.Begin
		pe := p.parsePrefixExpression()

		method := ""
		if p.at(token.COLON) {
			p.advance()
			method = p.name()
		}

		if !p.at(token.EOF) {
			p.fail()
		}

		var target ast.Node
		if pe.EndsInCall() {
			target = &ast.FunctionCall{PrefixExpression: pe}
		} else {
			target = &ast.Variable{PrefixExpression: pe}
		}
		result = &ast.VariableOrFunction{Target: target, Method: method, Base: p.base(begin)}
	}()
	if !ok {
		return false, nil
	}
	return true, result
}
