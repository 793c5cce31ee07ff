package parser

import (
	"github.com/cguebert/luaautocomplete/internal/ast"
	"github.com/cguebert/luaautocomplete/internal/token"
)

// parsePrefixExpression parses a PrefixHead followed by a repeated postfix
// list (spec §4.B: left-recursive prefix expressions rewritten this way).
func (p *parser) parsePrefixExpression() ast.PrefixExpression {
	begin := p.cur.Begin
	var head ast.PrefixHead
	if p.at(token.LPAREN) {
		p.advance()
		inner := p.parseExpression()
		p.expect(token.RPAREN)
		head = &ast.ParenExpr{Inner: inner, Base: p.base(begin)}
	} else {
		t := p.cur
		name := p.name()
		head = &ast.Name{Value: name, Base: ast.Base{Span: ast.SpanOf(t)}}
	}

	var postfixes []ast.Postfix
	for {
		switch p.cur.Kind {
		case token.DOT:
			pb := p.cur.Begin
			p.advance()
			nt := p.cur
			name := p.name()
			tag := ast.MemberVariable
			if p.isCallStart() {
				tag = ast.MemberFunction
			}
			p.record(nt.Begin, nt.End, tag)
			postfixes = append(postfixes, &ast.DotPostfix{Name: name, Base: p.base(pb)})
		case token.LBRACKET:
			pb := p.cur.Begin
			p.advance()
			idx := p.parseExpression()
			p.expect(token.RBRACKET)
			postfixes = append(postfixes, &ast.IndexPostfix{Index: idx, Base: p.base(pb)})
		case token.COLON:
			pb := p.cur.Begin
			p.advance()
			nt := p.cur
			p.record(nt.Begin, nt.End, ast.MemberFunction)
			method := p.name()
			args := p.parseArgs()
			postfixes = append(postfixes, &ast.MethodCallPostfix{Method: method, Args: args, Base: p.base(pb)})
		case token.LPAREN, token.STRING, token.LBRACE:
			pb := p.cur.Begin
			args := p.parseArgs()
			postfixes = append(postfixes, &ast.CallPostfix{Args: args, Base: p.base(pb)})
		default:
			goto done
		}
	}
done:
	p.tagHead(head, postfixes)
	return ast.PrefixExpression{Head: head, Postfixes: postfixes, Base: p.base(begin)}
}

// isCallStart reports whether the current token begins a call's argument
// form (used to decide a just-consumed `.name` is a member-function
// reference vs. a member-variable reference, for position coloring only).
func (p *parser) isCallStart() bool {
	return p.atAny(token.LPAREN, token.STRING, token.LBRACE)
}

// tagHead registers the position-index element for a bare Name head,
// distinguishing a function reference (immediately called) from a plain
// variable reference (spec §4.B "a subset of nodes … register an element").
func (p *parser) tagHead(head ast.PrefixHead, postfixes []ast.Postfix) {
	name, ok := head.(*ast.Name)
	if !ok {
		return
	}
	tag := ast.VariableT
	if len(postfixes) > 0 {
		if _, isCall := postfixes[0].(*ast.CallPostfix); isCall {
			tag = ast.FunctionT
		}
		if _, isMethod := postfixes[0].(*ast.MethodCallPostfix); isMethod {
			tag = ast.FunctionT
		}
	}
	sp := name.Pos()
	p.record(sp.Begin, sp.End, tag)
}

// parseArgs parses a call's argument list: `(explist?)`, a bare table
// constructor, or a bare string literal (spec §4.B "args").
func (p *parser) parseArgs() []*ast.Expression {
	switch p.cur.Kind {
	case token.LPAREN:
		p.advance()
		var args []*ast.Expression
		if !p.at(token.RPAREN) {
			args = p.parseExpressionList()
		}
		p.expect(token.RPAREN)
		return args
	case token.LBRACE:
		tc := p.parseTableConstructor()
		return []*ast.Expression{{Operand: tc, Base: tc.Base}}
	case token.STRING:
		t := p.cur
		p.record(t.Begin, t.End, ast.LiteralStringT)
		p.advance()
		lit := &ast.LiteralString{Value: t.Lexeme, Base: ast.Base{Span: ast.SpanOf(t)}}
		return []*ast.Expression{{Operand: lit, Base: lit.Base}}
	default:
		p.fail()
		return nil
	}
}

// toVariable converts a parsed PrefixExpression that does not end in a call
// into a *ast.Variable (spec §4.B "a trailing call produces FunctionCall; a
// trailing .name, [expr], or call-then-variable-postfix produces Variable").
func toVariable(pe ast.PrefixExpression) *ast.Variable {
	if pe.EndsInCall() {
		return nil
	}
	return &ast.Variable{PrefixExpression: pe}
}

// toCall converts a parsed PrefixExpression that ends in a call into a
// *ast.FunctionCall, or returns nil if it does not.
func toCall(pe ast.PrefixExpression) *ast.FunctionCall {
	if !pe.EndsInCall() {
		return nil
	}
	return &ast.FunctionCall{PrefixExpression: pe}
}
