package parser

import (
	"github.com/cguebert/luaautocomplete/internal/ast"
	"github.com/cguebert/luaautocomplete/internal/token"
)

func isUnaryOp(k token.Kind) bool {
	switch k {
	case token.MINUS, token.NOT, token.HASH, token.TILDE:
		return true
	}
	return false
}

func isBinaryOp(k token.Kind) bool {
	switch k {
	case token.AND, token.OR,
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.DSLASH, token.PERCENT, token.CARET,
		token.AMP, token.TILDE, token.PIPE, token.LSHIFT, token.RSHIFT,
		token.EQ, token.NE, token.LE, token.GE, token.LT, token.GT, token.CONCAT:
		return true
	}
	return false
}

// parseExpressionList parses `exp {',' exp}`.
func (p *parser) parseExpressionList() []*ast.Expression {
	exprs := []*ast.Expression{p.parseExpression()}
	for p.at(token.COMMA) {
		p.advance()
		exprs = append(exprs, p.parseExpression())
	}
	return exprs
}

// parseExpression parses an operand followed by an optional chain of binary
// operators. Precedence/associativity is intentionally not reconstructed
// (spec §4.B, §9): the continuation is an (op, expr) pair whose right side
// is parsed as a whole new expression by plain recursive descent, so every
// chain nests to the right whatever its operators: `1 * 2 + 3` ends up
// structured like `1 * (2 + 3)`.
func (p *parser) parseExpression() *ast.Expression {
	begin := p.cur.Begin
	operand := p.parseUnary()
	expr := &ast.Expression{Operand: operand}
	if isBinaryOp(p.cur.Kind) {
		op := p.cur.Kind
		p.advance()
		right := p.parseExpression()
		expr.Binary = &ast.BinaryContinuation{Op: op, Right: right}
	}
	expr.Base = p.base(begin)
	return expr
}

func (p *parser) parseUnary() ast.Operand {
	if isUnaryOp(p.cur.Kind) {
		begin := p.cur.Begin
		op := p.cur.Kind
		p.advance()
		operand := p.parseUnary()
		return &ast.UnaryOperation{Op: op, Operand: operand, Base: p.base(begin)}
	}
	return p.parseSimpleExpr()
}

func (p *parser) parseSimpleExpr() ast.Operand {
	begin := p.cur.Begin
	switch p.cur.Kind {
	case token.NIL:
		p.keyword(token.NIL)
		return &ast.NilLiteral{Base: p.base(begin)}
	case token.TRUE:
		p.keyword(token.TRUE)
		return &ast.TrueLiteral{Base: p.base(begin)}
	case token.FALSE:
		p.keyword(token.FALSE)
		return &ast.FalseLiteral{Base: p.base(begin)}
	case token.ELLIPSIS:
		p.advance()
		return &ast.VarargLiteral{Base: p.base(begin)}
	case token.NUMBER:
		t := p.cur
		p.record(t.Begin, t.End, ast.NumeralT)
		p.advance()
		return &ast.Numeral{Literal: t.Lexeme, Base: p.base(begin)}
	case token.STRING:
		t := p.cur
		p.record(t.Begin, t.End, ast.LiteralStringT)
		p.advance()
		return &ast.LiteralString{Value: t.Lexeme, Base: p.base(begin)}
	case token.FUNCTION:
		p.keyword(token.FUNCTION)
		return p.parseFunctionBody(false)
	case token.LBRACE:
		return p.parseTableConstructor()
	case token.LPAREN, token.NAME:
		pe := p.parsePrefixExpression()
		if pe.EndsInCall() {
			return &ast.FunctionCall{PrefixExpression: pe}
		}
		return &ast.Variable{PrefixExpression: pe}
	default:
		p.fail()
		return nil
	}
}

// parseTableConstructor parses `{ field {fieldsep field} [fieldsep] }`
// (spec §4.C "table constructor").
func (p *parser) parseTableConstructor() *ast.TableConstructor {
	begin := p.cur.Begin
	p.expect(token.LBRACE)
	tc := &ast.TableConstructor{}
	for !p.at(token.RBRACE) {
		tc.Fields = append(tc.Fields, p.parseTableField())
		if p.at(token.COMMA) || p.at(token.SEMI) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RBRACE)
	tc.Base = p.base(begin)
	return tc
}

func (p *parser) parseTableField() ast.TableField {
	if p.at(token.LBRACKET) {
		p.advance()
		key := p.parseExpression()
		p.expect(token.RBRACKET)
		p.expect(token.ASSIGN)
		value := p.parseExpression()
		return ast.TableField{Key: key, Value: value}
	}
	if p.at(token.NAME) && p.peek.Kind == token.ASSIGN {
		t := p.cur
		p.record(t.Begin, t.End, ast.MemberVariable)
		name := p.name()
		p.advance() // '='
		value := p.parseExpression()
		return ast.TableField{Name: name, Value: value}
	}
	value := p.parseExpression()
	return ast.TableField{Value: value, Positional: true}
}

// parseFunctionBody parses `'(' [parlist] ')' block 'end'`. When isMethod is
// true the parser knows an implicit `self` receiver has already been
// stripped by the caller (it is never part of Params).
func (p *parser) parseFunctionBody(isMethod bool) *ast.FunctionBody {
	begin := p.cur.Begin
	p.expect(token.LPAREN)
	fb := &ast.FunctionBody{IsMethod: isMethod}
	for !p.at(token.RPAREN) {
		if p.at(token.ELLIPSIS) {
			p.advance()
			fb.IsVararg = true
			break
		}
		fb.Params = append(fb.Params, p.localName())
		if p.at(token.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RPAREN)
	fb.Body = p.parseBlock()
	p.keyword(token.END)
	fb.Base = p.base(begin)
	return fb
}
