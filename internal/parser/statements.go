package parser

import (
	"github.com/cguebert/luaautocomplete/internal/ast"
	"github.com/cguebert/luaautocomplete/internal/token"
)

// parseBlock parses `{stat} [retstat]` (spec GLOSSARY "Block").
func (p *parser) parseBlock() *ast.Block {
	begin := p.cur.Begin
	blk := &ast.Block{}
	for !p.blockFollow() {
		if p.at(token.RETURN) {
			blk.Return = p.parseReturnStatement()
			break
		}
		st := p.parseStatement()
		if st != nil {
			blk.Statements = append(blk.Statements, st)
		}
	}
	blk.Span = p.span(begin)
	return blk
}

// blockFollow reports whether the current token can only follow a block
// (i.e. a block-terminating keyword or end of input).
func (p *parser) blockFollow() bool {
	return p.atAny(token.EOF, token.END, token.ELSE, token.ELSEIF, token.UNTIL)
}

func (p *parser) keyword(k token.Kind) token.Token {
	t := p.cur
	p.record(t.Begin, t.End, ast.Keyword)
	return p.expect(k)
}

func (p *parser) parseStatement() ast.Statement {
	begin := p.cur.Begin
	switch p.cur.Kind {
	case token.SEMI:
		p.advance()
		return &ast.EmptyStatement{Base: p.base(begin)}
	case token.DCOLON:
		p.keyword(token.DCOLON)
		name := p.name()
		p.keyword(token.DCOLON)
		return &ast.LabelStatement{Name: name, Base: p.base(begin)}
	case token.BREAK:
		p.keyword(token.BREAK)
		return &ast.BreakStatement{Base: p.base(begin)}
	case token.GOTO:
		p.keyword(token.GOTO)
		label := p.name()
		return &ast.GotoStatement{Label: label, Base: p.base(begin)}
	case token.DO:
		p.keyword(token.DO)
		body := p.parseBlock()
		p.keyword(token.END)
		return &ast.DoStatement{Body: body, Base: p.base(begin)}
	case token.WHILE:
		p.keyword(token.WHILE)
		cond := p.parseExpression()
		p.keyword(token.DO)
		body := p.parseBlock()
		p.keyword(token.END)
		return &ast.WhileStatement{Cond: cond, Body: body, Base: p.base(begin)}
	case token.REPEAT:
		p.keyword(token.REPEAT)
		body := p.parseBlock()
		p.keyword(token.UNTIL)
		cond := p.parseExpression()
		return &ast.RepeatStatement{Body: body, Cond: cond, Base: p.base(begin)}
	case token.IF:
		return p.parseIfStatement(begin)
	case token.FOR:
		return p.parseForStatement(begin)
	case token.FUNCTION:
		return p.parseFunctionDeclStatement(begin)
	case token.LOCAL:
		return p.parseLocalStatement(begin)
	default:
		return p.parseExprStatement(begin)
	}
}

func (p *parser) name() string {
	t := p.expect(token.NAME)
	return t.Lexeme
}

func (p *parser) parseReturnStatement() *ast.ReturnStatement {
	begin := p.cur.Begin
	p.keyword(token.RETURN)
	var exprs []*ast.Expression
	if !p.blockFollow() && !p.at(token.SEMI) {
		exprs = p.parseExpressionList()
	}
	if p.at(token.SEMI) {
		p.advance()
	}
	return &ast.ReturnStatement{Exprs: exprs, Base: p.base(begin)}
}

func (p *parser) parseIfStatement(begin int) ast.Statement {
	st := &ast.IfStatement{}
	p.keyword(token.IF)
	cond := p.parseExpression()
	p.keyword(token.THEN)
	body := p.parseBlock()
	st.Clauses = append(st.Clauses, &ast.IfClause{Cond: cond, Body: body})
	for p.at(token.ELSEIF) {
		p.keyword(token.ELSEIF)
		cond := p.parseExpression()
		p.keyword(token.THEN)
		body := p.parseBlock()
		st.Clauses = append(st.Clauses, &ast.IfClause{Cond: cond, Body: body})
	}
	if p.at(token.ELSE) {
		p.keyword(token.ELSE)
		st.Else = p.parseBlock()
	}
	p.keyword(token.END)
	st.Base = p.base(begin)
	return st
}

func (p *parser) parseForStatement(begin int) ast.Statement {
	p.keyword(token.FOR)
	first := p.name()
	if p.at(token.ASSIGN) {
		p.advance()
		start := p.parseExpression()
		p.expect(token.COMMA)
		stop := p.parseExpression()
		var step *ast.Expression
		if p.at(token.COMMA) {
			p.advance()
			step = p.parseExpression()
		}
		p.keyword(token.DO)
		body := p.parseBlock()
		p.keyword(token.END)
		return &ast.NumericForStatement{Var: first, Start: start, Stop: stop, Step: step, Body: body, Base: p.base(begin)}
	}
	names := []string{first}
	for p.at(token.COMMA) {
		p.advance()
		names = append(names, p.name())
	}
	p.keyword(token.IN)
	exprs := p.parseExpressionList()
	p.keyword(token.DO)
	body := p.parseBlock()
	p.keyword(token.END)
	return &ast.GenericForStatement{Names: names, Exprs: exprs, Body: body, Base: p.base(begin)}
}

// parseFunctionDeclStatement parses `function funcname funcbody` where
// funcname := Name {'.' Name} [':' Name] (spec §3 FunctionDeclStatement).
func (p *parser) parseFunctionDeclStatement(begin int) ast.Statement {
	p.keyword(token.FUNCTION)
	first := p.cur
	p.record(first.Begin, first.End, ast.FunctionT)
	path := []string{p.name()}
	for p.at(token.DOT) {
		p.advance()
		mt := p.cur
		p.record(mt.Begin, mt.End, ast.MemberVariable)
		path = append(path, p.name())
	}
	method := ""
	if p.at(token.COLON) {
		p.advance()
		mt := p.cur
		p.record(mt.Begin, mt.End, ast.MemberFunction)
		method = p.name()
	}
	fn := p.parseFunctionBody(method != "")
	return &ast.FunctionDeclStatement{Name: ast.FuncName{Path: path, Method: method}, Function: fn, Base: p.base(begin)}
}

func (p *parser) parseLocalStatement(begin int) ast.Statement {
	p.keyword(token.LOCAL)
	if p.at(token.FUNCTION) {
		p.keyword(token.FUNCTION)
		nt := p.cur
		p.record(nt.Begin, nt.End, ast.FunctionT)
		name := p.name()
		fn := p.parseFunctionBody(false)
		return &ast.LocalFunctionStatement{Name: name, Function: fn, Base: p.base(begin)}
	}
	names := []string{p.localName()}
	for p.at(token.COMMA) {
		p.advance()
		names = append(names, p.localName())
	}
	var rhs []*ast.Expression
	if p.at(token.ASSIGN) {
		p.advance()
		rhs = p.parseExpressionList()
	}
	return &ast.LocalAssignStatement{Names: names, Rhs: rhs, Base: p.base(begin)}
}

// localName parses a local declaration's name, tagging it as a variable
// reference immediately (it is its own binding site).
func (p *parser) localName() string {
	t := p.cur
	p.record(t.Begin, t.End, ast.VariableT)
	return p.name()
}

// parseExprStatement handles `varlist = explist` and bare function calls.
func (p *parser) parseExprStatement(begin int) ast.Statement {
	pe := p.parsePrefixExpression()
	if p.at(token.ASSIGN) || p.at(token.COMMA) {
		first := toVariable(pe)
		if first == nil {
			p.fail()
		}
		lhs := []*ast.Variable{first}
		for p.at(token.COMMA) {
			p.advance()
			v := toVariable(p.parsePrefixExpression())
			if v == nil {
				p.fail()
			}
			lhs = append(lhs, v)
		}
		p.expect(token.ASSIGN)
		rhs := p.parseExpressionList()
		return &ast.AssignStatement{Lhs: lhs, Rhs: rhs, Base: p.base(begin)}
	}
	call := toCall(pe)
	if call == nil {
		p.fail()
	}
	return &ast.CallStatement{Call: call, Base: p.base(begin)}
}
