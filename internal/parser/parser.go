// Package parser implements component B of the pipeline: a recursive-
// descent parser for the Lua 5.3 grammar that never fails fatally (spec
// §4.B "Public parser contracts"). Left recursion in the grammar's prefix
// expressions is rewritten as a head followed by a repeated postfix list;
// deep parse failures unwind through a single recover() at the entry
// point rather than threading error returns through every production,
// matching the "errors are values, but unwinding is local" shape common to
// hand-written recursive-descent Go parsers (e.g. go/parser in the
// standard toolchain).
package parser

import (
	"github.com/cguebert/luaautocomplete/internal/ast"
	"github.com/cguebert/luaautocomplete/internal/lexer"
	"github.com/cguebert/luaautocomplete/internal/token"
)

// ParseResult is the outcome of ParseBlock (spec §4.B).
type ParseResult struct {
	Parsed      bool
	Block       *ast.Block
	Positions   *ast.PositionIndex
	LastConsumed int
}

type parseBailout struct{}

type parser struct {
	lex              *lexer.Lexer
	source           string
	cur              token.Token
	peek             token.Token
	collectPositions bool
	positions        *ast.PositionIndex
	lastConsumed     int
}

func newParser(source string, collectPositions bool) *parser {
	p := &parser{lex: lexer.New(source), source: source, collectPositions: collectPositions}
	if collectPositions {
		p.positions = ast.NewPositionIndex()
	}
	p.cur = p.rawNext()
	p.peek = p.rawNext()
	return p
}

// rawNext pulls the next significant token from the lexer, registering any
// comment tokens into the position index and skipping them (spec §4.B:
// "comments … are skipped by a unified skipper").
func (p *parser) rawNext() token.Token {
	for {
		t := p.lex.NextToken()
		if t.Kind == token.COMMENT {
			p.record(t.Begin, t.End, ast.CommentT)
			continue
		}
		return t
	}
}

func (p *parser) advance() {
	p.lastConsumed = p.cur.End
	p.cur = p.peek
	p.peek = p.rawNext()
}

func (p *parser) at(k token.Kind) bool { return p.cur.Kind == k }

func (p *parser) atAny(ks ...token.Kind) bool {
	for _, k := range ks {
		if p.cur.Kind == k {
			return true
		}
	}
	return false
}

// expect consumes the current token if it has kind k, else bails out.
func (p *parser) expect(k token.Kind) token.Token {
	if p.cur.Kind != k {
		p.fail()
	}
	t := p.cur
	p.advance()
	return t
}

func (p *parser) fail() {
	panic(parseBailout{})
}

func (p *parser) record(begin, end int, tag ast.ElementTag) {
	if p.collectPositions && p.positions != nil {
		p.positions.Insert(begin, end, tag)
	}
}

func (p *parser) span(begin int) ast.Span {
	return ast.Span{Begin: begin, End: p.lastConsumed}
}

func (p *parser) base(begin int) ast.Base {
	return ast.Base{Span: p.span(begin)}
}

// ParseBlock parses source as a top-level chunk (spec §4.B). It never
// panics to the caller: any internal bailout is recovered here and turned
// into Parsed=false with LastConsumed reporting how far the scan got.
func ParseBlock(source string, collectPositions bool) (result ParseResult) {
	p := newParser(source, collectPositions)
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseBailout); ok {
				result = ParseResult{Parsed: false, LastConsumed: p.lastConsumed}
				return
			}
			panic(r)
		}
	}()

	block := p.parseBlock()
	if !p.at(token.EOF) {
		p.fail()
	}
	return ParseResult{Parsed: true, Block: block, Positions: p.positions, LastConsumed: p.lastConsumed}
}
