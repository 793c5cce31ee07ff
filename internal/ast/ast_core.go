// Package ast defines the Lua 5.3 abstract syntax tree.
//
// Every node carries a byte-offset [Begin,End) span into the source buffer
// it was parsed from (spec §3 "AST"). The grammar's left-recursive prefix
// expressions are rewritten as a head followed by a repeated postfix list
// (spec §4.B), which is why PrefixExpression, Variable and FunctionCall
// below share the same Head/Postfixes shape instead of nesting.
package ast

import "github.com/cguebert/luaautocomplete/internal/token"

// Span is the byte-offset range of a node within its source buffer.
type Span struct {
	Begin int
	End   int
}

func (s Span) Covers(pos int) bool { return s.Begin <= pos && pos <= s.End }

// SpanOf converts a lexical token's bounds into a Span.
func SpanOf(t token.Token) Span { return Span{Begin: t.Begin, End: t.End} }

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() Span
}

// Statement is a Node appearing in a Block's statement list.
type Statement interface {
	Node
	statementNode()
}

// Operand is a Node appearing as the left operand of an Expression, or as
// the right operand of a BinaryContinuation.
type Operand interface {
	Node
	operandNode()
}

// Base is embedded by every concrete node to implement Pos() once.
type Base struct {
	Span Span
}

func (b Base) Pos() Span { return b.Span }

// Block is a sequence of statements with an optional return statement. It
// is the grammatical unit that introduces a lexical scope (spec GLOSSARY).
type Block struct {
	Base
	Statements []Statement
	Return     *ReturnStatement // nil if the block has no return statement
}

// AllBlocks returns b and the Blocks nested inside it, in pre-order. Used by
// cursor localization (component D). It descends into statement bodies and
// into function bodies that are a whole right-hand-side expression of an
// assignment or local assignment; function bodies found anywhere else
// (call arguments, return values, table constructors, conditions, operands
// of operators) are not visited.
func (b *Block) AllBlocks() []*Block {
	var out []*Block
	var walk func(*Block)
	walk = func(blk *Block) {
		if blk == nil {
			return
		}
		out = append(out, blk)
		for _, st := range blk.Statements {
			for _, child := range childBlocksOf(st) {
				walk(child)
			}
		}
	}
	walk(b)
	return out
}

// childBlocksOf returns the immediate child blocks introduced by a statement.
func childBlocksOf(st Statement) []*Block {
	switch s := st.(type) {
	case *DoStatement:
		return []*Block{s.Body}
	case *WhileStatement:
		return []*Block{s.Body}
	case *RepeatStatement:
		return []*Block{s.Body}
	case *IfStatement:
		var blocks []*Block
		for _, c := range s.Clauses {
			blocks = append(blocks, c.Body)
		}
		if s.Else != nil {
			blocks = append(blocks, s.Else)
		}
		return blocks
	case *NumericForStatement:
		return []*Block{s.Body}
	case *GenericForStatement:
		return []*Block{s.Body}
	case *LocalFunctionStatement:
		return []*Block{s.Function.Body}
	case *FunctionDeclStatement:
		return []*Block{s.Function.Body}
	case *AssignStatement:
		return functionBodyBlocks(s.Rhs)
	case *LocalAssignStatement:
		return functionBodyBlocks(s.Rhs)
	}
	return nil
}

func functionBodyBlocks(exprs []*Expression) []*Block {
	var blocks []*Block
	for _, e := range exprs {
		if e == nil {
			continue
		}
		if fb, ok := e.Operand.(*FunctionBody); ok {
			blocks = append(blocks, fb.Body)
		}
	}
	return blocks
}
