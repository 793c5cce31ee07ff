package ast

import "github.com/cguebert/luaautocomplete/internal/token"

// BinaryContinuation chains a binary operator and its right-hand operand
// onto an Expression. Precedence/associativity is intentionally NOT
// rebuilt here (spec §4.B, §9): the grammar only knows "operand, then an
// optional (operator, expression) pair", and Right is itself a full
// Expression, so a chain nests to the right regardless of the operators'
// true precedence: `1 - 2 - 3` is held as `1 - (2 - 3)`.
type BinaryContinuation struct {
	Op    token.Kind
	Right *Expression
}

// Expression is an operand with an optional chain of binary operators.
type Expression struct {
	Base
	Operand Operand
	Binary  *BinaryContinuation
}

func (*NilLiteral) operandNode()     {}
func (*TrueLiteral) operandNode()    {}
func (*FalseLiteral) operandNode()   {}
func (*VarargLiteral) operandNode()  {}
func (*Numeral) operandNode()        {}
func (*LiteralString) operandNode()  {}
func (*UnaryOperation) operandNode() {}
func (*TableConstructor) operandNode() {}
func (*FunctionBody) operandNode()   {}
func (*Variable) operandNode()       {}
func (*FunctionCall) operandNode()   {}

// NilLiteral is the `nil` constant.
type NilLiteral struct{ Base }

// TrueLiteral is the `true` constant.
type TrueLiteral struct{ Base }

// FalseLiteral is the `false` constant.
type FalseLiteral struct{ Base }

// VarargLiteral is `...`.
type VarargLiteral struct{ Base }

// Numeral is an integer or float literal; Lua 5.3's int/float split is not
// modeled as separate TypeInfo kinds (spec §3 closed tag set), so the raw
// lexeme is kept only for display.
type Numeral struct {
	Base
	Literal string
}

// LiteralString is a quoted or long-bracketed string literal. For a quoted
// string, Value is the content with each backslash dropped and the
// character after it kept unchanged (so `\n` yields `n`; numeric, `\x`,
// `\u` and `\z` escapes are not decoded); a long-bracketed string's
// content is kept verbatim.
type LiteralString struct {
	Base
	Value string
}

// UnaryOperation is `-e`, `#e`, `not e`, or `~e` (bitwise not).
type UnaryOperation struct {
	Base
	Op      token.Kind
	Operand Operand
}

// TableField is one entry of a table constructor: `[k]=v`, `name=v`, or a
// bare positional `v`.
type TableField struct {
	Key       *Expression // non-nil only for `[k]=v` entries
	Name      string      // non-empty only for `name=v` entries
	Value     *Expression
	Positional bool // true for bare `v` entries (no Key, no Name)
}

// TableConstructor is `{ field, field, … }`.
type TableConstructor struct {
	Base
	Fields []TableField
}

// FunctionBody is the `function(params) … end` operand shared by function
// expressions, `function name(...) … end` declarations, and anonymous
// closures; IsMethod is set once the parser strips an implicit leading
// `self` parameter on method declarations (spec §3 FunctionSignature).
type FunctionBody struct {
	Base
	Params   []string
	IsVararg bool
	IsMethod bool
	Body     *Block
}
