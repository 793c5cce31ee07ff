package ast

func (*EmptyStatement) statementNode()          {}
func (*AssignStatement) statementNode()         {}
func (*CallStatement) statementNode()           {}
func (*LabelStatement) statementNode()          {}
func (*GotoStatement) statementNode()           {}
func (*BreakStatement) statementNode()          {}
func (*DoStatement) statementNode()             {}
func (*WhileStatement) statementNode()          {}
func (*RepeatStatement) statementNode()         {}
func (*IfStatement) statementNode()             {}
func (*NumericForStatement) statementNode()     {}
func (*GenericForStatement) statementNode()     {}
func (*FunctionDeclStatement) statementNode()   {}
func (*LocalFunctionStatement) statementNode()  {}
func (*LocalAssignStatement) statementNode()    {}
func (*ReturnStatement) statementNode()         {}

// EmptyStatement is a bare ';'.
type EmptyStatement struct{ Base }

// AssignStatement is `v1, …, vn = e1, …, em` (Lua allows table/global
// assignment through dotted/indexed variables as LHS targets).
type AssignStatement struct {
	Base
	Lhs []*Variable
	Rhs []*Expression
}

// CallStatement is a function/method call used as a standalone statement.
type CallStatement struct {
	Base
	Call *FunctionCall
}

// LabelStatement is `::name::`.
type LabelStatement struct {
	Base
	Name string
}

// GotoStatement is `goto name`.
type GotoStatement struct {
	Base
	Label string
}

// BreakStatement is `break`.
type BreakStatement struct{ Base }

// DoStatement is `do … end`.
type DoStatement struct {
	Base
	Body *Block
}

// WhileStatement is `while cond do … end`.
type WhileStatement struct {
	Base
	Cond *Expression
	Body *Block
}

// RepeatStatement is `repeat … until cond`; Cond can reference Body's locals.
type RepeatStatement struct {
	Base
	Body *Block
	Cond *Expression
}

// IfClause is one `if`/`elseif` arm.
type IfClause struct {
	Cond *Expression
	Body *Block
}

// IfStatement is `if … then … elseif … then … else … end`.
type IfStatement struct {
	Base
	Clauses []*IfClause
	Else    *Block // nil if there is no else branch
}

// NumericForStatement is `for name = start, stop [, step] do … end`.
type NumericForStatement struct {
	Base
	Var   string
	Start *Expression
	Stop  *Expression
	Step  *Expression // nil if omitted
	Body  *Block
}

// GenericForStatement is `for n1, …, nk in e1, …, em do … end`.
type GenericForStatement struct {
	Base
	Names []string
	Exprs []*Expression
	Body  *Block
}

// FuncName is the (possibly dotted, possibly method) name of a global/local
// function declaration: `function a.b.c:d(...)`.
type FuncName struct {
	Path   []string // ["a", "b", "c"]
	Method string   // "d", or "" if declared with '.' instead of ':'
}

// IsMethod reports whether the declaration used ':' (implicit self).
func (f FuncName) IsMethod() bool { return f.Method != "" }

// FullPath returns every segment of the name with the method name last,
// e.g. ["a", "b", "c", "d"] for `a.b.c:d`.
func (f FuncName) FullPath() []string {
	if f.Method == "" {
		return f.Path
	}
	return append(append([]string{}, f.Path...), f.Method)
}

// FunctionDeclStatement is a (non-local) `function name.path(...) … end`.
type FunctionDeclStatement struct {
	Base
	Name     FuncName
	Function *FunctionBody
}

// LocalFunctionStatement is `local function name(...) … end`. Unlike a
// plain local assignment, the name is bound before the body is analyzed so
// the function may recurse.
type LocalFunctionStatement struct {
	Base
	Name     string
	Function *FunctionBody
}

// LocalAssignStatement is `local v1, …, vn = e1, …, em` (Rhs may be shorter
// than Lhs, or absent entirely).
type LocalAssignStatement struct {
	Base
	Names []string
	Rhs   []*Expression
}

// ReturnStatement is the optional trailing `return e1, …, em` of a Block.
type ReturnStatement struct {
	Base
	Exprs []*Expression
}
