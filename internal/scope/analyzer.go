package scope

import (
	"strings"

	"github.com/cguebert/luaautocomplete/internal/ast"
	"github.com/cguebert/luaautocomplete/internal/typesystem"
)

// Analyze walks block pre-order and builds the scope tree rooted at it
// (spec §4.C). ud may be nil for an empty ambient environment.
func Analyze(block *ast.Block, ud *UserDefined) *Scope {
	root := newRootScope(block, ud)
	analyzeBlock(root, block)
	return root
}

func analyzeBlock(sc *Scope, block *ast.Block) {
	for _, st := range block.Statements {
		analyzeStatement(sc, st)
	}
	if block.Return != nil {
		for _, e := range block.Return.Exprs {
			TypeOfExpression(sc, e)
		}
	}
}

func analyzeStatement(sc *Scope, st ast.Statement) {
	switch s := st.(type) {
	case *ast.EmptyStatement:
	case *ast.LocalAssignStatement:
		analyzeLocalAssign(sc, s)
	case *ast.AssignStatement:
		analyzeAssign(sc, s)
	case *ast.CallStatement:
		TypeOfExpression(sc, &ast.Expression{Operand: s.Call, Base: s.Call.Base})
	case *ast.LabelStatement:
		sc.AddLabel(s.Name)
	case *ast.GotoStatement, *ast.BreakStatement:
		// no scope effect
	case *ast.DoStatement:
		child := sc.newChild(s.Body)
		analyzeBlock(child, s.Body)
	case *ast.WhileStatement:
		TypeOfExpression(sc, s.Cond)
		child := sc.newChild(s.Body)
		analyzeBlock(child, s.Body)
	case *ast.RepeatStatement:
		child := sc.newChild(s.Body)
		analyzeBlock(child, s.Body)
		TypeOfExpression(child, s.Cond)
	case *ast.IfStatement:
		for _, clause := range s.Clauses {
			TypeOfExpression(sc, clause.Cond)
			child := sc.newChild(clause.Body)
			analyzeBlock(child, clause.Body)
		}
		if s.Else != nil {
			child := sc.newChild(s.Else)
			analyzeBlock(child, s.Else)
		}
	case *ast.NumericForStatement:
		analyzeNumericFor(sc, s)
	case *ast.GenericForStatement:
		analyzeGenericFor(sc, s)
	case *ast.LocalFunctionStatement:
		analyzeLocalFunction(sc, s)
	case *ast.FunctionDeclStatement:
		analyzeFunctionDecl(sc, s)
	}
}

func analyzeLocalAssign(sc *Scope, s *ast.LocalAssignStatement) {
	types := make([]typesystem.TypeInfo, len(s.Rhs))
	for i, e := range s.Rhs {
		types[i] = TypeOfExpression(sc, e)
	}
	for i, name := range s.Names {
		if i < len(types) {
			sc.AddLocal(name, types[i])
		} else {
			sc.AddLocal(name, typesystem.Unknown)
		}
	}
}

func analyzeAssign(sc *Scope, s *ast.AssignStatement) {
	types := make([]typesystem.TypeInfo, len(s.Rhs))
	for i, e := range s.Rhs {
		types[i] = TypeOfExpression(sc, e)
	}
	for i, lhs := range s.Lhs {
		var t typesystem.TypeInfo
		if i < len(types) {
			t = types[i]
		} else {
			t = typesystem.Unknown
		}
		assignVariable(sc, lhs, t)
	}
}

// assignVariable implements "global/table assignment" (spec §4.C): resolve
// the head in the scope chain (creating it as table if new), then walk any
// `.name`/`[expr]` postfixes, creating intermediate tables as needed. An
// `[expr]` postfix aborts the walk, leaving its containing table marked as
// table but the specific member unbound.
func assignVariable(sc *Scope, v *ast.Variable, valType typesystem.TypeInfo) {
	name, ok := headName(v.Head)
	if !ok {
		return // parenthesized head: not a valid assignment target, nothing to bind
	}
	if len(v.Postfixes) == 0 {
		sc.resolveAssignHead(name).set(valType)
		return
	}

	lv := sc.resolveAssignHead(name)
	cur := lv.get()
	if cur.Kind != typesystem.KindTable && cur.Kind != typesystem.KindUserdata {
		cur = typesystem.NewTable()
	}
	lv.set(cur)

	for i, pf := range v.Postfixes {
		last := i == len(v.Postfixes)-1
		switch p := pf.(type) {
		case *ast.DotPostfix:
			if last {
				cur.SetMember(p.Name, valType)
				return
			}
			member, ok := cur.Member(p.Name)
			if !ok || (member.Kind != typesystem.KindTable && member.Kind != typesystem.KindUserdata) {
				member = typesystem.NewTable()
			}
			cur.SetMember(p.Name, member)
			cur = member
		case *ast.IndexPostfix:
			TypeOfExpression(sc, p.Index)
			return
		default:
			return
		}
	}
}

func headName(h ast.PrefixHead) (string, bool) {
	if n, ok := h.(*ast.Name); ok {
		return n.Value, true
	}
	return "", false
}

func analyzeNumericFor(sc *Scope, s *ast.NumericForStatement) {
	TypeOfExpression(sc, s.Start)
	TypeOfExpression(sc, s.Stop)
	if s.Step != nil {
		TypeOfExpression(sc, s.Step)
	}
	child := sc.newChild(s.Body)
	child.AddLocal(s.Var, typesystem.Number)
	analyzeBlock(child, s.Body)
}

func analyzeGenericFor(sc *Scope, s *ast.GenericForStatement) {
	types := make([]typesystem.TypeInfo, len(s.Exprs))
	for i, e := range s.Exprs {
		types[i] = TypeOfExpression(sc, e)
	}
	child := sc.newChild(s.Body)
	for i, name := range s.Names {
		if i < len(types) {
			child.AddLocal(name, types[i])
		} else {
			child.AddLocal(name, typesystem.Unknown)
		}
	}
	analyzeBlock(child, s.Body)
}

func analyzeLocalFunction(sc *Scope, s *ast.LocalFunctionStatement) {
	sig := functionSignature(s.Function, false)
	fnType := typesystem.NewFunction(sig)
	sc.AddLocalFunction(s.Name, fnType) // bound before the body so it can recurse
	analyzeFunctionBody(sc, s.Function, sig, s.Name)
}

func analyzeFunctionDecl(sc *Scope, s *ast.FunctionDeclStatement) {
	sig := functionSignature(s.Function, s.Name.IsMethod())
	fnType := typesystem.NewFunction(sig)
	key := scriptEntryKey(s.Name)

	if len(s.Name.Path) == 1 && !s.Name.IsMethod() {
		sc.AssignGlobalFunction(s.Name.Path[0], fnType)
	} else {
		assignDottedFunction(sc, s.Name, fnType)
	}
	analyzeFunctionBody(sc, s.Function, sig, key)
}

// assignDottedFunction mirrors assignVariable's table-creating walk for a
// `function a.b.c:d(...) … end` declaration's name path.
func assignDottedFunction(sc *Scope, name ast.FuncName, fnType typesystem.TypeInfo) {
	lv := sc.resolveAssignHead(name.Path[0])
	cur := lv.get()
	if cur.Kind != typesystem.KindTable && cur.Kind != typesystem.KindUserdata {
		cur = typesystem.NewTable()
	}
	lv.set(cur)

	segments := append([]string{}, name.Path[1:]...)
	if name.Method != "" {
		segments = append(segments, name.Method)
	}
	for i, seg := range segments {
		if i == len(segments)-1 {
			cur.SetMember(seg, fnType)
			return
		}
		member, ok := cur.Member(seg)
		if !ok || (member.Kind != typesystem.KindTable && member.Kind != typesystem.KindUserdata) {
			member = typesystem.NewTable()
		}
		cur.SetMember(seg, member)
		cur = member
	}
}

// scriptEntryKey renders a FuncName the same way a host registers an entry
// in UserDefined::scriptEntries, e.g. "a.b.c:d" or plain "foo".
func scriptEntryKey(name ast.FuncName) string {
	key := strings.Join(name.Path, ".")
	if name.Method != "" {
		key += ":" + name.Method
	}
	return key
}

func functionSignature(fb *ast.FunctionBody, isMethod bool) typesystem.FunctionSignature {
	params := make([]typesystem.Parameter, len(fb.Params))
	for i, p := range fb.Params {
		params[i] = typesystem.Parameter{Name: p, Type: typesystem.Unknown}
	}
	return typesystem.FunctionSignature{IsMethod: isMethod, Parameters: params}
}

// analyzeFunctionBody analyzes fb's body in a fresh child scope pre-
// populated with its declared parameters. If entryKey names a registered
// UserDefined::scriptEntries signature, each parameter's Unknown type is
// overridden by the corresponding declared type (spec §4.C).
func analyzeFunctionBody(sc *Scope, fb *ast.FunctionBody, sig typesystem.FunctionSignature, entryKey string) {
	child := sc.newChild(fb.Body)
	entry, hasEntry := sc.ud.scriptEntry(entryKey)
	for i, p := range sig.Parameters {
		t := p.Type
		if hasEntry && entry.Function != nil && i < len(entry.Function.Parameters) {
			t = entry.Function.Parameters[i].Type
		}
		child.AddLocal(p.Name, t)
	}
	analyzeBlock(child, fb.Body)
}
