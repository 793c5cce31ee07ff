package scope

import (
	"github.com/cguebert/luaautocomplete/internal/ast"
	"github.com/cguebert/luaautocomplete/internal/typesystem"
)

// globalTable is the single tree-wide bag of names created by the first
// unqualified write anywhere in the program (spec §4.C "global tables are
// created on first write, matching Lua's semantics"). It is shared by
// every Scope in a tree, unlike locals which are block-scoped.
type globalTable struct {
	variables map[string]typesystem.TypeInfo
	functions map[string]typesystem.TypeInfo
}

// Scope mirrors one Block of the AST (spec §4.C). Name resolution walks
// the Parent chain for locals, then falls through to the shared global
// table, then to the ambient UserDefined environment.
type Scope struct {
	Block    *ast.Block
	Parent   *Scope
	Children []*Scope

	locals    map[string]typesystem.TypeInfo
	functions map[string]typesystem.TypeInfo
	labels    map[string]bool

	globals *globalTable
	ud      *UserDefined
}

func newRootScope(block *ast.Block, ud *UserDefined) *Scope {
	return &Scope{
		Block:     block,
		locals:    map[string]typesystem.TypeInfo{},
		functions: map[string]typesystem.TypeInfo{},
		labels:    map[string]bool{},
		globals:   &globalTable{variables: map[string]typesystem.TypeInfo{}, functions: map[string]typesystem.TypeInfo{}},
		ud:        ud,
	}
}

func (s *Scope) newChild(block *ast.Block) *Scope {
	c := &Scope{
		Block:     block,
		Parent:    s,
		locals:    map[string]typesystem.TypeInfo{},
		functions: map[string]typesystem.TypeInfo{},
		labels:    map[string]bool{},
		globals:   s.globals,
		ud:        s.ud,
	}
	s.Children = append(s.Children, c)
	return c
}

// AddLocal binds name as a local in s (spec §4.C "local assignment").
func (s *Scope) AddLocal(name string, t typesystem.TypeInfo) { s.locals[name] = t }

// AddLocalFunction binds name as a local function, in the same namespace
// as AddLocal so a later plain local re-declaration shadows it correctly.
func (s *Scope) AddLocalFunction(name string, t typesystem.TypeInfo) { s.locals[name] = t }

// AddLabel records a goto-target label visible within s (spec §4.C "label
// statements").
func (s *Scope) AddLabel(name string) { s.labels[name] = true }

// GetVariableType resolves name: the local chain, then the shared global
// table, then the ambient environment (spec §4.C "getVariableType"). An
// unresolved name yields a nil-kinded TypeInfo whose Name is the
// identifier, distinguishable from
// `unknown` (identifier found but type not inferred) — spec §7 "Unknown
// identifier: surfaces as nil-kinded TypeInfo".
func (s *Scope) GetVariableType(name string) typesystem.TypeInfo {
	for cur := s; cur != nil; cur = cur.Parent {
		if t, ok := cur.locals[name]; ok {
			return t
		}
		if t, ok := cur.functions[name]; ok {
			return t
		}
	}
	if s.globals != nil {
		if t, ok := s.globals.variables[name]; ok {
			return t
		}
		if t, ok := s.globals.functions[name]; ok {
			return t
		}
	}
	if t, ok := s.ud.variable(name); ok {
		return t
	}
	return typesystem.TypeInfo{Kind: typesystem.KindNil, Name: name}
}

// GetFunctionType is kept as a distinct name for readers matching the spec
// text one-to-one; Lua has a single namespace so it delegates to
// GetVariableType.
func (s *Scope) GetFunctionType(name string) typesystem.TypeInfo { return s.GetVariableType(name) }

// Record looks up a named record type from the ambient environment (spec
// §4.A "namedType").
func (s *Scope) Record(name string) (typesystem.TypeInfo, bool) { return s.ud.record(name) }

// resolveMember looks up name on t, falling through to t's named record in
// the ambient environment when t itself has no such member (spec §4.C "On a
// userdata with named record: look up in the record's variables"). A
// userdata produced straight from an annotation (e.g. FromAnnotation
// ("Player")) carries no inline Members at all, so without this fallback
// every member access on it would resolve to nil.
func (s *Scope) resolveMember(t typesystem.TypeInfo, name string) (typesystem.TypeInfo, bool) {
	if m, ok := t.Member(name); ok {
		return m, true
	}
	if t.Kind == typesystem.KindUserdata && t.Name != "" {
		if record, ok := s.Record(t.Name); ok {
			return record.Member(name)
		}
	}
	return typesystem.Nil, false
}

// lvalue is a get/set pair for the head binding of an assignment or
// function-declaration target, abstracting over "already a local
// somewhere up the chain" vs. "falls through to the global table".
type lvalue struct {
	get func() typesystem.TypeInfo
	set func(typesystem.TypeInfo)
}

// resolveAssignHead finds where name is currently bound for write
// purposes: an enclosing local binding if one exists, else the shared
// global table, creating an empty slot there on first write (spec §4.C
// "global/table assignment … resolve a in the current scope chain").
func (s *Scope) resolveAssignHead(name string) lvalue {
	for cur := s; cur != nil; cur = cur.Parent {
		if _, ok := cur.locals[name]; ok {
			c := cur
			return lvalue{
				get: func() typesystem.TypeInfo { return c.locals[name] },
				set: func(t typesystem.TypeInfo) { c.locals[name] = t },
			}
		}
		if _, ok := cur.functions[name]; ok {
			c := cur
			return lvalue{
				get: func() typesystem.TypeInfo { return c.functions[name] },
				set: func(t typesystem.TypeInfo) { c.functions[name] = t },
			}
		}
	}
	g := s.globals
	return lvalue{
		get: func() typesystem.TypeInfo { return g.variables[name] },
		set: func(t typesystem.TypeInfo) { g.variables[name] = t },
	}
}

// AssignGlobalFunction registers a non-local function declaration's head
// name directly into the global table (used for a plain, undotted
// `function name(...)`, which behaves exactly like a single-name
// assignment).
func (s *Scope) AssignGlobalFunction(name string, t typesystem.TypeInfo) {
	s.globals.functions[name] = t
}

// GetElements returns the completion map visible from s (spec §4.C
// "getElements(localOnly)"). With localOnly=false every enclosing scope
// and the ambient environment contribute, outer bindings losing to inner
// shadows.
func (s *Scope) GetElements(localOnly bool) Elements {
	out := newElements()
	for cur := s; cur != nil; cur = cur.Parent {
		for name, t := range cur.locals {
			out.addIfAbsent(Element{Name: name, Kind: ElementVariable, Type: t, IsLocal: cur == s})
		}
		for name, t := range cur.functions {
			out.addIfAbsent(Element{Name: name, Kind: ElementFunction, Type: t, IsLocal: cur == s})
		}
		for name := range cur.labels {
			out.addIfAbsent(Element{Name: name, Kind: ElementLabel, IsLocal: cur == s})
		}
		if localOnly {
			break
		}
	}
	if localOnly {
		return out
	}
	if s.globals != nil {
		for name, t := range s.globals.variables {
			out.addIfAbsent(Element{Name: name, Kind: ElementVariable, Type: t})
		}
		for name, t := range s.globals.functions {
			out.addIfAbsent(Element{Name: name, Kind: ElementFunction, Type: t})
		}
	}
	if s.ud != nil {
		for name, t := range s.ud.Variables {
			out.addIfAbsent(Element{Name: name, Kind: ElementVariable, Type: t})
		}
		for name, t := range s.ud.Functions {
			out.addIfAbsent(Element{Name: name, Kind: ElementFunction, Type: t})
		}
	}
	return out
}

// MemberElements returns the completion map for a table/userdata-kinded
// type's members, used when the cursor sits right after `.` or `:` (spec
// §4.C "a parallel helper returns elements for that type's members"). A
// userdata's named record in s's ambient environment contributes any
// members not already present inline (spec §4.C "On a userdata with named
// record: look up in the record's variables").
func (s *Scope) MemberElements(t typesystem.TypeInfo) Elements {
	out := memberElementsOf(t)
	if t.Kind == typesystem.KindUserdata && t.Name != "" {
		if record, ok := s.Record(t.Name); ok {
			for _, el := range memberElementsOf(record) {
				out.addIfAbsent(el)
			}
		}
	}
	return out
}

func memberElementsOf(t typesystem.TypeInfo) Elements {
	out := newElements()
	if t.Kind != typesystem.KindTable && t.Kind != typesystem.KindUserdata {
		return out
	}
	for _, name := range t.MemberOrder {
		member := t.Members[name]
		kind := ElementVariable
		if member.Kind == typesystem.KindFunction {
			kind = ElementFunction
		}
		out[name] = Element{Name: name, Kind: kind, Type: member}
	}
	return out
}

// GetBlockAtPos is the component D DFS: innermost descendant block (of
// this scope's analyzed tree, but expressed over the AST directly since
// blocks don't need scope info) whose span covers pos (spec §4.D).
func GetBlockAtPos(root *ast.Block, pos int) (*ast.Block, bool) {
	var best *ast.Block
	for _, b := range root.AllBlocks() {
		if b.Pos().Covers(pos) {
			best = b
		}
	}
	return best, best != nil
}

// GetScopeAtPos narrows a scope tree to the innermost scope whose block
// covers pos (spec §4.D "getScopeAtPos").
func GetScopeAtPos(root *Scope, pos int) *Scope {
	cur := root
	for {
		if cur.Block == nil || !cur.Block.Pos().Covers(pos) {
			return cur
		}
		advanced := false
		for _, child := range cur.Children {
			if child.Block != nil && child.Block.Pos().Covers(pos) {
				cur = child
				advanced = true
				break
			}
		}
		if !advanced {
			return cur
		}
	}
}
