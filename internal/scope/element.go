package scope

import "github.com/cguebert/luaautocomplete/internal/typesystem"

// ElementKind classifies a named binding surfaced by GetElements (spec
// §4.C "ElementKind ∈ {variable, function, label}").
type ElementKind int

const (
	ElementVariable ElementKind = iota
	ElementFunction
	ElementLabel
)

func (k ElementKind) String() string {
	switch k {
	case ElementVariable:
		return "variable"
	case ElementFunction:
		return "function"
	case ElementLabel:
		return "label"
	}
	return "variable"
}

// Element is one entry of a completion list (spec §4.C "getElements").
type Element struct {
	Name    string
	Kind    ElementKind
	Type    typesystem.TypeInfo
	IsLocal bool
}

// Elements is a name-keyed completion map, as returned by GetElements and
// the query surface's completion operations.
type Elements map[string]Element

func newElements() Elements { return Elements{} }

// addIfAbsent inserts e unless the name is already present — used when
// walking outward through shadowing scopes (spec §4.C "added unless
// already shadowed by an inner name").
func (e Elements) addIfAbsent(el Element) {
	if _, exists := e[el.Name]; !exists {
		e[el.Name] = el
	}
}
