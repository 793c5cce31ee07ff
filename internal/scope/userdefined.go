// Package scope implements component C of the pipeline: the scope tree
// built by walking a parsed Block, and the pure expression-typing rules
// that query it (spec §4.C).
package scope

import "github.com/cguebert/luaautocomplete/internal/typesystem"

// UserDefined is the host-supplied ambient environment: variables and free
// functions visible from anywhere in the program, named record types the
// type-annotation grammar can reference, and expected signatures for
// script entry points the host itself will invoke (spec §3 "UserDefined").
// A nil *UserDefined is valid and behaves as an empty environment.
type UserDefined struct {
	Variables     map[string]typesystem.TypeInfo
	Functions     map[string]typesystem.TypeInfo
	Records       map[string]typesystem.TypeInfo
	ScriptEntries map[string]typesystem.TypeInfo
}

// NewUserDefined returns an empty ambient environment ready for Add calls.
func NewUserDefined() *UserDefined {
	return &UserDefined{
		Variables:     map[string]typesystem.TypeInfo{},
		Functions:     map[string]typesystem.TypeInfo{},
		Records:       map[string]typesystem.TypeInfo{},
		ScriptEntries: map[string]typesystem.TypeInfo{},
	}
}

// AddVariable registers an ambient global variable.
func (u *UserDefined) AddVariable(name string, t typesystem.TypeInfo) {
	u.Variables[name] = t
}

// AddFunction registers an ambient free function.
func (u *UserDefined) AddFunction(name string, sig typesystem.FunctionSignature) {
	u.Functions[name] = typesystem.NewFunction(sig)
}

// AddRecord registers a named record type, referenceable by name from the
// type-annotation grammar (spec §4.A "namedType") and returned as the
// member-function receiver kind for userdata values.
func (u *UserDefined) AddRecord(name string, t typesystem.TypeInfo) {
	t.Name = name
	u.Records[name] = t
}

// AddScriptEntry declares the expected signature of a callback the host
// will invoke by name, keyed the same way a FunctionDeclStatement's
// dotted/method name is rendered (spec §4.C "UserDefined::scriptEntries").
func (u *UserDefined) AddScriptEntry(name string, sig typesystem.FunctionSignature) {
	u.ScriptEntries[name] = typesystem.NewFunction(sig)
}

func (u *UserDefined) variable(name string) (typesystem.TypeInfo, bool) {
	if u == nil {
		return typesystem.Unknown, false
	}
	if t, ok := u.Variables[name]; ok {
		return t, true
	}
	if t, ok := u.Functions[name]; ok {
		return t, true
	}
	return typesystem.Unknown, false
}

func (u *UserDefined) record(name string) (typesystem.TypeInfo, bool) {
	if u == nil {
		return typesystem.Unknown, false
	}
	t, ok := u.Records[name]
	return t, ok
}

func (u *UserDefined) scriptEntry(name string) (typesystem.TypeInfo, bool) {
	if u == nil {
		return typesystem.Unknown, false
	}
	t, ok := u.ScriptEntries[name]
	return t, ok
}
