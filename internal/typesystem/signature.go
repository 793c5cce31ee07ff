package typesystem

// Parameter is a (name, TypeInfo) pair in a FunctionSignature's parameter
// list (spec §3).
type Parameter struct {
	Name string
	Type TypeInfo
}

// ResultTypeResolver computes a dependent return type from the call site:
// the enclosing scope, the argument expressions' already-inferred types,
// and (for method calls) the receiver's type. `scope` is `any` here to
// avoid an import cycle between typesystem and the scope package — callers
// type-assert it back to *scope.Scope.
type ResultTypeResolver func(scopeCtx any, arguments []TypeInfo, receiver TypeInfo) TypeInfo

// CompletionResolver produces argument-specific completion candidates for
// an active parameter index, e.g. enum-like members of that parameter's
// declared type.
type CompletionResolver func(scopeCtx any, argumentIndex int) map[string]TypeInfo

// FunctionSignature is the callable shape carried by a KindFunction
// TypeInfo (spec §3).
type FunctionSignature struct {
	IsMethod           bool // invocation via ':' strips an implicit receiver
	Parameters         []Parameter
	Results            []TypeInfo
	ResultTypeResolver ResultTypeResolver
	CompletionResolver CompletionResolver
}

// FirstResult returns the signature's first declared result, or Nil if it
// declares none (spec §4.C subType: "return the first result … if there
// are no results, return default-constructed").
func (f FunctionSignature) FirstResult() TypeInfo {
	if len(f.Results) == 0 {
		return Nil
	}
	return f.Results[0]
}

func (f FunctionSignature) equal(o FunctionSignature) bool {
	if f.IsMethod != o.IsMethod || len(f.Parameters) != len(o.Parameters) || len(f.Results) != len(o.Results) {
		return false
	}
	for i := range f.Parameters {
		if f.Parameters[i].Name != o.Parameters[i].Name || !f.Parameters[i].Type.Equal(o.Parameters[i].Type) {
			return false
		}
	}
	for i := range f.Results {
		if !f.Results[i].Equal(o.Results[i]) {
			return false
		}
	}
	return true
}
