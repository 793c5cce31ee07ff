// Package typesystem implements component A of the Lua editor-intelligence
// pipeline: the closed value-type tag set, TypeInfo/FunctionSignature
// products, the human type-annotation grammar, and the conversion policy
// used while typing expressions (spec §4.A).
package typesystem

// Kind is the closed tag set of inferable Lua value types (spec §3).
type Kind int

const (
	KindNil Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindTable
	KindFunction
	KindUserdata
	KindThread
	KindArray
	KindUnknown
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindTable:
		return "table"
	case KindFunction:
		return "function"
	case KindUserdata:
		return "userdata"
	case KindThread:
		return "thread"
	case KindArray:
		return "array"
	case KindUnknown:
		return "unknown"
	case KindError:
		return "error"
	}
	return "unknown"
}

// builtinKind maps the type-annotation grammar's primitive keywords to a
// Kind (spec §4.A: "nil|boolean|number|int|integer|float|double|string|table").
// The numeric aliases int, integer, float and double collapse to KindNumber.
func builtinKind(ident string) (Kind, bool) {
	switch ident {
	case "nil":
		return KindNil, true
	case "boolean":
		return KindBoolean, true
	case "number", "int", "integer", "float", "double":
		return KindNumber, true
	case "string":
		return KindString, true
	case "table":
		return KindTable, true
	}
	return KindNil, false
}
