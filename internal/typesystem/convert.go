package typesystem

// Convert implements the conversion policy used by the expression-type
// visitor (spec §4.A "convert(src, dst)"):
//
//   - identity is free
//   - error converts to anything as error
//   - unknown converts to whatever dst is asked for
//   - anything converts to boolean
//   - number and string convert to each other
//   - any other cross-kind conversion is an error
func Convert(src TypeInfo, dst Kind) TypeInfo {
	if src.Kind == dst {
		return src
	}
	if src.Kind == KindError {
		return Err
	}
	if src.Kind == KindUnknown {
		return TypeInfo{Kind: dst}
	}
	if dst == KindBoolean {
		return Boolean
	}
	if (src.Kind == KindNumber && dst == KindString) || (src.Kind == KindString && dst == KindNumber) {
		return TypeInfo{Kind: dst}
	}
	return Err
}

// Convertible reports whether src can be converted to dst without
// producing KindError.
func Convertible(src TypeInfo, dst Kind) bool {
	return Convert(src, dst).Kind != KindError
}
