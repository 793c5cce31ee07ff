package typesystem

import "strings"

// annotToken is one lexical unit of the type-annotation grammar (spec
// §4.A): identifiers, "[]", ",", "(", ")", and the two keywords `function`
// and `method`. The grammar is whitespace-insensitive.
type annotToken struct {
	text string
}

func tokenizeAnnotation(s string) []annotToken {
	var toks []annotToken
	i := 0
	n := len(s)
	isIdentChar := func(c byte) bool {
		return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
	}
	for i < n {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '[' && i+1 < n && s[i+1] == ']':
			toks = append(toks, annotToken{"[]"})
			i += 2
		case c == ',' || c == '(' || c == ')':
			toks = append(toks, annotToken{string(c)})
			i++
		default:
			if !isIdentChar(c) {
				// Unrecognized character: emit it as its own bad token so
				// the parser below can fail cleanly.
				toks = append(toks, annotToken{string(c)})
				i++
				continue
			}
			start := i
			for i < n && isIdentChar(s[i]) {
				i++
			}
			toks = append(toks, annotToken{s[start:i]})
		}
	}
	return toks
}

type annotParser struct {
	toks []annotToken
	pos  int
	bad  bool
}

func (p *annotParser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos].text
}

func (p *annotParser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func isIdent(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isKeyword reports whether tok is one of the grammar's two reserved words.
// They are ident-shaped lexically but never valid type or parameter names
// (original grammar: `name = lexeme[...] - (lit("function")|lit("method"))`).
func isKeyword(tok string) bool {
	return tok == "function" || tok == "method"
}

// parseNamedType parses `ident ["[]"]`.
func (p *annotParser) parseNamedType() TypeInfo {
	ident := p.next()
	if !isIdent(ident) || isKeyword(ident) {
		p.bad = true
		return Err
	}
	if p.peek() == "[]" {
		p.next()
		return NewArray(ident)
	}
	if k, ok := builtinKind(ident); ok {
		return TypeInfo{Kind: k}
	}
	return NewUserdata(ident)
}

// parseNamedTypeList parses a comma-separated list of namedType (the result
// list preceding the `function`/`method` keyword). It is optional: an empty
// list means the results are bare `nil` (spec §6 "Example accepted strings"
// includes the bare "function()").
func (p *annotParser) parseNamedTypeList() []TypeInfo {
	if p.peek() == "" || isKeyword(p.peek()) {
		return nil
	}
	var out []TypeInfo
	out = append(out, p.parseNamedType())
	for p.peek() == "," {
		p.next()
		out = append(out, p.parseNamedType())
	}
	return out
}

// parseArgument parses `namedType ident`.
func (p *annotParser) parseArgument() Parameter {
	typ := p.parseNamedType()
	name := p.next()
	if !isIdent(name) {
		p.bad = true
	}
	return Parameter{Name: name, Type: typ}
}

// FromAnnotation parses a human-written type-annotation string (spec §4.A),
// e.g. "number function(string name, boolean b)" or "Player[] method(number id)".
// On syntax error it returns Err, a plain KindError TypeInfo; the result
// does not record an ErrorKind.
func FromAnnotation(text string) TypeInfo {
	toks := tokenizeAnnotation(text)
	if len(toks) == 0 {
		return Err
	}
	p := &annotParser{toks: toks}

	results := p.parseNamedTypeList()
	if p.bad {
		return Err
	}

	switch p.peek() {
	case "function", "method":
		isMethod := p.next() == "method"
		if p.next() != "(" {
			return Err
		}
		var params []Parameter
		if p.peek() != ")" {
			params = append(params, p.parseArgument())
			for p.peek() == "," {
				p.next()
				params = append(params, p.parseArgument())
			}
		}
		if p.next() != ")" {
			return Err
		}
		if p.pos != len(p.toks) || p.bad {
			return Err
		}
		return NewFunction(FunctionSignature{IsMethod: isMethod, Parameters: params, Results: results})
	default:
		// Plain namedType: only valid when exactly one result and no
		// trailing tokens remain (the grammar has no bare comma-list form).
		if len(results) != 1 || p.pos != len(p.toks) {
			return Err
		}
		return results[0]
	}
}

// TypeName returns a stable, reparseable display fragment for t (spec §6
// TypeInfo::type_name).
func (t TypeInfo) TypeName() string {
	switch t.Kind {
	case KindArray:
		return t.Name + "[]"
	case KindUserdata:
		return t.Name
	case KindFunction:
		return t.FunctionDefinition()
	default:
		return t.Kind.String()
	}
}

// FunctionDefinition pretty-prints a function-kinded TypeInfo back into the
// §4.A annotation grammar (spec §6 TypeInfo::function_definition), such
// that FromAnnotation(t.FunctionDefinition()) round-trips to an equal
// TypeInfo (invariant 1).
func (t TypeInfo) FunctionDefinition() string {
	if t.Kind != KindFunction || t.Function == nil {
		return ""
	}
	f := t.Function
	var sb strings.Builder
	for i, r := range f.Results {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.TypeName())
	}
	if len(f.Results) > 0 {
		sb.WriteByte(' ')
	}
	if f.IsMethod {
		sb.WriteString("method(")
	} else {
		sb.WriteString("function(")
	}
	for i, param := range f.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(param.Type.TypeName())
		sb.WriteByte(' ')
		sb.WriteString(param.Name)
	}
	sb.WriteByte(')')
	return sb.String()
}
