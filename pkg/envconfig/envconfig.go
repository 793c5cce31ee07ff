// Package envconfig loads a host's UserDefined ambient environment (spec
// §3 "UserDefined") from a YAML document, so an editor integration can
// ship the Lua API surface it exposes to scripts as a plain config file
// instead of Go source.
package envconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cguebert/luaautocomplete/internal/scope"
	"github.com/cguebert/luaautocomplete/internal/typesystem"
)

// Document is the YAML shape accepted by Load. Every type-bearing field is
// a string parsed with the spec §4.A annotation grammar, so a host never
// needs to hand-build a TypeInfo.
type Document struct {
	Variables     map[string]string    `yaml:"variables"`
	Functions     map[string]string    `yaml:"functions"`
	Records       map[string]RecordDef `yaml:"records"`
	ScriptEntries map[string]string    `yaml:"scriptEntries"`
}

// RecordDef describes one userdata record type: a name-to-annotation map
// of its members (variables and methods alike).
type RecordDef struct {
	Members map[string]string `yaml:"members"`
}

// Load parses yamlText into a *scope.UserDefined. On the first malformed
// annotation encountered it returns a nil environment and an error naming
// that annotation; no partially-loaded environment is returned.
func Load(yamlText []byte) (*scope.UserDefined, error) {
	var doc Document
	if err := yaml.Unmarshal(yamlText, &doc); err != nil {
		return nil, fmt.Errorf("envconfig: parsing yaml: %w", err)
	}
	return FromDocument(doc)
}

// FromDocument converts an already-parsed Document into a UserDefined.
func FromDocument(doc Document) (*scope.UserDefined, error) {
	ud := scope.NewUserDefined()

	for name, annotation := range doc.Variables {
		t := typesystem.FromAnnotation(annotation)
		if t.Kind == typesystem.KindError {
			return nil, fmt.Errorf("envconfig: variable %q: bad annotation %q", name, annotation)
		}
		ud.AddVariable(name, t)
	}

	for name, annotation := range doc.Functions {
		sig, err := parseFunctionAnnotation(name, annotation)
		if err != nil {
			return nil, err
		}
		ud.AddFunction(name, sig)
	}

	for name, entryAnnotation := range doc.ScriptEntries {
		sig, err := parseFunctionAnnotation(name, entryAnnotation)
		if err != nil {
			return nil, err
		}
		ud.AddScriptEntry(name, sig)
	}

	for name, def := range doc.Records {
		record := typesystem.NewUserdata(name)
		for memberName, annotation := range def.Members {
			t := typesystem.FromAnnotation(annotation)
			if t.Kind == typesystem.KindError {
				return nil, fmt.Errorf("envconfig: record %q member %q: bad annotation %q", name, memberName, annotation)
			}
			record.SetMember(memberName, t)
		}
		ud.AddRecord(name, record)
	}

	return ud, nil
}

func parseFunctionAnnotation(name, annotation string) (typesystem.FunctionSignature, error) {
	t := typesystem.FromAnnotation(annotation)
	if t.Kind != typesystem.KindFunction || t.Function == nil {
		return typesystem.FunctionSignature{}, fmt.Errorf("envconfig: %q: annotation %q is not a function", name, annotation)
	}
	return *t.Function, nil
}
