package session

import (
	"strings"
	"testing"

	"github.com/cguebert/luaautocomplete/internal/scope"
	"github.com/cguebert/luaautocomplete/internal/typesystem"
)

func TestUpdateProgramRetainsPreviousStateOnFailure(t *testing.T) {
	s := New(nil)
	if !s.UpdateProgram("local x = 1\n") {
		t.Fatal("expected valid program to parse")
	}
	if s.UpdateProgram("local x = (\n") {
		t.Fatal("expected malformed program to fail")
	}
	if got := s.GetTypeAtPos(strings.Index(s.current.source, "x")); got.Kind != typesystem.KindNumber {
		t.Errorf("after a failed update, GetTypeAtPos(x) = %v, want number from the retained prior state", got.Kind)
	}
}

func TestGetTypeAtPosResolvesLocal(t *testing.T) {
	s := New(nil)
	source := "local greeting = \"hi\"\nprint(greeting)\n"
	if !s.UpdateProgram(source) {
		t.Fatal("expected source to parse")
	}
	pos := strings.Index(source, "print(greeting)") + len("print(")
	if got := s.GetTypeAtPos(pos); got.Kind != typesystem.KindString {
		t.Errorf("GetTypeAtPos(greeting) = %v, want string", got.Kind)
	}
}

func TestGetVariableCompletionListIncludesLocals(t *testing.T) {
	s := New(nil)
	source := "local count = 1\nlocal total = 2\n"
	if !s.UpdateProgram(source) {
		t.Fatal("expected source to parse")
	}
	elements := s.GetVariableCompletionList(len(source))
	if _, ok := elements["count"]; !ok {
		t.Error("expected completion list to include 'count'")
	}
	if _, ok := elements["total"]; !ok {
		t.Error("expected completion list to include 'total'")
	}
}

func TestGetArgumentContextResolvesEnclosingCallSignature(t *testing.T) {
	ud := scope.NewUserDefined()
	ud.AddFunction("greet", typesystem.FunctionSignature{
		Parameters: []typesystem.Parameter{
			{Name: "name", Type: typesystem.String},
			{Name: "punctuation", Type: typesystem.String},
		},
	})
	s := New(ud)
	source := "greet(\"x\", \"y\")"
	if !s.UpdateProgram(source) {
		t.Fatal("expected source to parse")
	}
	pos := strings.LastIndex(source, "\"y\"") // just before the second argument
	argCtx, ok := s.GetArgumentContext(pos)
	if !ok {
		t.Fatal("expected an enclosing call for 'greet'")
	}
	if argCtx.ArgumentIndex != 1 {
		t.Errorf("ArgumentIndex = %d, want 1", argCtx.ArgumentIndex)
	}
}
