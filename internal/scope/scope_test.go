package scope

import (
	"testing"

	"github.com/cguebert/luaautocomplete/internal/parser"
	"github.com/cguebert/luaautocomplete/internal/typesystem"
)

func mustParse(t *testing.T, source string) *Scope {
	t.Helper()
	result := parser.ParseBlock(source, false)
	if !result.Parsed {
		t.Fatalf("source failed to parse: %s", source)
	}
	return Analyze(result.Block, NewUserDefined())
}

func TestLocalShadowsGlobal(t *testing.T) {
	root := mustParse(t, `
x = "global"
do
    local x = 1
end
`)
	inner := root.Children[0]
	if got := inner.GetVariableType("x"); got.Kind != typesystem.KindNumber {
		t.Errorf("inner x = %v, want number", got.Kind)
	}
	if got := root.GetVariableType("x"); got.Kind != typesystem.KindString {
		t.Errorf("outer x = %v, want string", got.Kind)
	}
}

func TestGlobalsAreSharedAcrossTheWholeTree(t *testing.T) {
	root := mustParse(t, `
do
    y = 42
end
do
    -- y was never declared local here, should still see the global write
end
`)
	second := root.Children[1]
	if got := second.GetVariableType("y"); got.Kind != typesystem.KindNumber {
		t.Errorf("second block sees y = %v, want number (globals are shared)", got.Kind)
	}
}

func TestAssignDottedFunctionCreatesTable(t *testing.T) {
	root := mustParse(t, `
function obj.greet(name)
    return "hi"
end
`)
	obj := root.GetVariableType("obj")
	if obj.Kind != typesystem.KindTable {
		t.Fatalf("obj = %v, want table", obj.Kind)
	}
	greet, ok := obj.Member("greet")
	if !ok || greet.Kind != typesystem.KindFunction {
		t.Errorf("obj.greet = %v, ok=%v, want function", greet.Kind, ok)
	}
}

func TestLocalFunctionVisibleInsideItsOwnBody(t *testing.T) {
	root := mustParse(t, `
local function fact(n)
    if n <= 1 then
        return 1
    else
        return n * fact(n - 1)
    end
end
`)
	body := root.Children[0]
	if got := body.GetVariableType("fact"); got.Kind != typesystem.KindFunction {
		t.Errorf("fact inside its body = %v, want function", got.Kind)
	}
}

func TestUserdataMemberResolvesViaNamedRecord(t *testing.T) {
	ud := NewUserDefined()
	record := typesystem.NewUserdata("Player")
	record.SetMember("position", typesystem.Number)
	ud.AddRecord("Player", record)
	ud.AddVariable("player", typesystem.NewUserdata("Player"))

	result := parser.ParseBlock(`
local pos = player.position
`, false)
	if !result.Parsed {
		t.Fatal("source failed to parse")
	}
	root := Analyze(result.Block, ud)
	if got := root.GetVariableType("pos"); got.Kind != typesystem.KindNumber {
		t.Errorf("pos = %v, want number (resolved through Player's named record)", got.Kind)
	}
}

func TestGetElementsOuterShadowedByInner(t *testing.T) {
	root := mustParse(t, `
local a = 1
do
    local a = "shadow"
end
`)
	inner := root.Children[0]
	els := inner.GetElements(false)
	el, ok := els["a"]
	if !ok {
		t.Fatal("expected a in completion list")
	}
	if el.Type.Kind != typesystem.KindString {
		t.Errorf("a = %v, want string (inner shadow wins)", el.Type.Kind)
	}
}
