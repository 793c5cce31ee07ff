package cursor

import (
	"testing"

	"github.com/cguebert/luaautocomplete/internal/parser"
	"github.com/cguebert/luaautocomplete/internal/scope"
	"github.com/cguebert/luaautocomplete/internal/typesystem"
)

func TestGetArgumentCompletionListResolvesEnumMembersViaNamedRecord(t *testing.T) {
	ud := scope.NewUserDefined()
	colorRecord := typesystem.NewUserdata("Color")
	colorRecord.SetMember("Red", typesystem.NewUserdata("Color"))
	colorRecord.SetMember("Green", typesystem.NewUserdata("Color"))
	ud.AddRecord("Color", colorRecord)
	ud.AddFunction("setColor", typesystem.FunctionSignature{
		Parameters: []typesystem.Parameter{{Name: "c", Type: typesystem.NewUserdata("Color")}},
	})

	source := "setColor()"
	result := parser.ParseBlock(source, false)
	if !result.Parsed {
		t.Fatal("source failed to parse")
	}
	root := scope.Analyze(result.Block, ud)

	pos := len("setColor(")
	elements := GetArgumentCompletionList(root, source, pos)
	if _, ok := elements["Red"]; !ok {
		t.Error("expected 'Red' completion drawn from Color's named record")
	}
	if _, ok := elements["Green"]; !ok {
		t.Error("expected 'Green' completion drawn from Color's named record")
	}
}
