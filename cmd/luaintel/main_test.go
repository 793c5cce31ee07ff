package main

import (
	"testing"

	"github.com/cguebert/luaautocomplete/internal/typesystem"
)

func TestDescribeTypeNil(t *testing.T) {
	if got := describeType(typesystem.Nil); got != "<no information>" {
		t.Errorf("describeType(Nil) = %q, want sentinel text", got)
	}
}

func TestDescribeTypeNumber(t *testing.T) {
	if got := describeType(typesystem.Number); got != "number" {
		t.Errorf("describeType(Number) = %q, want %q", got, "number")
	}
}

func TestSortedNamesOfNilIsEmpty(t *testing.T) {
	names := sortedNames(nil)
	if len(names) != 0 {
		t.Errorf("sortedNames(nil) = %v, want empty", names)
	}
}
