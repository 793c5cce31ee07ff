package cursor

import "testing"

func TestExtractVariableAtPosPlainName(t *testing.T) {
	text := "print(x)"
	got := ExtractVariableAtPos(text, 1) // inside "print"
	if got != "print" {
		t.Errorf("ExtractVariableAtPos = %q, want %q", got, "print")
	}
}

func TestExtractVariableAtPosDottedChain(t *testing.T) {
	text := "a.b.c"
	got := ExtractVariableAtPos(text, len(text)-1)
	if got != "a.b.c" {
		t.Errorf("ExtractVariableAtPos = %q, want %q", got, "a.b.c")
	}
}

func TestExtractVariableAtPosCallThenMember(t *testing.T) {
	text := "foo().bar"
	got := ExtractVariableAtPos(text, len(text)-1)
	if got != "foo().bar" {
		t.Errorf("ExtractVariableAtPos = %q, want %q", got, "foo().bar")
	}
}

func TestExtractVariableAtPosOutOfRange(t *testing.T) {
	if got := ExtractVariableAtPos("abc", -1); got != "" {
		t.Errorf("ExtractVariableAtPos(-1) = %q, want empty", got)
	}
	if got := ExtractVariableAtPos("abc", 10); got != "" {
		t.Errorf("ExtractVariableAtPos(10) = %q, want empty", got)
	}
}

func TestFindEnclosingCallCountsDepthOneCommas(t *testing.T) {
	text := "f(1, g(2, 3), 4)"
	pos := len(text) - 2 // just before the final ')', on "4"
	openIdx, argIndex, ok := findEnclosingCall(text, pos)
	if !ok {
		t.Fatal("expected an enclosing call")
	}
	if text[openIdx] != '(' || openIdx != 1 {
		t.Errorf("openIdx = %d, want 1", openIdx)
	}
	if argIndex != 2 {
		t.Errorf("argIndex = %d, want 2", argIndex)
	}
}
