package typesystem

import "testing"

func TestFromAnnotationBuiltins(t *testing.T) {
	cases := map[string]Kind{
		"number":  KindNumber,
		"int":     KindNumber,
		"integer": KindNumber,
		"float":   KindNumber,
		"double":  KindNumber,
		"boolean": KindBoolean,
		"string":  KindString,
		"table":   KindTable,
		"nil":     KindNil,
	}
	for text, want := range cases {
		got := FromAnnotation(text)
		if got.Kind != want {
			t.Errorf("FromAnnotation(%q).Kind = %v, want %v", text, got.Kind, want)
		}
	}
}

func TestFromAnnotationArrayAndUserdata(t *testing.T) {
	got := FromAnnotation("string[]")
	if got.Kind != KindArray || got.Name != "string" {
		t.Fatalf("got %+v", got)
	}
	got = FromAnnotation("Player")
	if got.Kind != KindUserdata || got.Name != "Player" {
		t.Fatalf("got %+v", got)
	}
	got = FromAnnotation("Player[]")
	if got.Kind != KindArray || got.Name != "Player" {
		t.Fatalf("got %+v", got)
	}
}

func TestFromAnnotationFunction(t *testing.T) {
	got := FromAnnotation("number function(string name, boolean b)")
	if got.Kind != KindFunction {
		t.Fatalf("got %+v", got)
	}
	if got.Function.IsMethod {
		t.Fatal("expected non-method")
	}
	if len(got.Function.Parameters) != 2 {
		t.Fatalf("got %d params", len(got.Function.Parameters))
	}
	if got.Function.Parameters[0].Name != "name" || got.Function.Parameters[0].Type.Kind != KindString {
		t.Fatalf("got param0 %+v", got.Function.Parameters[0])
	}
	if got.Function.Parameters[1].Name != "b" || got.Function.Parameters[1].Type.Kind != KindBoolean {
		t.Fatalf("got param1 %+v", got.Function.Parameters[1])
	}
	if len(got.Function.Results) != 1 || got.Function.Results[0].Kind != KindNumber {
		t.Fatalf("got results %+v", got.Function.Results)
	}
}

func TestFromAnnotationMultiResultAndMethod(t *testing.T) {
	got := FromAnnotation("number, Player function(Player[] playerList)")
	if got.Kind != KindFunction {
		t.Fatalf("got %+v", got)
	}
	if len(got.Function.Results) != 2 {
		t.Fatalf("got results %+v", got.Function.Results)
	}
	if got.Function.Results[1].Kind != KindUserdata || got.Function.Results[1].Name != "Player" {
		t.Fatalf("got result1 %+v", got.Function.Results[1])
	}
	if got.Function.Parameters[0].Type.Kind != KindArray || got.Function.Parameters[0].Type.Name != "Player" {
		t.Fatalf("got param0 %+v", got.Function.Parameters[0])
	}

	got = FromAnnotation("Player[] method(number id)")
	if !got.Function.IsMethod {
		t.Fatal("expected method")
	}
}

func TestFromAnnotationNoArgs(t *testing.T) {
	got := FromAnnotation("function()")
	if got.Kind != KindFunction || len(got.Function.Parameters) != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestFromAnnotationBadSyntax(t *testing.T) {
	for _, text := range []string{"", "function(", "123", "number function", "a,b"} {
		got := FromAnnotation(text)
		if got.Kind != KindError {
			t.Errorf("FromAnnotation(%q) = %+v, want error", text, got)
		}
	}
}

func TestAnnotationRoundTrip(t *testing.T) {
	sources := []string{
		"number function(string name, boolean b)",
		"number, Player function(Player[] playerList)",
		"Player[] method(number id)",
		"function()",
	}
	for _, src := range sources {
		t1 := FromAnnotation(src)
		if t1.Kind != KindFunction {
			t.Fatalf("%q: expected function, got %+v", src, t1)
		}
		t2 := FromAnnotation(t1.FunctionDefinition())
		if !t1.Equal(t2) {
			t.Errorf("round trip mismatch for %q: %+v vs %+v (via %q)", src, t1, t2, t1.FunctionDefinition())
		}
	}
}
