package langconfig

import "testing"

func TestHasSourceExt(t *testing.T) {
	if !HasSourceExt("script.lua") {
		t.Error("expected script.lua to be recognized")
	}
	if HasSourceExt("script.txt") {
		t.Error("did not expect script.txt to be recognized")
	}
}

func TestIsKeyword(t *testing.T) {
	if !IsKeyword("function") {
		t.Error("expected 'function' to be a keyword")
	}
	if IsKeyword("greet") {
		t.Error("did not expect 'greet' to be a keyword")
	}
}
