package lexer

import (
	"testing"

	"github.com/cguebert/luaautocomplete/internal/token"
)

func collect(src string) []token.Token {
	l := New(src)
	var out []token.Token
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestKeywordsAndNames(t *testing.T) {
	toks := collect("local x = function end")
	want := []token.Kind{token.LOCAL, token.NAME, token.ASSIGN, token.FUNCTION, token.END, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestNumbers(t *testing.T) {
	for _, src := range []string{"42", "3.14", "0x1F", "1e10", "0x1p4", ".5"} {
		toks := collect(src)
		if toks[0].Kind != token.NUMBER || toks[0].Lexeme != src {
			t.Fatalf("src %q: got kind=%v lexeme=%q", src, toks[0].Kind, toks[0].Lexeme)
		}
	}
}

func TestShortStrings(t *testing.T) {
	toks := collect(`'foo\'bar'`)
	if toks[0].Kind != token.STRING || toks[0].Lexeme != "foo'bar" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestLongBracketString(t *testing.T) {
	toks := collect("[==[hello\nworld]==]")
	if toks[0].Kind != token.STRING {
		t.Fatalf("got kind %v", toks[0].Kind)
	}
	if toks[0].Lexeme != "hello\nworld" {
		t.Fatalf("got lexeme %q", toks[0].Lexeme)
	}
}

func TestLineComment(t *testing.T) {
	toks := collect("-- a comment\nx = 1")
	if toks[0].Kind != token.COMMENT {
		t.Fatalf("got kind %v", toks[0].Kind)
	}
	if toks[1].Kind != token.NAME || toks[1].Lexeme != "x" {
		t.Fatalf("got %+v", toks[1])
	}
}

func TestLongBracketComment(t *testing.T) {
	toks := collect("--[[ long\ncomment ]]x = 1")
	if toks[0].Kind != token.COMMENT {
		t.Fatalf("got kind %v", toks[0].Kind)
	}
	if toks[1].Lexeme != "x" {
		t.Fatalf("got %+v", toks[1])
	}
}

func TestOperators(t *testing.T) {
	toks := collect("a..b ~= c <= d // e :: f")
	want := []token.Kind{token.NAME, token.CONCAT, token.NAME, token.NE, token.NAME, token.LE, token.NAME, token.DSLASH, token.NAME, token.DCOLON, token.NAME, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestHighBitBytesReplacedWithSpace(t *testing.T) {
	src := string([]byte{'x', 0x80, '=', '1'})
	toks := collect(src)
	if toks[0].Kind != token.NAME || toks[0].Lexeme != "x" {
		t.Fatalf("got %+v", toks[0])
	}
}
