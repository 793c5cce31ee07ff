package parser

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/cguebert/luaautocomplete/internal/ast"
)

// TestGolden runs every internal/parser/testdata/*.txtar fixture through
// ParseBlock and checks it against the fixture's "want" section (spec §8
// invariants 2 and 3: a well-formed position index and correct block
// nesting for any program the parser accepts).
func TestGolden(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatalf("glob testdata: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no golden fixtures found")
	}

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			archive, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatalf("parsing archive: %v", err)
			}
			source := fileContent(t, archive, "source.lua")
			want := parseWant(t, fileContent(t, archive, "want"))

			result := ParseBlock(source, true)
			if result.Parsed != want.parsed {
				t.Fatalf("Parsed = %v, want %v", result.Parsed, want.parsed)
			}
			if !want.parsed {
				return
			}

			if got := len(result.Block.Statements); want.statements >= 0 && got != want.statements {
				t.Errorf("len(Statements) = %d, want %d", got, want.statements)
			}

			checkPositionIndex(t, source, result)
			checkBlockContainment(t, result.Block)
		})
	}
}

func fileContent(t *testing.T, archive *txtar.Archive, name string) string {
	t.Helper()
	for _, f := range archive.Files {
		if f.Name == name {
			return string(f.Data)
		}
	}
	t.Fatalf("fixture missing %q section", name)
	return ""
}

type wantResult struct {
	parsed     bool
	statements int
}

func parseWant(t *testing.T, text string) wantResult {
	t.Helper()
	w := wantResult{statements: -1}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			t.Fatalf("malformed want line %q", line)
		}
		switch parts[0] {
		case "parsed":
			w.parsed = parts[1] == "true"
		case "statements":
			n, err := strconv.Atoi(parts[1])
			if err != nil {
				t.Fatalf("bad statements count %q: %v", parts[1], err)
			}
			w.statements = n
		}
	}
	return w
}

// checkPositionIndex is invariant 2: every recorded element span lies
// within the source buffer and is non-empty.
func checkPositionIndex(t *testing.T, source string, result ParseResult) {
	t.Helper()
	for _, el := range result.Positions.Elements() {
		if el.Begin < 0 || el.End > len(source) || el.Begin >= el.End {
			t.Errorf("ill-formed element span [%d,%d) in source of length %d", el.Begin, el.End, len(source))
		}
	}
}

// checkBlockContainment is invariant 3: every nested block's span lies
// within the root block's span.
func checkBlockContainment(t *testing.T, root *ast.Block) {
	t.Helper()
	rootSpan := root.Pos()
	for _, b := range root.AllBlocks() {
		span := b.Pos()
		if span.Begin < rootSpan.Begin || span.End > rootSpan.End {
			t.Errorf("nested block span [%d,%d) escapes root span [%d,%d)", span.Begin, span.End, rootSpan.Begin, rootSpan.End)
		}
	}
}
