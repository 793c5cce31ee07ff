// Command luaintel is a small command-line demo of the query surface: load
// a Lua source file, point at a byte offset, and print what getTypeAtPos /
// getVariableCompletionList see there. It exists to exercise pkg/session
// outside of an editor integration.
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/cguebert/luaautocomplete/internal/langconfig"
	"github.com/cguebert/luaautocomplete/internal/scope"
	"github.com/cguebert/luaautocomplete/internal/typesystem"
	"github.com/cguebert/luaautocomplete/pkg/session"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.lua> <offset>\n", os.Args[0])
		os.Exit(1)
	}

	path := os.Args[1]
	if !langconfig.HasSourceExt(path) {
		fmt.Fprintf(os.Stderr, "warning: %s does not look like a Lua source file\n", path)
	}
	offset, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad offset %q: %v\n", os.Args[2], err)
		os.Exit(1)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", path, err)
		os.Exit(1)
	}

	sess := session.New(nil)
	if !sess.UpdateProgram(string(content)) {
		fmt.Fprintln(os.Stderr, "parse failed, query results reflect an empty program")
	}

	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	t := sess.GetTypeAtPos(offset)
	printHeading(color, "type")
	fmt.Println(describeType(t))

	if hierarchy := sess.GetTypeHierarchyAtPos(offset); len(hierarchy) > 1 {
		printHeading(color, "hierarchy")
		for i, h := range hierarchy {
			if i > 0 {
				fmt.Print(" -> ")
			}
			fmt.Print(h)
		}
		fmt.Println()
	}

	printHeading(color, "completions")
	for _, name := range sortedNames(sess.GetVariableCompletionList(offset)) {
		fmt.Println(" ", name)
	}
}

func describeType(t typesystem.TypeInfo) string {
	if t.Kind == typesystem.KindNil {
		return "<no information>"
	}
	return t.TypeName()
}

func printHeading(color bool, title string) {
	if color {
		fmt.Printf("\x1b[1m%s:\x1b[0m\n", title)
		return
	}
	fmt.Printf("%s:\n", title)
}

func sortedNames(elements scope.Elements) []string {
	names := make([]string, 0, len(elements))
	for name := range elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
