// Command luals is a minimal Lua language server built directly on top of
// pkg/session: hover maps to Session.GetTypeAtPos, completion to
// Session.GetVariableCompletionList / GetArgumentCompletionList.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)          // no timestamp prefix in logs
	log.SetOutput(os.Stderr) // stdout is reserved for LSP protocol frames

	server := NewLanguageServer(os.Stdout)
	server.Start()
}
