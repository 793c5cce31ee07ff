package main

import "log"

func (s *LanguageServer) handleInitialize(id interface{}, params InitializeParams) error {
	log.Printf("initialize request id=%v", id)

	result := InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync: 1, // Full sync
			HoverProvider:    true,
			CompletionProvider: &CompletionOptions{
				TriggerCharacters: []string{".", ":"},
			},
			SignatureHelpProvider: &SignatureHelpOptions{
				TriggerCharacters: []string{"(", ","},
			},
		},
	}

	return s.sendResponse(ResponseMessage{
		Jsonrpc: "2.0",
		ID:      id,
		Result:  result,
	})
}

func (s *LanguageServer) handleShutdown(id interface{}) error {
	return s.sendResponse(ResponseMessage{
		Jsonrpc: "2.0",
		ID:      id,
		Result:  nil,
	})
}
