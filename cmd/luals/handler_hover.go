package main

import (
	"fmt"
	"log"

	"github.com/cguebert/luaautocomplete/internal/typesystem"
)

func (s *LanguageServer) handleHover(id interface{}, params HoverParams) error {
	log.Printf("hover request for %s at %d:%d", params.TextDocument.URI, params.Position.Line, params.Position.Character)

	docState, ok := s.document(params.TextDocument.URI)
	if !ok {
		return s.sendResponse(ResponseMessage{Jsonrpc: "2.0", ID: id, Result: nil})
	}

	docState.Mu.RLock()
	content := docState.Content
	sess := docState.Sess
	docState.Mu.RUnlock()

	offset := offsetAtPosition(content, params.Position)
	t := sess.GetTypeAtPos(offset)
	if t.Kind == typesystem.KindNil {
		return s.sendResponse(ResponseMessage{Jsonrpc: "2.0", ID: id, Result: nil})
	}

	text := t.TypeName()
	if t.Kind == typesystem.KindFunction {
		text = t.FunctionDefinition()
	}

	hierarchy := sess.GetTypeHierarchyAtPos(offset)
	value := fmt.Sprintf("```lua\n%s\n```", text)
	if len(hierarchy) > 0 {
		value = fmt.Sprintf("%s\n\n%s", value, joinArrow(hierarchy))
	}

	return s.sendResponse(ResponseMessage{
		Jsonrpc: "2.0",
		ID:      id,
		Result: Hover{
			Contents: MarkupContent{Kind: "markdown", Value: value},
		},
	})
}

func (s *LanguageServer) document(uri string) (*DocumentState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docState, exists := s.documents[uri]
	return docState, exists
}

func joinArrow(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += " → " + p
	}
	return out
}
