package main

import (
	"log"

	"github.com/cguebert/luaautocomplete/internal/scope"
)

func (s *LanguageServer) handleCompletion(id interface{}, params CompletionParams) error {
	log.Printf("completion request for %s at %d:%d", params.TextDocument.URI, params.Position.Line, params.Position.Character)

	docState, ok := s.document(params.TextDocument.URI)
	if !ok {
		return s.sendResponse(ResponseMessage{Jsonrpc: "2.0", ID: id, Result: CompletionList{}})
	}

	docState.Mu.RLock()
	content := docState.Content
	sess := docState.Sess
	docState.Mu.RUnlock()

	offset := offsetAtPosition(content, params.Position)
	elements := sess.GetArgumentCompletionList(offset)

	return s.sendResponse(ResponseMessage{
		Jsonrpc: "2.0",
		ID:      id,
		Result:  CompletionList{Items: toCompletionItems(elements)},
	})
}

func toCompletionItems(elements scope.Elements) []CompletionItem {
	items := make([]CompletionItem, 0, len(elements))
	for name, el := range elements {
		kind := CompletionItemVariable
		if el.Kind == scope.ElementFunction {
			kind = CompletionItemFunction
		}
		items = append(items, CompletionItem{
			Label:  name,
			Kind:   kind,
			Detail: el.Type.TypeName(),
		})
	}
	return items
}
