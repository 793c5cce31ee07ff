package main

import (
	"fmt"
	"log"
	"sync"

	"github.com/cguebert/luaautocomplete/pkg/session"
)

// DocumentState holds one open buffer's text alongside the Session that
// derives its AST, position index, and scope tree (spec §4.E). A failed
// UpdateProgram leaves Sess serving the last successfully parsed program.
type DocumentState struct {
	Content string
	Sess    *session.Session
	Mu      sync.RWMutex
}

func (s *LanguageServer) handleDidOpen(params DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	content := params.TextDocument.Text

	sess := session.New(nil)
	sess.UpdateProgram(content)

	s.mu.Lock()
	s.documents[uri] = &DocumentState{Content: content, Sess: sess}
	s.mu.Unlock()

	log.Printf("opened %s", uri)
	return nil
}

func (s *LanguageServer) handleDidChange(params DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	uri := params.TextDocument.URI
	newContent := params.ContentChanges[0].Text

	s.mu.RLock()
	docState, exists := s.documents[uri]
	s.mu.RUnlock()
	if !exists {
		return fmt.Errorf("document %s not found", uri)
	}

	docState.Mu.Lock()
	docState.Content = newContent
	docState.Sess.UpdateProgram(newContent)
	docState.Mu.Unlock()

	log.Printf("changed %s", uri)
	return nil
}

func (s *LanguageServer) handleDidClose(params DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.mu.Unlock()
	log.Printf("closed %s", params.TextDocument.URI)
	return nil
}
