package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
)

func frame(t *testing.T, msg interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return []byte(fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(data), data))
}

func TestHandleMessageInitialize(t *testing.T) {
	var out bytes.Buffer
	s := NewLanguageServer(&out)

	msg := frame(t, RequestMessage{Jsonrpc: "2.0", ID: 1, Method: "initialize", Params: InitializeParams{}})
	if err := s.handleMessage(msg[bytesIndex(msg):]); err != nil {
		t.Fatalf("handleMessage: %v", err)
	}
}

func bytesIndex(msg []byte) int {
	idx := bytes.Index(msg, []byte("\r\n\r\n"))
	return idx + 4
}

func TestHoverUnknownDocumentReturnsNilResult(t *testing.T) {
	var out bytes.Buffer
	s := NewLanguageServer(&out)

	err := s.handleHover(1, HoverParams{
		TextDocument: TextDocumentIdentifier{URI: "file:///missing.lua"},
		Position:     Position{Line: 0, Character: 0},
	})
	if err != nil {
		t.Fatalf("handleHover: %v", err)
	}

	var resp ResponseMessage
	if err := json.Unmarshal(out.Bytes()[bytesIndex(out.Bytes()):], &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Result != nil {
		t.Errorf("want nil result for unknown document, got %v", resp.Result)
	}
}

func TestDidOpenThenHoverReportsLocalType(t *testing.T) {
	var out bytes.Buffer
	s := NewLanguageServer(&out)

	uri := "file:///scratch.lua"
	source := "local x = 1\n"
	if err := s.handleDidOpen(DidOpenTextDocumentParams{
		TextDocument: TextDocumentItem{URI: uri, Text: source},
	}); err != nil {
		t.Fatalf("handleDidOpen: %v", err)
	}

	out.Reset()
	if err := s.handleHover(1, HoverParams{
		TextDocument: TextDocumentIdentifier{URI: uri},
		Position:     Position{Line: 0, Character: 6},
	}); err != nil {
		t.Fatalf("handleHover: %v", err)
	}

	var resp ResponseMessage
	if err := json.Unmarshal(out.Bytes()[bytesIndex(out.Bytes()):], &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Result == nil {
		t.Fatalf("want a hover result for local x, got nil")
	}
}

func TestDidCloseRemovesDocument(t *testing.T) {
	var out bytes.Buffer
	s := NewLanguageServer(&out)
	uri := "file:///scratch.lua"

	_ = s.handleDidOpen(DidOpenTextDocumentParams{TextDocument: TextDocumentItem{URI: uri, Text: "x = 1\n"}})
	if _, ok := s.document(uri); !ok {
		t.Fatalf("expected document to be tracked after didOpen")
	}

	_ = s.handleDidClose(DidCloseTextDocumentParams{TextDocument: TextDocumentIdentifier{URI: uri}})
	if _, ok := s.document(uri); ok {
		t.Fatalf("expected document to be removed after didClose")
	}
}

func TestOffsetAtPosition(t *testing.T) {
	content := "local a = 1\nlocal b = 2\n"
	cases := []struct {
		pos  Position
		want int
	}{
		{Position{Line: 0, Character: 0}, 0},
		{Position{Line: 0, Character: 5}, 5},
		{Position{Line: 1, Character: 0}, 12},
		{Position{Line: 1, Character: 5}, 17},
	}
	for _, c := range cases {
		if got := offsetAtPosition(content, c.pos); got != c.want {
			t.Errorf("offsetAtPosition(%v) = %d, want %d", c.pos, got, c.want)
		}
	}
}
