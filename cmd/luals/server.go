package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
)

// LanguageServer holds one open-document set and speaks the LSP
// Content-Length-framed JSON-RPC transport over stdio.
type LanguageServer struct {
	documents map[string]*DocumentState
	mu        sync.RWMutex
	writer    io.Writer
}

func NewLanguageServer(writer io.Writer) *LanguageServer {
	if writer == nil {
		writer = os.Stdout
	}
	return &LanguageServer{
		documents: make(map[string]*DocumentState),
		writer:    writer,
	}
}

func (s *LanguageServer) Start() {
	reader := bufio.NewReader(os.Stdin)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				log.Printf("error reading header: %v", err)
			}
			break
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "Content-Length: ") {
			continue
		}
		contentLength, err := strconv.Atoi(strings.TrimPrefix(line, "Content-Length: "))
		if err != nil {
			log.Printf("error parsing Content-Length: %v", err)
			continue
		}

		for {
			sep, err := reader.ReadString('\n')
			if err != nil {
				log.Printf("error reading header separator: %v", err)
				return
			}
			if strings.TrimRight(sep, "\r\n") == "" {
				break
			}
		}

		content := make([]byte, contentLength)
		if _, err := io.ReadFull(reader, content); err != nil {
			log.Printf("error reading message body: %v", err)
			break
		}

		if err := s.handleMessage(content); err != nil {
			log.Printf("error handling message: %v", err)
		}
	}
}

type envelope struct {
	Jsonrpc string      `json:"jsonrpc"`
	ID      interface{} `json:"id,omitempty"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

func (s *LanguageServer) handleMessage(content []byte) error {
	var base envelope
	if err := json.Unmarshal(content, &base); err != nil {
		return fmt.Errorf("unmarshal message: %w", err)
	}

	if base.ID != nil {
		return s.handleRequest(base, content)
	}
	return s.handleNotification(base, content)
}

func (s *LanguageServer) handleRequest(base envelope, content []byte) error {
	switch base.Method {
	case "initialize":
		var params InitializeParams
		if err := json.Unmarshal(content, &RequestMessage{Params: &params}); err != nil {
			return err
		}
		return s.handleInitialize(base.ID, params)
	case "shutdown":
		return s.handleShutdown(base.ID)
	case "textDocument/hover":
		var params HoverParams
		if err := json.Unmarshal(content, &RequestMessage{Params: &params}); err != nil {
			return err
		}
		return s.handleHover(base.ID, params)
	case "textDocument/completion":
		var params CompletionParams
		if err := json.Unmarshal(content, &RequestMessage{Params: &params}); err != nil {
			return err
		}
		return s.handleCompletion(base.ID, params)
	case "textDocument/signatureHelp":
		var params SignatureHelpParams
		if err := json.Unmarshal(content, &RequestMessage{Params: &params}); err != nil {
			return err
		}
		return s.handleSignatureHelp(base.ID, params)
	default:
		return s.sendResponse(ResponseMessage{
			Jsonrpc: "2.0",
			ID:      base.ID,
			Error:   &Error{Code: -32601, Message: fmt.Sprintf("method not found: %s", base.Method)},
		})
	}
}

func (s *LanguageServer) handleNotification(base envelope, content []byte) error {
	switch base.Method {
	case "initialized":
		return nil
	case "textDocument/didOpen":
		var params DidOpenTextDocumentParams
		if err := json.Unmarshal(content, &NotificationMessage{Params: &params}); err != nil {
			return err
		}
		return s.handleDidOpen(params)
	case "textDocument/didChange":
		var params DidChangeTextDocumentParams
		if err := json.Unmarshal(content, &NotificationMessage{Params: &params}); err != nil {
			return err
		}
		return s.handleDidChange(params)
	case "textDocument/didClose":
		var params DidCloseTextDocumentParams
		if err := json.Unmarshal(content, &NotificationMessage{Params: &params}); err != nil {
			return err
		}
		return s.handleDidClose(params)
	case "exit":
		os.Exit(0)
		return nil
	default:
		return nil
	}
}

func (s *LanguageServer) sendResponse(response ResponseMessage) error {
	return s.sendMessage(response)
}

func (s *LanguageServer) sendMessage(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.writer, "Content-Length: %d\r\n\r\n%s", len(data), data)
	return err
}
