package main

import (
	"log"

	"github.com/cguebert/luaautocomplete/internal/typesystem"
)

func (s *LanguageServer) handleSignatureHelp(id interface{}, params SignatureHelpParams) error {
	log.Printf("signatureHelp request for %s at %d:%d", params.TextDocument.URI, params.Position.Line, params.Position.Character)

	docState, ok := s.document(params.TextDocument.URI)
	if !ok {
		return s.sendResponse(ResponseMessage{Jsonrpc: "2.0", ID: id, Result: nil})
	}

	docState.Mu.RLock()
	content := docState.Content
	sess := docState.Sess
	docState.Mu.RUnlock()

	offset := offsetAtPosition(content, params.Position)
	argCtx, ok := sess.GetArgumentContext(offset)
	if !ok {
		return s.sendResponse(ResponseMessage{Jsonrpc: "2.0", ID: id, Result: nil})
	}

	params2 := make([]ParameterInformation, len(argCtx.Signature.Parameters))
	for i, p := range argCtx.Signature.Parameters {
		params2[i] = ParameterInformation{Label: p.Type.TypeName()}
	}

	return s.sendResponse(ResponseMessage{
		Jsonrpc: "2.0",
		ID:      id,
		Result: SignatureHelp{
			Signatures: []SignatureInformation{{
				Label:      typesystem.NewFunction(argCtx.Signature).FunctionDefinition(),
				Parameters: params2,
			}},
			ActiveParameter: argCtx.ArgumentIndex,
		},
	})
}
