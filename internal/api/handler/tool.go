package handler

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tool associa a definição MCP de uma tool ao seu handler, no mesmo
// espírito das Route do router HTTP
type Tool struct {
	Definition mcp.Tool
	Handler    server.ToolHandlerFunc
}

// textResult serializa o payload como JSON e o devolve como resultado de
// texto da tool. Serialização determinística: repetir a mesma chamada com
// estado remoto inalterado produz saída byte a byte idêntica.
func textResult(payload interface{}) (*mcp.CallToolResult, error) {
	serialized, err := json.MarshalToString(payload)
	if err != nil {
		return mcp.NewToolResultError("failed to serialize tool result: " + err.Error()), nil
	}
	return mcp.NewToolResultText(serialized), nil
}

// errorResult converte um erro classificado em resultado de erro da tool.
// A camada de transporte MCP é quem traduz isso para o protocolo.
func errorResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
