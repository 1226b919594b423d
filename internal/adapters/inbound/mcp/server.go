// Package mcp exposes the evaluation engine over the Model Context
// Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewToolgaugeMCPServer creates an MCP server with all toolgauge tools
// registered. workDir is where configuration and report history live.
func NewToolgaugeMCPServer(workDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"toolgauge",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, workDir)

	return s
}
