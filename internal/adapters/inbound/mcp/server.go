package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewLocaleLintMCPServer creates a new MCP server with all LocaleLint tools
// and resources registered. The projectPath is the root directory holding
// the locale files and the project config.
func NewLocaleLintMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"localelint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
