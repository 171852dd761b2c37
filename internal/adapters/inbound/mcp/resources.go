package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/localelint/internal/adapters/outbound/config"
)

// registerResources registers all LocaleLint MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// localelint://rules - the effective rule set
	s.AddResource(
		mcplib.NewResource(
			"localelint://rules",
			"Validation Rules",
			mcplib.WithResourceDescription("The validation rule set with the project config's toggles applied"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(projectPath),
	)

	// localelint://config - the effective project configuration
	s.AddResource(
		mcplib.NewResource(
			"localelint://config",
			"Project Config",
			mcplib.WithResourceDescription("The effective LocaleLint configuration for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)
}

func handleRulesResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return jsonResourceContents(request.Params.URI, rulesView(cfg.RuleSet()))
	}
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return jsonResourceContents(request.Params.URI, cfg)
	}
}

func jsonResourceContents(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
