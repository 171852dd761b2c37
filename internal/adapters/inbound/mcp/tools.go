package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/abdidvp/localelint/internal/adapters/outbound/config"
	"github.com/abdidvp/localelint/internal/adapters/outbound/finder"
	"github.com/abdidvp/localelint/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/localelint/internal/adapters/outbound/reader"
	"github.com/abdidvp/localelint/internal/application"
	"github.com/abdidvp/localelint/internal/domain"
)

// registerTools registers all LocaleLint MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. localelint_validate
	s.AddTool(
		mcplib.NewTool("localelint_validate",
			mcplib.WithDescription("Validate locale files and return the per-file violation report as JSON"),
			mcplib.WithString("files",
				mcplib.Description("Comma-separated file paths relative to the project root; omitted means discover from configured paths"),
			),
			mcplib.WithBoolean("changed",
				mcplib.Description("Only validate files changed relative to the configured git base ref (ignored when files is given)"),
			),
		),
		handleValidate(projectPath),
	)

	// 2. localelint_rules
	s.AddTool(
		mcplib.NewTool("localelint_rules",
			mcplib.WithDescription("Returns the validation rule set with the project config's toggles applied"),
		),
		handleRules(projectPath),
	)
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		files := splitAndTrim(request.GetString("files", ""))
		if len(files) == 0 {
			changed := request.GetBool("changed", false)
			discoverSvc := application.NewDiscoverService(finder.New(), gitinfo.New(), zerolog.Nop())
			files, err = discoverSvc.Candidates(projectPath, cfg, changed)
			if err != nil {
				return errorResult(fmt.Sprintf("discovering candidates: %v", err)), nil
			}
		}

		engine := domain.NewEngine(cfg.RuleSet()...)
		validateSvc := application.NewValidateService(engine, reader.New(projectPath), zerolog.Nop())
		report := validateSvc.ValidateFiles(files)

		return jsonResult(report)
	}
}

func handleRules(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}
		return jsonResult(rulesView(cfg.RuleSet()))
	}
}

type ruleView struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Enabled  bool   `json:"enabled"`
}

func rulesView(rules []domain.Rule) []ruleView {
	views := make([]ruleView, len(rules))
	for i, r := range rules {
		views[i] = ruleView{Name: r.Name, Category: r.Category, Enabled: r.Enabled}
	}
	return views
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
