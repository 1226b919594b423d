package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/toolgauge/toolgauge/internal/adapters/outbound/config"
	"github.com/toolgauge/toolgauge/internal/adapters/outbound/envelope"
	"github.com/toolgauge/toolgauge/internal/adapters/outbound/gitinfo"
	"github.com/toolgauge/toolgauge/internal/adapters/outbound/groundtruth"
	"github.com/toolgauge/toolgauge/internal/adapters/outbound/history"
	judgeAdapter "github.com/toolgauge/toolgauge/internal/adapters/outbound/judge"
	"github.com/toolgauge/toolgauge/internal/adapters/outbound/tui"
	"github.com/toolgauge/toolgauge/internal/application"
	"github.com/toolgauge/toolgauge/internal/domain/judging"
)

// registerTools registers all toolgauge MCP tools on the given server.
func registerTools(s *server.MCPServer, workDir string) {
	s.AddTool(
		mcplib.NewTool("toolgauge_evaluate",
			mcplib.WithDescription("Evaluate a tool-output envelope file and return the full scorecard as JSON"),
			mcplib.WithString("analysis",
				mcplib.Required(),
				mcplib.Description("Path to the tool-output envelope JSON file"),
			),
			mcplib.WithString("ground_truth",
				mcplib.Description("Directory of per-scenario ground-truth JSON files"),
			),
			mcplib.WithBoolean("quick",
				mcplib.Description("Skip performance checks and non-focused judges"),
			),
			mcplib.WithBoolean("judges",
				mcplib.Description("Enable the LLM judge layer"),
			),
		),
		handleEvaluate(workDir),
	)

	s.AddTool(
		mcplib.NewTool("toolgauge_latest_report",
			mcplib.WithDescription("Returns the most recently saved evaluation report as JSON"),
		),
		handleLatestReport(workDir),
	)

	s.AddTool(
		mcplib.NewTool("toolgauge_history",
			mcplib.WithDescription("Returns the evaluation run history as JSON, oldest first"),
		),
		handleHistory(workDir),
	)

	s.AddTool(
		mcplib.NewTool("toolgauge_scorecard",
			mcplib.WithDescription("Returns the latest evaluation report rendered as a markdown scorecard"),
		),
		handleScorecard(workDir),
	)
}

func handleEvaluate(workDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		analysisPath, err := request.RequireString("analysis")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		groundTruthDir, _ := args["ground_truth"].(string)
		quick, _ := args["quick"].(bool)
		judges, _ := args["judges"].(bool)

		var provider judging.Provider
		if judges {
			cfg, err := config.New().Load(workDir)
			if err != nil {
				return errorResult(fmt.Sprintf("loading config: %v", err)), nil
			}
			provider, err = judgeAdapter.Resolve(cfg.Judge.Provider)
			if err != nil {
				return errorResult(err.Error()), nil
			}
		}

		svc := application.NewEvaluateService(
			envelope.New(),
			groundtruth.New(),
			config.New(),
			provider,
			gitinfo.New(),
		)

		report, err := svc.Evaluate(ctx, application.EvaluateOptions{
			AnalysisPath:   analysisPath,
			GroundTruthDir: groundTruthDir,
			ConfigDir:      workDir,
			Quick:          quick,
			Judges:         judges,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("evaluation failed: %v", err)), nil
		}

		_ = history.New().Save(workDir, report) // best-effort

		return jsonResult(report)
	}
}

func handleLatestReport(workDir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := history.New().Latest(workDir)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(report)
	}
}

func handleHistory(workDir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		entries, err := history.New().History(workDir)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(entries)
	}
}

func handleScorecard(workDir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := history.New().Latest(workDir)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return textResult(tui.RenderMarkdown(report)), nil
	}
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

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
