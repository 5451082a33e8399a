// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/nicknexus/impact/internal/contract"
)

// NewMCPServer initializes and configures the Impact MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Impact Series Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: build_series ---
	s.AddTool(mcp.NewTool("build_series",
		mcp.WithDescription("Build a daily cumulative chart series from the metric snapshot, filtered by date."),
		mcp.WithString("snapshot_path", mcp.Description("Path to a JSON snapshot file (defaults to the configured store backend).")),
		mcp.WithString("date", mcp.Description("Single day filter in YYYY-MM-DD form. Takes precedence over range and window.")),
		mcp.WithString("range_start", mcp.Description("Explicit range start in YYYY-MM-DD form. Requires range_end.")),
		mcp.WithString("range_end", mcp.Description("Explicit range end in YYYY-MM-DD form. Requires range_start.")),
		mcp.WithString("window", mcp.Description("Rolling window when no date or range is given. Defaults to '1year'."), mcp.Enum("1month", "6months", "1year", "5years")),
		mcp.WithString("as_of", mcp.Description("Anchor for the rolling window (YYYY-MM-DD or 'N days ago'). Defaults to now.")),
		mcp.WithString("metrics", mcp.Description("Comma-separated metric ids to keep in the chart. Defaults to all.")),
	), h.handleBuildSeries)

	// --- 2. Tool: list_metrics ---
	s.AddTool(mcp.NewTool("list_metrics",
		mcp.WithDescription("List metric definitions with assigned line colors and totals over the filtered window."),
		mcp.WithString("snapshot_path", mcp.Description("Path to a JSON snapshot file (defaults to the configured store backend).")),
		mcp.WithString("date", mcp.Description("Single day filter in YYYY-MM-DD form.")),
		mcp.WithString("range_start", mcp.Description("Explicit range start in YYYY-MM-DD form.")),
		mcp.WithString("range_end", mcp.Description("Explicit range end in YYYY-MM-DD form.")),
		mcp.WithString("window", mcp.Description("Rolling window when no date or range is given."), mcp.Enum("1month", "6months", "1year", "5years")),
		mcp.WithString("as_of", mcp.Description("Anchor for the rolling window. Defaults to now.")),
	), h.handleListMetrics)

	return s
}

// StartMCPServer starts the Impact MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
