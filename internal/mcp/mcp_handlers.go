package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/nicknexus/impact/core"
	"github.com/nicknexus/impact/internal/contract"
	"github.com/nicknexus/impact/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// seriesPayload is the JSON shape returned by the build_series tool.
type seriesPayload struct {
	ChartPoints []schema.ChartPoint `json:"chart_points"`
	Totals      map[string]float64  `json:"totals"`
	Colors      map[string]string   `json:"colors"`
}

// legendPayload is one entry in the list_metrics tool result.
type legendPayload struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Unit     string  `json:"unit,omitempty"`
	Category string  `json:"category,omitempty"`
	Color    string  `json:"color"`
	Total    float64 `json:"total"`
}

// applyFilterParams re-validates the date filter parameters from a tool
// request onto a cloned config.
func (h *toolHandler) applyFilterParams(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("snapshot_path", ""); p != "" {
		cfg.SnapshotPath = p
	}

	err := contract.RevalidateFilter(cfg,
		request.GetString("date", ""),
		request.GetString("range_start", ""),
		request.GetString("range_end", ""),
		request.GetString("window", ""),
		request.GetString("as_of", ""),
		time.Now())
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (h *toolHandler) handleBuildSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyFilterParams(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid filter parameters: %v", err)), nil
	}
	if m := request.GetString("metrics", ""); m != "" {
		cfg.VisibleMetrics = contract.SplitList(m)
	}

	result, metrics, err := core.GetSeriesResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("series build failed: %v", err)), nil
	}

	payload := seriesPayload{
		ChartPoints: result.ChartPoints,
		Totals:      result.Totals,
		Colors:      core.ColorMap(metrics),
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyFilterParams(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid filter parameters: %v", err)), nil
	}

	metrics, totals, err := core.GetMetricResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("metric listing failed: %v", err)), nil
	}

	colors := core.ColorMap(metrics)
	entries := make([]legendPayload, 0, len(metrics))
	for _, m := range metrics {
		entries = append(entries, legendPayload{
			ID:       m.ID,
			Title:    m.Title,
			Unit:     m.Unit,
			Category: m.Category,
			Color:    colors[m.ID],
			Total:    totals[m.ID],
		})
	}
	jsonData, _ := json.MarshalIndent(entries, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}
