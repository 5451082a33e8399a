package cmd

import (
	"github.com/nicknexus/impact/internal/contract"
	"github.com/nicknexus/impact/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd starts the MCP server over stdio.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server over stdio",
	Long: `Run impact as an MCP server so AI assistants can build series and
inspect metrics directly.

Exposed tools:
  build_series - Build a daily cumulative chart series with date filters
  list_metrics - List metric definitions with colors and filtered totals

The server reads from the configured store backend unless a tool call
passes an explicit snapshot_path.

Examples:
  # Start the server (typically launched by an MCP client)
  impact mcp`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := mcp.StartMCPServer(rootCtx, cfg); err != nil {
			contract.LogFatal("MCP server failed", err)
		}
	},
}
