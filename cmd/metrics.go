package cmd

import (
	"github.com/nicknexus/impact/core"
	"github.com/nicknexus/impact/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd prints the metric legend with colors and totals.
var metricsCmd = &cobra.Command{
	Use:   "metrics [snapshot-path]",
	Short: "List metric definitions with assigned colors and filtered totals",
	Long: `Display every metric in the snapshot with its chart line color and its
total over the filtered window.

Colors are assigned by position in the metrics list, so they stay stable
across runs as long as the snapshot ordering does not change. Metrics
with no data in the window show a total of 0 rather than being omitted.

Examples:
  # Legend for a snapshot file
  impact metrics data.json

  # Totals for an explicit quarter
  impact metrics data.json --range-start 2025-01-01 --range-end 2025-03-31

  # JSON legend for a dashboard
  impact metrics data.json --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list metrics", err)
		}
	},
}
