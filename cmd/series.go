package cmd

import (
	"github.com/nicknexus/impact/core"
	"github.com/nicknexus/impact/internal/contract"
	"github.com/spf13/cobra"
)

// seriesCmd builds and prints the daily cumulative chart series.
var seriesCmd = &cobra.Command{
	Use:   "series [snapshot-path]",
	Short: "Build a daily cumulative chart series from a metric snapshot",
	Long: `Build chart-ready time series data from metric data points.

Each day in the resolved window becomes one chart point carrying the
running cumulative total per metric. Every metric in the snapshot gets a
value on every day, so charts render flat zero lines instead of gaps.

Filter precedence:
- --date wins over everything (single-day view)
- --range-start/--range-end win over the rolling window
- otherwise the rolling --window anchored at --as-of applies

Examples:
  # Last year of data from a snapshot file
  impact series data.json

  # Explicit range, CSV to a file
  impact series data.json --range-start 2025-01-01 --range-end 2025-03-31 --output csv --output-file q1.csv

  # Single day, only two metrics
  impact series data.json --date 2025-06-15 --metrics meals_served,volunteers

  # From the configured store, Parquet export for DuckDB
  impact series --window 6months --output parquet --output-file series.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSeries(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot build series", err)
		}
	},
}
