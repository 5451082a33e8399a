// Package cmd defines the command-line interface for impact.
package cmd

import (
	"github.com/nicknexus/impact/internal/contract"
	"github.com/nicknexus/impact/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the snapshot subcommands to the parent snapshot command
	snapshotCmd.AddCommand(snapshotImportCmd)
	snapshotCmd.AddCommand(snapshotStatusCmd)
	snapshotCmd.AddCommand(snapshotMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("date", "", "Single day filter in YYYY-MM-DD (takes precedence over range and window)")
	rootCmd.PersistentFlags().String("range-start", "", "Explicit range start in YYYY-MM-DD (requires --range-end)")
	rootCmd.PersistentFlags().String("range-end", "", "Explicit range end in YYYY-MM-DD (requires --range-start)")
	rootCmd.PersistentFlags().StringP("window", "w", string(schema.Window1Year), "Rolling window: 1month or 6months or 1year or 5years")
	rootCmd.PersistentFlags().String("as-of", "", "Anchor for the rolling window (YYYY-MM-DD or 'N days ago', defaults to now)")
	rootCmd.PersistentFlags().String("location", "", "Location filter (accepted but not yet applied)")
	rootCmd.PersistentFlags().StringP("metrics", "m", "", "Comma-separated metric ids to keep in chart output")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored swatches in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Snapshot store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of snapshotMigrateCmd to Viper
	snapshotMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(snapshotMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshot migrate flags", err)
	}
}
