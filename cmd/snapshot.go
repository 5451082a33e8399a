package cmd

import (
	"github.com/nicknexus/impact/core"
	"github.com/nicknexus/impact/internal/contract"
	"github.com/nicknexus/impact/internal/snapshot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// snapshotCmd is the parent command for snapshot store operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage the snapshot store backing series and metrics commands",
	Long: `Manage the database-backed snapshot store.

Instead of passing a JSON snapshot file to every command, import it once
into a store. The series and metrics commands read from the store when no
file path is given.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  import  - Replace store contents with a JSON snapshot file
  status  - Show store statistics and connection health
  migrate - Run database schema migrations

Examples:
  # Import a snapshot into the default SQLite store
  impact snapshot import data.json

  # Check what is stored
  impact snapshot status`,
}

// snapshotImportCmd imports a JSON snapshot file into the store.
var snapshotImportCmd = &cobra.Command{
	Use:   "import <snapshot-path>",
	Short: "Replace store contents with a JSON snapshot file",
	Long: `Read a JSON snapshot file and replace the store contents with it.

The import runs in a single transaction: either the whole snapshot lands
or nothing changes. Metric ordering from the file is preserved so color
assignment stays stable across reads.

Run 'impact snapshot migrate' first to create the schema.

Examples:
  # Import into the default SQLite store
  impact snapshot import data.json

  # Import into PostgreSQL
  impact snapshot import data.json --store-backend postgresql --store-db-connect "host=localhost port=5432 user=postgres dbname=impact"`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSnapshotImport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot import snapshot", err)
		}
	},
}

// snapshotStatusCmd shows store statistics.
var snapshotStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot store statistics and connection details",
	Long: `Show counts and connectivity for the configured snapshot store.

Displays:
- Backend type and connection status
- Number of metrics stored
- Number of data points stored

Examples:
  # Check the default SQLite store
  impact snapshot status

  # Check a MySQL store as JSON
  impact snapshot status --store-backend mysql --store-db-connect "user:pass@tcp(localhost:3306)/impact" --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSnapshotStatus(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot get snapshot store status", err)
		}
	},
}

// snapshotMigrateCmd runs database migrations for the snapshot store.
var snapshotMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the snapshot store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  impact snapshot migrate

  # Migrate to specific version
  impact snapshot migrate --target-version 1

  # Rollback to initial state
  impact snapshot migrate --target-version 0`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := snapshot.MigrateStore(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
