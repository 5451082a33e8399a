package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/nicknexus/impact/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	MaxPrecision     = 2
)

// Config holds the runtime configuration for building a series.
// This struct remains the "final, validated" config.
type Config struct {
	SnapshotPath string // Path to a JSON snapshot file ("" = use store backend)

	Filter schema.FilterState
	AsOf   time.Time // Anchor for rolling windows; defaults to wall-clock now

	// VisibleMetrics restricts displayed metric ids; nil means all.
	VisibleMetrics []string

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env,
// config file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	SnapshotPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Date           string `mapstructure:"date"`
	RangeStart     string `mapstructure:"range-start"`
	RangeEnd       string `mapstructure:"range-end"`
	Window         string `mapstructure:"window"`
	AsOf           string `mapstructure:"as-of"`
	Location       string `mapstructure:"location"`
	Metrics        string `mapstructure:"metrics"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	// --- Fields from snapshotMigrateCmd.Flags() ---
	TargetVersion int `mapstructure:"target-version"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.VisibleMetrics != nil {
		clone.VisibleMetrics = make([]string, len(c.VisibleMetrics))
		copy(clone.VisibleMetrics, c.VisibleMetrics)
	}
	if c.Filter.SelectedDate != nil {
		d := *c.Filter.SelectedDate
		clone.Filter.SelectedDate = &d
	}
	if c.Filter.RangeStart != nil {
		d := *c.Filter.RangeStart
		clone.Filter.RangeStart = &d
	}
	if c.Filter.RangeEnd != nil {
		d := *c.Filter.RangeEnd
		clone.Filter.RangeEnd = &d
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw
// inputs and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processFilterState(cfg, input, time.Now()); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-filter fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.SnapshotPath = strings.TrimSpace(input.SnapshotPathStr)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.VisibleMetrics = SplitList(input.Metrics)

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < DefaultPrecision || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be %d or %d (received %d)", DefaultPrecision, MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	if err := ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return err
	}

	return nil
}

// processFilterState parses the date filter flags. Precedence between the
// three modes is enforced by the resolver, not here; this layer only
// rejects values it cannot parse and half-specified ranges.
func processFilterState(cfg *Config, input *ConfigRawInput, now time.Time) error {
	anchor, err := ParseAnchor(input.AsOf, now)
	if err != nil {
		return err
	}
	cfg.AsOf = anchor

	window := schema.RollingWindow(strings.ToLower(strings.TrimSpace(input.Window)))
	if window == "" {
		window = schema.Window1Year
	}
	if _, ok := schema.ValidRollingWindows[window]; !ok {
		return fmt.Errorf("invalid window '%s'. must be 1month, 6months, 1year, 5years", input.Window)
	}
	cfg.Filter = schema.FilterState{Window: window, Location: strings.TrimSpace(input.Location)}

	if input.Date != "" {
		t, err := ParseDay(input.Date)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		cfg.Filter.SelectedDate = &t
	}

	hasStart := input.RangeStart != ""
	hasEnd := input.RangeEnd != ""
	if hasStart != hasEnd {
		return fmt.Errorf("--range-start and --range-end must be provided together")
	}
	if hasStart {
		start, err := ParseDay(input.RangeStart)
		if err != nil {
			return fmt.Errorf("invalid --range-start: %w", err)
		}
		end, err := ParseDay(input.RangeEnd)
		if err != nil {
			return fmt.Errorf("invalid --range-end: %w", err)
		}
		if start.After(end) {
			return fmt.Errorf("range start (%s) cannot be after range end (%s)", input.RangeStart, input.RangeEnd)
		}
		cfg.Filter.RangeStart = &start
		cfg.Filter.RangeEnd = &end
	}

	return nil
}

// RevalidateFilter re-parses filter parameters onto an existing config.
// Used by surfaces like the MCP server that receive raw strings per call.
func RevalidateFilter(cfg *Config, date, rangeStart, rangeEnd, window, asOf string, now time.Time) error {
	input := &ConfigRawInput{
		Date:       date,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Window:     window,
		AsOf:       asOf,
	}
	return processFilterState(cfg, input, now)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
