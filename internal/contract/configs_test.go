package contract

import (
	"testing"
	"time"

	"github.com/nicknexus/impact/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation, mirroring the
// flag defaults.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Window:       string(schema.Window1Year),
		Precision:    DefaultPrecision,
		Output:       string(schema.TextOut),
		Color:        "yes",
		StoreBackend: string(schema.SQLiteBackend),
	}
}

func TestProcessAndValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, validInput())
	require.NoError(t, err)

	assert.Equal(t, schema.Window1Year, cfg.Filter.Window)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
	assert.True(t, cfg.UseColors)
	assert.Nil(t, cfg.VisibleMetrics)
	assert.False(t, cfg.AsOf.IsZero())
}

func TestProcessAndValidate_InvalidOutput(t *testing.T) {
	input := validInput()
	input.Output = "xml"
	err := ProcessAndValidate(&Config{}, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestProcessAndValidate_PrecisionBounds(t *testing.T) {
	for _, p := range []int{0, 3, -1} {
		input := validInput()
		input.Precision = p
		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err, "precision %d should be rejected", p)
	}

	for _, p := range []int{1, 2} {
		input := validInput()
		input.Precision = p
		require.NoError(t, ProcessAndValidate(&Config{}, input))
	}
}

func TestProcessAndValidate_InvalidWindow(t *testing.T) {
	input := validInput()
	input.Window = "2weeks"
	err := ProcessAndValidate(&Config{}, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid window")
}

func TestProcessAndValidate_BlankWindowDefaultsToOneYear(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Window = ""
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.Window1Year, cfg.Filter.Window)
}

func TestProcessAndValidate_HalfRangeRejected(t *testing.T) {
	input := validInput()
	input.RangeStart = "2024-01-01"
	err := ProcessAndValidate(&Config{}, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be provided together")

	input = validInput()
	input.RangeEnd = "2024-01-31"
	err = ProcessAndValidate(&Config{}, input)
	require.Error(t, err)
}

func TestProcessAndValidate_ReversedRangeRejected(t *testing.T) {
	input := validInput()
	input.RangeStart = "2024-02-01"
	input.RangeEnd = "2024-01-01"
	err := ProcessAndValidate(&Config{}, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be after")
}

func TestProcessAndValidate_FilterFields(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Date = "2024-03-01"
	input.Location = "  Nairobi "
	input.Metrics = "m1, m2,,m3"
	require.NoError(t, ProcessAndValidate(cfg, input))

	require.NotNil(t, cfg.Filter.SelectedDate)
	assert.Equal(t, "2024-03-01", cfg.Filter.SelectedDate.Format(schema.DayFormat))
	assert.Equal(t, "Nairobi", cfg.Filter.Location)
	assert.Equal(t, []string{"m1", "m2", "m3"}, cfg.VisibleMetrics)
}

func TestProcessAndValidate_StoreBackends(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		connect string
		wantErr string
	}{
		{"sqlite needs nothing", "sqlite", "", ""},
		{"none needs nothing", "none", "", ""},
		{"unknown backend", "oracle", "", "invalid store backend"},
		{"mysql without connect", "mysql", "", "store-db-connect is required"},
		{"mysql bad format", "mysql", "just-a-host", "@tcp("},
		{"mysql good format", "mysql", "user:pass@tcp(localhost:3306)/impact", ""},
		{"postgres without connect", "postgresql", "", "store-db-connect is required"},
		{"postgres missing dbname", "postgresql", "host=localhost", "dbname="},
		{"postgres good format", "postgresql", "host=localhost port=5432 user=postgres dbname=impact", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input.StoreBackend = tt.backend
			input.StoreDBConnect = tt.connect
			err := ProcessAndValidate(&Config{}, input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	selected := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	cfg := &Config{
		SnapshotPath:   "data.json",
		VisibleMetrics: []string{"m1", "m2"},
		Filter:         schema.FilterState{SelectedDate: &selected, Window: schema.Window6Months},
	}

	clone := cfg.Clone()
	clone.VisibleMetrics[0] = "changed"
	*clone.Filter.SelectedDate = selected.AddDate(0, 0, 1)

	assert.Equal(t, "m1", cfg.VisibleMetrics[0])
	assert.Equal(t, selected, *cfg.Filter.SelectedDate)
	assert.Equal(t, "data.json", clone.SnapshotPath)
	assert.Equal(t, schema.Window6Months, clone.Filter.Window)
}

func TestRevalidateFilter(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	cfg := &Config{}

	require.NoError(t, RevalidateFilter(cfg, "", "2024-01-01", "2024-01-31", "", "", now))
	assert.True(t, cfg.Filter.HasRange())
	assert.Equal(t, schema.Window1Year, cfg.Filter.Window)
	assert.Equal(t, now, cfg.AsOf)

	// Stale range bounds are replaced, not merged, on revalidation.
	require.NoError(t, RevalidateFilter(cfg, "2024-03-01", "", "", "6months", "2024-06-01", now))
	assert.False(t, cfg.Filter.HasRange())
	assert.True(t, cfg.Filter.HasSelectedDate())
	assert.Equal(t, schema.Window6Months, cfg.Filter.Window)
	assert.Equal(t, "2024-06-01", cfg.AsOf.Format(schema.DayFormat))

	require.Error(t, RevalidateFilter(cfg, "not-a-date", "", "", "", "", now))
}
