// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/nicknexus/impact/internal/contract"
	"github.com/nicknexus/impact/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSeries prints a built series using the configured output format.
func (ow *OutWriter) WriteSeries(metrics []schema.Metric, result schema.SeriesResult, colors map[string]string, cfg *contract.Config, duration time.Duration) error {
	return PrintSeriesResults(metrics, result, colors, cfg, duration)
}

// WriteMetrics prints the metric legend using the configured output format.
func (ow *OutWriter) WriteMetrics(metrics []schema.Metric, totals map[string]float64, colors map[string]string, cfg *contract.Config) error {
	return PrintMetricResults(metrics, totals, colors, cfg)
}

// WriteStatus prints snapshot store status using the configured output format.
func (ow *OutWriter) WriteStatus(status schema.StoreStatus, cfg *contract.Config) error {
	return PrintStoreStatus(status, cfg)
}

// GetMaxTableTitleWidth calculates the maximum width for metric titles in
// table output based on terminal width and table configuration.
func GetMaxTableTitleWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (swatch, id, unit, category,
	// color, total) plus table borders and padding.
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable title width
		return 15
	}
	if available > 60 {
		// Maximum title width to prevent overly wide tables
		return 60
	}
	return available
}
