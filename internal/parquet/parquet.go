// Package parquet provides data structures and functions for exporting
// built series data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/nicknexus/impact/schema"
	"github.com/parquet-go/parquet-go"
)

// ChartRow is the flattened long form of a built series: one row per
// day/metric pair. Columnar consumers (DuckDB, pandas) prefer this over
// the nested per-day value maps the chart surface uses.
type ChartRow struct {
	// MetricID is the metric this row belongs to
	MetricID string `parquet:"metric_id,snappy"`

	// MetricTitle is the display title of the metric
	MetricTitle string `parquet:"metric_title,snappy"`

	// Day is the calendar day in YYYY-MM-DD form
	Day string `parquet:"day,snappy"`

	// Label is the display-formatted day label
	Label string `parquet:"label,snappy"`

	// Cumulative is the running total for the metric as of this day
	Cumulative float64 `parquet:"cumulative,snappy"`

	// Total is the metric total across the full filtered window
	Total float64 `parquet:"total,snappy"`

	// Color is the hex line color assigned to the metric
	Color string `parquet:"color,snappy"`
}

// FlattenSeries converts a built series into ChartRow records, one per
// day/metric pair, in metrics-list order within each day.
func FlattenSeries(metrics []schema.Metric, result schema.SeriesResult, colors map[string]string) []ChartRow {
	rows := make([]ChartRow, 0, len(result.ChartPoints)*len(metrics))
	for _, p := range result.ChartPoints {
		for _, m := range metrics {
			value, ok := p.Values[m.ID]
			if !ok {
				continue
			}
			rows = append(rows, ChartRow{
				MetricID:    m.ID,
				MetricTitle: m.Title,
				Day:         p.Date.Format(schema.DayFormat),
				Label:       p.Label,
				Cumulative:  value,
				Total:       result.Totals[m.ID],
				Color:       colors[m.ID],
			})
		}
	}
	return rows
}

// WriteChartRowsParquet writes a slice of ChartRow structs to a Parquet file.
func WriteChartRowsParquet(data []ChartRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ChartRow struct tags
	writer := parquet.NewGenericWriter[ChartRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
