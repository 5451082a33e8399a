package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/nicknexus/impact/schema"
)

// writeJSONResultsForSeries marshals the schema.SeriesResult to JSON and writes it.
func writeJSONResultsForSeries(w io.Writer, result schema.SeriesResult) error {
	return writeJSON(w, result)
}

// writeCSVResultsForSeries writes the series in long form, one row per
// day/metric pair, which loads cleanly into spreadsheet pivot tables.
func writeCSVResultsForSeries(w *csv.Writer, metrics []schema.Metric, result schema.SeriesResult, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"day",
		"label",
		"metric_id",
		"cumulative",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	ids := visibleMetricIDs(metrics, result)
	for _, p := range result.ChartPoints {
		day := p.Date.Format(schema.DayFormat)
		for _, id := range ids {
			row := []string{
				day,
				p.Label,
				id,
				fmtFloat(p.Values[id]),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}
