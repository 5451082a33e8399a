package outwriter

import (
	"encoding/csv"
	"io"

	"github.com/nicknexus/impact/schema"
)

// metricLegendEntry is the JSON shape for a single legend row.
type metricLegendEntry struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Unit     string  `json:"unit,omitempty"`
	Category string  `json:"category,omitempty"`
	Color    string  `json:"color"`
	Total    float64 `json:"total"`
}

// writeJSONResultsForMetrics marshals the metric legend to JSON and writes it.
func writeJSONResultsForMetrics(w io.Writer, metrics []schema.Metric, totals map[string]float64, colors map[string]string) error {
	entries := make([]metricLegendEntry, 0, len(metrics))
	for _, m := range metrics {
		entries = append(entries, metricLegendEntry{
			ID:       m.ID,
			Title:    m.Title,
			Unit:     m.Unit,
			Category: m.Category,
			Color:    colors[m.ID],
			Total:    totals[m.ID],
		})
	}
	return writeJSON(w, entries)
}

// writeCSVRowsForMetrics writes the metric legend data rows to a CSV writer.
func writeCSVRowsForMetrics(w *csv.Writer, metrics []schema.Metric, totals map[string]float64, colors map[string]string, fmtFloat func(float64) string) error {
	for _, m := range metrics {
		row := []string{
			m.ID,
			m.Title,
			m.Unit,
			m.Category,
			colors[m.ID],
			fmtFloat(totals[m.ID]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
