package schema

import "time"

// ChartPoint is one synthetic row per calendar day in the resolved domain.
// Values holds the cumulative total per metric id; metrics with no
// surviving points carry an explicit 0 so charts render a flat zero line
// rather than a gap.
type ChartPoint struct {
	Label  string             `json:"label"` // Display-formatted day label
	Date   time.Time          `json:"date"`  // Raw day (midnight)
	Values map[string]float64 `json:"values"`
}

// SeriesResult holds the chart-ready output of the series builder.
type SeriesResult struct {
	ChartPoints []ChartPoint       `json:"chart_points"`
	Totals      map[string]float64 `json:"totals"`
}

// Empty reports whether there is nothing to chart. Callers treat this as
// a valid "no data" state, not an error.
func (r SeriesResult) Empty() bool { return len(r.ChartPoints) == 0 }

// StoreStatus reports status information about a snapshot store.
type StoreStatus struct {
	Backend        string `json:"backend"`
	Connected      bool   `json:"connected"`
	MetricCount    int    `json:"metric_count"`
	DataPointCount int    `json:"data_point_count"`
}
