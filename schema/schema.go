// Package schema has configs, models and constants for all parts of impact.
package schema

import "time"

// Metric represents a named, unit-bearing quantity being tracked,
// such as "Students Trained" or "Meals Served". Metrics are owned by the
// surrounding application; the series engine only ever reads them.
type Metric struct {
	ID       string `json:"id"`       // Opaque identifier
	Title    string `json:"title"`    // Display title
	Unit     string `json:"unit"`     // Measurement unit (e.g. "people", "kg")
	Category string `json:"category"` // Free-form tag (input/output/impact); display only
}

// DataPoint is one recorded observation of a metric's value, dated either
// with a single represented date or an inclusive start/end range. Exactly
// one of the two representations should be present; a point with neither
// violates the date invariant and has a zero effective date.
type DataPoint struct {
	ID         string     `json:"id"`
	MetricID   string     `json:"metric_id"`
	Value      float64    `json:"value"`
	Date       *time.Time `json:"represented_date,omitempty"`
	RangeStart *time.Time `json:"range_start,omitempty"`
	RangeEnd   *time.Time `json:"range_end,omitempty"`

	// Location is accepted on ingest but currently has no filtering effect.
	Location string `json:"location,omitempty"`
}

// EffectiveDate returns the single date used to place the point on the
// timeline: the range end when the point is range-valued, else its
// represented date. The range start is never used for placement.
func (p DataPoint) EffectiveDate() time.Time {
	if p.RangeEnd != nil {
		return *p.RangeEnd
	}
	if p.Date != nil {
		return *p.Date
	}
	return time.Time{}
}

// EffectiveDay returns the effective date truncated to its calendar day.
func (p DataPoint) EffectiveDay() time.Time {
	return TruncateToDay(p.EffectiveDate())
}

// IsRanged reports whether the point carries a start/end date pair.
func (p DataPoint) IsRanged() bool {
	return p.RangeStart != nil && p.RangeEnd != nil
}

// Snapshot is the immutable per-invocation input handed to the series
// engine: every metric of an initiative plus every recorded data point.
// The engine performs no caching across snapshots.
type Snapshot struct {
	Metrics    []Metric    `json:"metrics"`
	DataPoints []DataPoint `json:"data_points"`
}
