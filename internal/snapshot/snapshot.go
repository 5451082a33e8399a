// Package snapshot provides the snapshot providers backing the series
// engine: a JSON file loader and a database-backed store.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nicknexus/impact/internal/contract"
	"github.com/nicknexus/impact/schema"
)

// snapshotDoc is the on-disk JSON shape. Dates are plain "YYYY-MM-DD"
// strings (full ISO8601 timestamps are accepted too).
type snapshotDoc struct {
	Metrics    []schema.Metric `json:"metrics"`
	DataPoints []dataPointDoc  `json:"data_points"`
}

type dataPointDoc struct {
	ID              string  `json:"id"`
	MetricID        string  `json:"metric_id"`
	Value           float64 `json:"value"`
	RepresentedDate string  `json:"represented_date,omitempty"`
	RangeStart      string  `json:"range_start,omitempty"`
	RangeEnd        string  `json:"range_end,omitempty"`
	Location        string  `json:"location,omitempty"`
}

// FileProvider loads a snapshot from a JSON document on disk.
type FileProvider struct {
	Path string
}

var _ contract.SnapshotProvider = (*FileProvider)(nil)

// NewFileProvider returns a provider reading from the given path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// Load reads and decodes the snapshot document. Data points whose date
// fields fail to parse are rejected; a point with no date at all is kept
// as-is and left for the engine's graceful handling.
func (f *FileProvider) Load(_ context.Context) (schema.Snapshot, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return schema.Snapshot{}, fmt.Errorf("cannot read snapshot file %q: %w", f.Path, err)
	}

	var doc snapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return schema.Snapshot{}, fmt.Errorf("cannot parse snapshot file %q: %w", f.Path, err)
	}

	return docToSnapshot(doc)
}

// docToSnapshot converts the decoded document into engine types.
func docToSnapshot(doc snapshotDoc) (schema.Snapshot, error) {
	snap := schema.Snapshot{
		Metrics:    doc.Metrics,
		DataPoints: make([]schema.DataPoint, 0, len(doc.DataPoints)),
	}
	for _, d := range doc.DataPoints {
		p, err := docToDataPoint(d)
		if err != nil {
			return schema.Snapshot{}, err
		}
		snap.DataPoints = append(snap.DataPoints, p)
	}
	return snap, nil
}

func docToDataPoint(d dataPointDoc) (schema.DataPoint, error) {
	p := schema.DataPoint{
		ID:       d.ID,
		MetricID: d.MetricID,
		Value:    d.Value,
		Location: d.Location,
	}
	if d.RepresentedDate != "" {
		t, err := contract.ParseDay(d.RepresentedDate)
		if err != nil {
			return p, fmt.Errorf("data point %q: invalid represented_date: %w", d.ID, err)
		}
		p.Date = &t
	}
	if d.RangeStart != "" {
		t, err := contract.ParseDay(d.RangeStart)
		if err != nil {
			return p, fmt.Errorf("data point %q: invalid range_start: %w", d.ID, err)
		}
		p.RangeStart = &t
	}
	if d.RangeEnd != "" {
		t, err := contract.ParseDay(d.RangeEnd)
		if err != nil {
			return p, fmt.Errorf("data point %q: invalid range_end: %w", d.ID, err)
		}
		p.RangeEnd = &t
	}
	if (p.RangeStart == nil) != (p.RangeEnd == nil) {
		return p, fmt.Errorf("data point %q: range_start and range_end must be present together", d.ID)
	}
	return p, nil
}
