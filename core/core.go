// Package core has core logic for filtering, series building and color
// assignment.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/nicknexus/impact/internal/contract"
	"github.com/nicknexus/impact/internal/outwriter"
	"github.com/nicknexus/impact/internal/snapshot"
	"github.com/nicknexus/impact/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// GetSeriesResults loads a snapshot, resolves the filter and builds the
// daily cumulative series, applying the visible-metrics selection.
// It returns the series alongside the full metrics list.
func GetSeriesResults(ctx context.Context, cfg *contract.Config) (schema.SeriesResult, []schema.Metric, error) {
	snap, err := loadSnapshot(ctx, cfg)
	if err != nil {
		return schema.SeriesResult{}, nil, err
	}

	res := Resolve(cfg.Filter, cfg.AsOf)
	result := Build(snap.Metrics, snap.DataPoints, res)
	result.ChartPoints = SelectVisible(result.ChartPoints, cfg.VisibleMetrics)

	return result, snap.Metrics, nil
}

// ExecuteSeries builds the daily cumulative series and prints it. It
// serves as the main entry point for the 'series' command.
func ExecuteSeries(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()

	result, metrics, err := GetSeriesResults(ctx, cfg)
	if err != nil {
		return err
	}

	// Colors come from the full metrics list so hiding a metric never
	// shifts the colors of the ones that remain.
	colors := ColorMap(metrics)

	duration := time.Since(start)
	return outwriter.PrintSeriesResults(metrics, result, colors, cfg, duration)
}

// GetMetricResults loads a snapshot and returns the full metrics list with
// totals over the filtered window.
func GetMetricResults(ctx context.Context, cfg *contract.Config) ([]schema.Metric, map[string]float64, error) {
	snap, err := loadSnapshot(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	res := Resolve(cfg.Filter, cfg.AsOf)
	result := Build(snap.Metrics, snap.DataPoints, res)

	return snap.Metrics, result.Totals, nil
}

// ExecuteMetrics prints the metric legend with assigned colors and totals
// over the filtered window. It serves as the main entry point for the
// 'metrics' command.
func ExecuteMetrics(ctx context.Context, cfg *contract.Config) error {
	metrics, totals, err := GetMetricResults(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.PrintMetricResults(metrics, totals, ColorMap(metrics), cfg)
}

// ExecuteSnapshotImport reads a JSON snapshot file and replaces the store
// contents with it.
func ExecuteSnapshotImport(ctx context.Context, cfg *contract.Config) error {
	if cfg.SnapshotPath == "" {
		return fmt.Errorf("a snapshot file path is required for import")
	}

	snap, err := snapshot.NewFileProvider(cfg.SnapshotPath).Load(ctx)
	if err != nil {
		return err
	}

	store, err := snapshot.NewStore(cfg.StoreBackend, cfg.StoreDBConnect)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Import(ctx, snap); err != nil {
		return err
	}

	fmt.Printf("Imported %d metrics and %d data points into %s store\n",
		len(snap.Metrics), len(snap.DataPoints), cfg.StoreBackend)
	return nil
}

// ExecuteSnapshotStatus prints counts and connectivity for the configured
// store backend.
func ExecuteSnapshotStatus(ctx context.Context, cfg *contract.Config) error {
	store, err := snapshot.NewStore(cfg.StoreBackend, cfg.StoreDBConnect)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	status, err := store.Status(ctx)
	if err != nil {
		return err
	}
	return outwriter.PrintStoreStatus(status, cfg)
}

// loadSnapshot picks the snapshot source: an explicit file path wins,
// otherwise the configured store backend is used.
func loadSnapshot(ctx context.Context, cfg *contract.Config) (schema.Snapshot, error) {
	if cfg.SnapshotPath != "" {
		return snapshot.NewFileProvider(cfg.SnapshotPath).Load(ctx)
	}

	store, err := snapshot.NewStore(cfg.StoreBackend, cfg.StoreDBConnect)
	if err != nil {
		return schema.Snapshot{}, err
	}
	defer func() {
		if err := store.Close(); err != nil {
			contract.LogWarn("closing snapshot store", err)
		}
	}()
	return store.Load(ctx)
}
