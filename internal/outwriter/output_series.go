package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/nicknexus/impact/internal/contract"
	"github.com/nicknexus/impact/internal/parquet"
	"github.com/nicknexus/impact/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSeriesResults outputs the built series, dispatching based on the
// output format configured. The colors map carries the per-metric line
// colors assigned by the caller.
func PrintSeriesResults(metrics []schema.Metric, result schema.SeriesResult, colors map[string]string, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForSeries(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForSeries(metrics, result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForSeries(metrics, result, colors, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printSeriesTable(metrics, result, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing series table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForSeries handles opening the file and calling the JSON writer.
func printJSONResultsForSeries(result schema.SeriesResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForSeries(w, result)
	}, "Wrote JSON series results")
}

// printCSVResultsForSeries handles opening the file and calling the CSV writer.
func printCSVResultsForSeries(metrics []schema.Metric, result schema.SeriesResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForSeries(csvWriter, metrics, result, fmtFloat)
	}, "Wrote CSV series results")
}

// printParquetResultsForSeries flattens the series to rows and writes a Parquet file.
// Parquet is a binary format, so an explicit output file is required.
func printParquetResultsForSeries(metrics []schema.Metric, result schema.SeriesResult, colors map[string]string, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	rows := parquet.FlattenSeries(metrics, result, colors)
	if err := parquet.WriteChartRowsParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote %d Parquet series rows to %s\n", len(rows), cfg.OutputFile)
	return nil
}

// printSeriesTable prints the series as a table with one column per metric.
func printSeriesTable(metrics []schema.Metric, result schema.SeriesResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if result.Empty() {
		fmt.Println("No data points match the current filter.")
		return nil
	}

	// Use os.Stdout, consistent with existing table printing
	table := tablewriter.NewWriter(os.Stdout)

	ids := visibleMetricIDs(metrics, result)

	// --- 1. Define Headers ---
	headers := []string{"Day"}
	for _, id := range ids {
		headers = append(headers, metricTitle(metrics, id))
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	var data [][]string
	for _, p := range result.ChartPoints {
		row := []string{p.Label}
		for _, id := range ids {
			row = append(row, fmtFloat(p.Values[id]))
		}
		data = append(data, row)
	}

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Built %d chart points across %d metrics in %v\n", len(result.ChartPoints), len(ids), duration)
	return nil
}

// visibleMetricIDs returns the metric ids present in the series, ordered by
// the metrics list so columns line up with color assignment. Ids the list
// does not know about (never produced by the builder) would sort last.
func visibleMetricIDs(metrics []schema.Metric, result schema.SeriesResult) []string {
	if len(result.ChartPoints) == 0 {
		return nil
	}
	present := result.ChartPoints[0].Values

	position := make(map[string]int, len(metrics))
	for i, m := range metrics {
		position[m.ID] = i
	}

	ids := make([]string, 0, len(present))
	for id := range present {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		pi, iok := position[ids[i]]
		pj, jok := position[ids[j]]
		if iok != jok {
			return iok
		}
		if pi != pj {
			return pi < pj
		}
		return ids[i] < ids[j]
	})
	return ids
}

// metricTitle resolves a metric id to its display title, falling back to
// the raw id.
func metricTitle(metrics []schema.Metric, id string) string {
	for _, m := range metrics {
		if m.ID == id {
			return m.Title
		}
	}
	return id
}
