package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/nicknexus/impact/internal/contract"
	"github.com/nicknexus/impact/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintMetricResults outputs the metric legend with assigned colors and
// filtered totals, dispatching based on the output format configured.
func PrintMetricResults(metrics []schema.Metric, totals map[string]float64, colors map[string]string, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForMetrics(metrics, totals, colors, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForMetrics(metrics, totals, colors, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printMetricsTable(metrics, totals, colors, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing metrics table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForMetrics handles opening the file and calling the JSON writer.
func printJSONResultsForMetrics(metrics []schema.Metric, totals map[string]float64, colors map[string]string, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForMetrics(w, metrics, totals, colors)
	}, "Wrote JSON metric results")
}

// printCSVResultsForMetrics handles opening the file and calling the CSV writer.
func printCSVResultsForMetrics(metrics []schema.Metric, totals map[string]float64, colors map[string]string, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"id", "title", "unit", "category", "color", "total"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVRowsForMetrics(csvWriter, metrics, totals, colors, fmtFloat)
		})
	}, "Wrote CSV metric results")
}

// printMetricsTable prints the metric legend with color swatches.
func printMetricsTable(metrics []schema.Metric, totals map[string]float64, colors map[string]string, cfg *contract.Config, fmtFloat func(float64) string) error {
	if len(metrics) == 0 {
		fmt.Println("No metrics in snapshot.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"", "ID", "Title", "Unit", "Category", "Color", "Total"}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxTitleWidth := GetMaxTableTitleWidth(cfg)
	var data [][]string
	for i, m := range metrics {
		row := []string{
			contract.Swatch(i, cfg.UseColors),
			m.ID,
			contract.TruncateTitle(m.Title, maxTitleWidth),
			m.Unit,
			m.Category,
			colors[m.ID],
			fmtFloat(totals[m.ID]),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("%d metrics\n", len(metrics))
	return nil
}

// PrintStoreStatus outputs snapshot store status, dispatching based on the
// output format configured.
func PrintStoreStatus(status schema.StoreStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON store status")
	default:
		fmt.Printf("Backend: %s\n", status.Backend)
		fmt.Printf("Connected: %t\n", status.Connected)
		fmt.Printf("Metrics: %d\n", status.MetricCount)
		fmt.Printf("Data points: %d\n", status.DataPointCount)
		return nil
	}
}
