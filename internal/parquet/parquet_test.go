package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nicknexus/impact/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(ChartRow))
	require.NotNil(t, schema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"metric_id",
		"metric_title",
		"day",
		"label",
		"cumulative",
		"total",
		"color",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func sampleResult() ([]schema.Metric, schema.SeriesResult, map[string]string) {
	metrics := []schema.Metric{
		{ID: "m1", Title: "Meals Served"},
		{ID: "m2", Title: "Volunteers"},
	}
	result := schema.SeriesResult{
		ChartPoints: []schema.ChartPoint{
			{
				Label:  "Jan 1, 2024",
				Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Values: map[string]float64{"m1": 10, "m2": 0},
			},
			{
				Label:  "Jan 2, 2024",
				Date:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
				Values: map[string]float64{"m1": 15, "m2": 3},
			},
		},
		Totals: map[string]float64{"m1": 15, "m2": 3},
	}
	colors := map[string]string{"m1": "#4F46E5", "m2": "#F59E0B"}
	return metrics, result, colors
}

func TestFlattenSeries(t *testing.T) {
	metrics, result, colors := sampleResult()

	rows := FlattenSeries(metrics, result, colors)
	require.Len(t, rows, 4)

	// Rows come out day-major, metrics in list order within each day.
	assert.Equal(t, "m1", rows[0].MetricID)
	assert.Equal(t, "m2", rows[1].MetricID)
	assert.Equal(t, "2024-01-01", rows[0].Day)
	assert.Equal(t, "2024-01-02", rows[2].Day)

	assert.Equal(t, "Meals Served", rows[0].MetricTitle)
	assert.Equal(t, "Jan 1, 2024", rows[0].Label)
	assert.Equal(t, 10.0, rows[0].Cumulative)
	assert.Equal(t, 15.0, rows[0].Total)
	assert.Equal(t, "#4F46E5", rows[0].Color)

	assert.Equal(t, 0.0, rows[1].Cumulative)
	assert.Equal(t, 3.0, rows[3].Cumulative)
}

func TestFlattenSeriesSkipsHiddenMetrics(t *testing.T) {
	metrics, result, colors := sampleResult()

	// A metric filtered out of the value maps produces no rows, even when
	// it is still in the metrics list.
	for i := range result.ChartPoints {
		delete(result.ChartPoints[i].Values, "m2")
	}

	rows := FlattenSeries(metrics, result, colors)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "m1", r.MetricID)
	}
}

func TestFlattenSeriesEmpty(t *testing.T) {
	metrics, _, colors := sampleResult()
	assert.Empty(t, FlattenSeries(metrics, schema.SeriesResult{}, colors))
	assert.Empty(t, FlattenSeries(nil, schema.SeriesResult{}, nil))
}

func TestWriteChartRowsParquet(t *testing.T) {
	// Create temporary directory for test output
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "series.parquet")

	metrics, result, colors := sampleResult()
	data := FlattenSeries(metrics, result, colors)
	require.NotEmpty(t, data)

	// Write data to Parquet file
	err := WriteChartRowsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer file.Close()

	reader := parquet.NewGenericReader[ChartRow](file)
	defer reader.Close()

	readData := make([]ChartRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	for i := range data {
		assert.Equal(t, data[i].MetricID, readData[i].MetricID)
		assert.Equal(t, data[i].Day, readData[i].Day)
		assert.Equal(t, data[i].Label, readData[i].Label)
		assert.InDelta(t, data[i].Cumulative, readData[i].Cumulative, 0.001)
		assert.InDelta(t, data[i].Total, readData[i].Total, 0.001)
		assert.Equal(t, data[i].Color, readData[i].Color)
	}
}

func TestWriteChartRowsParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_series.parquet")

	// Write empty data
	err := WriteChartRowsParquet([]ChartRow{}, outputPath)
	require.NoError(t, err, "Writing empty data should not produce error")

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteChartRowsParquet_InvalidPath(t *testing.T) {
	metrics, result, colors := sampleResult()
	data := FlattenSeries(metrics, result, colors)
	err := WriteChartRowsParquet(data, "/nonexistent/directory/output.parquet")
	require.Error(t, err, "Writing to invalid path should produce error")
}
