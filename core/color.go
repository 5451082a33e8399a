package core

import "github.com/nicknexus/impact/schema"

// palette is the fixed ordered set of line colors. Fourteen visually
// distinct tokens; assignment wraps around for longer metric lists.
var palette = []string{
	"#4E79A7", // blue
	"#F28E2B", // orange
	"#E15759", // red
	"#76B7B2", // teal
	"#59A14F", // green
	"#EDC948", // yellow
	"#B07AA1", // purple
	"#FF9DA7", // pink
	"#9C755F", // brown
	"#BAB0AC", // gray
	"#1F77B4", // dark blue
	"#2CA02C", // dark green
	"#D62728", // dark red
	"#9467BD", // violet
}

// PaletteSize returns the number of distinct colors before wraparound.
func PaletteSize() int { return len(palette) }

// PaletteColor returns the palette entry for an ordinal index.
func PaletteColor(index int) string {
	if index < 0 {
		index = 0
	}
	return palette[index%len(palette)]
}

// ColorFor returns the display color for a metric, chosen by its ordinal
// position within the full metrics list modulo the palette size. Category
// plays no part; two metrics in the same category at different positions
// get different colors. Unknown ids fall back to the first palette entry.
// The assigner holds no state: callers wanting stable colors across
// re-renders must pass a consistently ordered metrics list.
func ColorFor(metrics []schema.Metric, metricID string) string {
	for i, m := range metrics {
		if m.ID == metricID {
			return PaletteColor(i)
		}
	}
	return palette[0]
}

// ColorMap assigns a color to every metric in list order.
func ColorMap(metrics []schema.Metric) map[string]string {
	colors := make(map[string]string, len(metrics))
	for i, m := range metrics {
		colors[m.ID] = PaletteColor(i)
	}
	return colors
}
