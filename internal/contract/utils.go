package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// swatchColors approximate the chart palette with terminal colors, in the
// same ordinal order, so table swatches line up with chart line colors.
var swatchColors = []*color.Color{
	color.New(color.FgBlue),
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgRed),
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgHiRed),
	color.New(color.FgHiYellow),
	color.New(color.FgWhite),
	color.New(color.FgHiBlue),
	color.New(color.FgHiGreen),
	color.New(color.FgRed, color.Bold),
	color.New(color.FgHiMagenta),
}

// Swatch returns a legend swatch for the given ordinal index. With colors
// enabled the block is tinted with the terminal approximation of the
// palette entry at that index.
func Swatch(index int, useColors bool) string {
	const block = "■"
	if !useColors {
		return block
	}
	if index < 0 {
		index = 0
	}
	return swatchColors[index%len(swatchColors)].Sprint(block)
}

// SelectOutputFile returns the appropriate file handle for output, based
// on the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateTitle truncates a metric title to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for both the
// ellipsis and at least one character of content.
func TruncateTitle(title string, maxWidth int) string {
	runes := []rune(title)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return title
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// SplitList splits a comma-separated flag value into trimmed entries,
// dropping empties. Returns nil for a blank input.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file used by the
// default snapshot store backend.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".impact_store.db"
	}
	return filepath.Join(homeDir, ".impact_store.db")
}
