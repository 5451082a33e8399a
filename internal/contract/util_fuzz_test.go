package contract

import (
	"testing"
	"time"
)

// FuzzParseDay fuzzes the ParseDay function with random inputs.
func FuzzParseDay(f *testing.F) {
	seeds := []string{
		"2024-01-01",
		"2024-02-29",
		"2023-02-29", // invalid leap day
		"2024-03-01T15:04:05Z",
		"not a date",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(_ *testing.T, input string) {
		_, err := ParseDay(input)
		// We don't assert on the result, just that it doesn't panic
		_ = err
	})
}

// FuzzParseAnchor fuzzes the anchor parser across all accepted forms.
func FuzzParseAnchor(f *testing.F) {
	seeds := []string{
		"",
		"2024-06-15",
		"2 weeks ago",
		"0 years ago", // edge case
		"now-ish",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(_ *testing.T, input string) {
		_, err := ParseAnchor(input, time.Now())
		_ = err
	})
}

// FuzzSplitList fuzzes the list splitter with random comma soup.
func FuzzSplitList(f *testing.F) {
	seeds := []string{"", "a", "a,b", " a , ,b,", ",,,"}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		for _, part := range SplitList(input) {
			if part == "" {
				t.Errorf("SplitList(%q) returned an empty entry", input)
			}
		}
	})
}
