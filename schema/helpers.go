package schema

import "time"

// DayLabelFormat is the display format for chart day labels.
const DayLabelFormat = "Jan 2, 2006"

// DayFormat is the compact machine representation of a calendar day.
const DayFormat = "2006-01-02"

// TruncateToDay returns midnight of t's calendar day in t's location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatDayLabel renders t as a human-readable day label.
func FormatDayLabel(t time.Time) string {
	return t.Format(DayLabelFormat)
}

// DaysBetween returns the number of calendar days from a to b inclusive.
// It returns 0 when b is before a.
func DaysBetween(a, b time.Time) int {
	start := TruncateToDay(a)
	end := TruncateToDay(b)
	if end.Before(start) {
		return 0
	}
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}
