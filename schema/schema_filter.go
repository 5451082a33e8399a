package schema

import "time"

// FilterState is the current chart filter selection. At most one of the
// single-date or explicit-range selections is meaningful at a time; when
// both are populated the resolver applies precedence (single date wins)
// rather than rejecting the combination.
type FilterState struct {
	SelectedDate *time.Time // Single calendar day filter
	RangeStart   *time.Time // Explicit range start (paired with RangeEnd)
	RangeEnd     *time.Time // Explicit range end (paired with RangeStart)

	// Window is used only when neither explicit filter is set.
	Window RollingWindow

	// Location is carried through from the filter surface but is not
	// enforced by the resolver.
	Location string
}

// HasSelectedDate reports whether the single-day filter is set.
func (f FilterState) HasSelectedDate() bool { return f.SelectedDate != nil }

// HasRange reports whether both explicit range bounds are set.
func (f FilterState) HasRange() bool { return f.RangeStart != nil && f.RangeEnd != nil }

// Shift returns the anchor date moved back by the window's calendar span.
// Unknown windows fall back to one year.
func (w RollingWindow) Shift(anchor time.Time) time.Time {
	switch w {
	case Window1Month:
		return anchor.AddDate(0, -1, 0)
	case Window6Months:
		return anchor.AddDate(0, -6, 0)
	case Window5Years:
		return anchor.AddDate(-5, 0, 0)
	default: // Window1Year
		return anchor.AddDate(-1, 0, 0)
	}
}
