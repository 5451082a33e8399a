package core

import (
	"time"

	"github.com/nicknexus/impact/schema"
)

// Resolution is a concrete inclusive time domain plus a predicate deciding
// whether a data point participates in the series.
type Resolution struct {
	Start    time.Time
	End      time.Time
	Includes func(schema.DataPoint) bool
}

// Defined reports whether both domain bounds are usable.
func (r Resolution) Defined() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Resolve turns the current filter selection into a concrete domain and
// inclusion predicate. Precedence, highest first: single selected date,
// explicit date range, rolling window anchored at now. Location is present
// on FilterState but deliberately not enforced here.
func Resolve(filter schema.FilterState, now time.Time) Resolution {
	switch {
	case filter.HasSelectedDate():
		return resolveSelectedDate(*filter.SelectedDate)
	case filter.HasRange():
		return resolveRange(*filter.RangeStart, *filter.RangeEnd)
	default:
		return resolveWindow(filter.Window, now)
	}
}

// resolveSelectedDate restricts the domain to a single calendar day. A
// point is included only when its effective date falls on that day.
func resolveSelectedDate(selected time.Time) Resolution {
	day := schema.TruncateToDay(selected)
	return Resolution{
		Start: day,
		End:   schema.EndOfDay(selected),
		Includes: func(p schema.DataPoint) bool {
			eff := p.EffectiveDate()
			if eff.IsZero() {
				return false
			}
			return schema.SameDay(eff, day)
		},
	}
}

// resolveRange spans the explicit inclusive range. Range-valued points are
// included when their own range overlaps the filter range; single-dated
// points when their date falls inside it.
func resolveRange(start, end time.Time) Resolution {
	domainStart := schema.TruncateToDay(start)
	domainEnd := schema.EndOfDay(end)
	return Resolution{
		Start: domainStart,
		End:   domainEnd,
		Includes: func(p schema.DataPoint) bool {
			if p.IsRanged() {
				return !p.RangeStart.After(domainEnd) && !p.RangeEnd.Before(domainStart)
			}
			if p.Date == nil {
				return false
			}
			return !p.Date.Before(domainStart) && !p.Date.After(domainEnd)
		},
	}
}

// resolveWindow anchors the domain at now minus the window's calendar
// span. Only the lower bound is checked: a point whose effective date is
// at least the domain start is included even if it is dated after now.
func resolveWindow(window schema.RollingWindow, now time.Time) Resolution {
	start := schema.TruncateToDay(window.Shift(now))
	return Resolution{
		Start: start,
		End:   schema.EndOfDay(now),
		Includes: func(p schema.DataPoint) bool {
			eff := p.EffectiveDate()
			if eff.IsZero() {
				return false
			}
			return !eff.Before(start)
		},
	}
}
