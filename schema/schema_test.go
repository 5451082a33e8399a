package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mkDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mkDayPtr(y int, m time.Month, d int) *time.Time {
	t := mkDay(y, m, d)
	return &t
}

func TestDataPoint_EffectiveDate(t *testing.T) {
	tests := []struct {
		name  string
		point DataPoint
		want  time.Time
	}{
		{
			name:  "single date",
			point: DataPoint{Date: mkDayPtr(2024, 1, 15)},
			want:  mkDay(2024, 1, 15),
		},
		{
			name:  "range uses end, never start",
			point: DataPoint{RangeStart: mkDayPtr(2024, 1, 1), RangeEnd: mkDayPtr(2024, 1, 10)},
			want:  mkDay(2024, 1, 10),
		},
		{
			name:  "range end wins over single date",
			point: DataPoint{Date: mkDayPtr(2024, 1, 5), RangeStart: mkDayPtr(2024, 1, 1), RangeEnd: mkDayPtr(2024, 1, 10)},
			want:  mkDay(2024, 1, 10),
		},
		{
			name:  "no date yields zero time",
			point: DataPoint{},
			want:  time.Time{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.point.EffectiveDate())
		})
	}
}

func TestDataPoint_EffectiveDay(t *testing.T) {
	ts := time.Date(2024, 5, 20, 16, 45, 12, 0, time.UTC)
	p := DataPoint{Date: &ts}
	assert.Equal(t, mkDay(2024, 5, 20), p.EffectiveDay())
}

func TestDataPoint_IsRanged(t *testing.T) {
	assert.False(t, DataPoint{}.IsRanged())
	assert.False(t, DataPoint{RangeStart: mkDayPtr(2024, 1, 1)}.IsRanged())
	assert.False(t, DataPoint{RangeEnd: mkDayPtr(2024, 1, 2)}.IsRanged())
	assert.True(t, DataPoint{RangeStart: mkDayPtr(2024, 1, 1), RangeEnd: mkDayPtr(2024, 1, 2)}.IsRanged())
}

func TestFilterState_Accessors(t *testing.T) {
	assert.False(t, FilterState{}.HasSelectedDate())
	assert.False(t, FilterState{}.HasRange())
	assert.False(t, FilterState{RangeStart: mkDayPtr(2024, 1, 1)}.HasRange())

	f := FilterState{
		SelectedDate: mkDayPtr(2024, 3, 1),
		RangeStart:   mkDayPtr(2024, 1, 1),
		RangeEnd:     mkDayPtr(2024, 2, 1),
	}
	assert.True(t, f.HasSelectedDate())
	assert.True(t, f.HasRange())
}

func TestRollingWindow_Shift(t *testing.T) {
	anchor := mkDay(2024, 6, 15)

	tests := []struct {
		window RollingWindow
		want   time.Time
	}{
		{Window1Month, mkDay(2024, 5, 15)},
		{Window6Months, mkDay(2023, 12, 15)},
		{Window1Year, mkDay(2023, 6, 15)},
		{Window5Years, mkDay(2019, 6, 15)},
		{RollingWindow("bogus"), mkDay(2023, 6, 15)}, // falls back to one year
	}
	for _, tt := range tests {
		t.Run(string(tt.window), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.Shift(anchor))
		})
	}
}

func TestRollingWindow_ShiftLeapDay(t *testing.T) {
	// AddDate normalization: Feb 29 minus one year is Feb 29, 2023, which
	// does not exist and rolls forward to Mar 1.
	anchor := mkDay(2024, 2, 29)
	assert.Equal(t, mkDay(2023, 3, 1), Window1Year.Shift(anchor))
}
