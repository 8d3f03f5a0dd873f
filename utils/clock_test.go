package utils

import (
	"testing"
	"time"
)

// TestWeekStart_AlwaysMonday verifies WeekStart returns a Monday at
// midnight for every weekday, including Sunday which belongs to the
// prior week.
func TestWeekStart_AlwaysMonday(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"Monday", time.Date(2024, 6, 3, 15, 30, 0, 0, time.Local), time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)},
		{"Wednesday", time.Date(2024, 6, 5, 8, 0, 0, 0, time.Local), time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)},
		{"Saturday", time.Date(2024, 6, 8, 23, 59, 0, 0, time.Local), time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)},
		{"Sunday", time.Date(2024, 6, 9, 12, 0, 0, 0, time.Local), time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)},
		{"next Monday", time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local), time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WeekStart(tc.in)
			if !got.Equal(tc.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tc.in, got, tc.want)
			}
			if got.Weekday() != time.Monday {
				t.Errorf("WeekStart(%v).Weekday() = %v, want Monday", tc.in, got.Weekday())
			}
		})
	}
}

// TestDayBounds verifies DayStart truncates to midnight and DayEnd is
// the final instant of the same day.
func TestDayBounds(t *testing.T) {
	in := time.Date(2024, 6, 5, 14, 45, 12, 999, time.Local)

	start := DayStart(in)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("DayStart(%v) = %v, not midnight", in, start)
	}
	if start.Day() != in.Day() {
		t.Errorf("DayStart changed the day: %v", start)
	}

	end := DayEnd(in)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("DayEnd(%v) = %v, not end of day", in, end)
	}
	if !end.Before(DayStart(in.AddDate(0, 0, 1))) {
		t.Errorf("DayEnd must precede the next day's start, got %v", end)
	}
}
