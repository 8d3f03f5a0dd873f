package utils

import (
	"time"
)

// DayStart truncates a time to local midnight. Daily logs and daily
// challenge anchors are always stored with this normalization.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd returns the last representable instant of t's day.
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// WeekStart returns the Monday midnight of the week containing t.
// Sunday counts as day 7 of the prior week, so the result is always a
// Monday on or before t.
func WeekStart(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return DayStart(t).AddDate(0, 0, -(wd - 1))
}
