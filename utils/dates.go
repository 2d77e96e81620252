// utils/dates.go
package utils

import "time"

const (
	// DateKeyLayout is the canonical calendar-day form used for all
	// schedule grouping and comparison. Keys sort lexicographically in
	// chronological order.
	DateKeyLayout = "2006-01-02"
	// ClockLayout is the canonical minute-precision time-of-day form.
	ClockLayout = "15:04"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// DateKey returns the calendar-day key for t, e.g. "2024-02-15".
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// SlotKey returns the capacity-grouping key for t: calendar day plus start
// time truncated to the minute, e.g. "2024-02-15 10:00". Appointments
// starting in different minutes never share a slot key.
func SlotKey(t time.Time) string {
	return t.Format(DateKeyLayout + " " + ClockLayout)
}

// FormatTimeRange renders a human-readable range like "10:00 - 11:30".
func FormatTimeRange(start, end time.Time) string {
	return start.Format(ClockLayout) + " - " + end.Format(ClockLayout)
}

// ParseDateKey parses a yyyy-MM-dd day value.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse(DateKeyLayout, s)
}
