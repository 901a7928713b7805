package expense

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the calendar date format used for input and output.
	DateLayout = "2006-01-02"
	// MonthKeyLayout formats the year-month grouping key, e.g. "2025-10".
	MonthKeyLayout = "2006-01"
)

// NewDate returns the calendar date at midnight UTC.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day drops the time of day from t, keeping the calendar date t has in its
// own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// EndOfDay returns the last representable instant of t's calendar date.
func EndOfDay(t time.Time) time.Time {
	return Day(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// MonthKey returns the "YYYY-MM" key of t. Keys sort lexicographically in
// date order.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}
