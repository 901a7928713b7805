package util

import (
	"fmt"
	"time"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

// MonthDates returns the first and last calendar day of the month named by
// a "YYYY-MM" key, at midnight UTC.
func MonthDates(key string) (time.Time, time.Time, error) {
	first, err := time.Parse(expense.MonthKeyLayout, key)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: month %q", expense.ErrInvalidDate, key)
	}

	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

// YearDates returns January 1st and December 31st of year.
func YearDates(year int) (time.Time, time.Time) {
	return expense.NewDate(year, time.January, 1), expense.NewDate(year, time.December, 31)
}
