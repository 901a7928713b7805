package filter

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

// SortField represents a field that can be sorted on.
type SortField string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
)

// SortDirection represents sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortOptions holds sorting preferences.
type SortOptions struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSortOptions returns the default sort (date descending, newest first).
func DefaultSortOptions() SortOptions {
	return SortOptions{
		Field:     SortByDate,
		Direction: SortDesc,
	}
}

// String returns the sort options as a string (e.g., "date:desc").
func (s SortOptions) String() string {
	return string(s.Field) + ":" + string(s.Direction)
}

// ParseSort parses a sort string like "date:desc" into SortOptions.
func ParseSort(s string) (SortOptions, error) {
	if s == "" {
		return SortOptions{}, fmt.Errorf("sort string cannot be empty")
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return SortOptions{}, fmt.Errorf("invalid sort format, expected field:direction")
	}

	field := SortField(parts[0])
	direction := SortDirection(parts[1])

	if field != SortByDate && field != SortByAmount {
		return SortOptions{}, fmt.Errorf("invalid sort field: %s (must be date or amount)", field)
	}

	if direction != SortAsc && direction != SortDesc {
		return SortOptions{}, fmt.Errorf("invalid sort direction: %s (must be asc or desc)", direction)
	}

	return SortOptions{
		Field:     field,
		Direction: direction,
	}, nil
}

// Sort returns a sorted copy of records. Records that compare equal keep
// their relative order.
func Sort(records []expense.Expense, opts SortOptions) []expense.Expense {
	sorted := slices.Clone(records)

	slices.SortStableFunc(sorted, func(a, b expense.Expense) int {
		var result int
		switch opts.Field {
		case SortByAmount:
			result = cmp.Compare(a.Amount(), b.Amount())
		default:
			result = a.Date().Compare(b.Date())
		}

		if opts.Direction == SortDesc {
			return -result
		}
		return result
	})

	return sorted
}
