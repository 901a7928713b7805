// Package filter narrows an expense list down to the records that satisfy
// the dashboard filter criteria.
package filter

import (
	"slices"
	"strings"
	"time"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

const (
	// DefaultMinAmount is the lower amount bound of fresh criteria, in cents.
	DefaultMinAmount int64 = 0
	// DefaultMaxAmount is the upper amount bound of fresh criteria, in cents.
	// Expenses above $1000 are hidden until the range is widened.
	DefaultMaxAmount int64 = 100000
)

// Criteria holds the active filter constraints. Empty sets and nil dates
// mean "no restriction"; the amount range always applies.
type Criteria struct {
	SearchTerm     string                  // case-insensitive substring of the description
	Categories     []expense.Category      // empty matches every category
	PaymentMethods []expense.PaymentMethod // empty matches every payment method
	MinAmount      int64                   // cents, inclusive
	MaxAmount      int64                   // cents, inclusive
	StartDate      *time.Time              // inclusive
	EndDate        *time.Time              // inclusive through the end of the day
}

// Default returns the criteria a dashboard session starts with.
func Default() Criteria {
	return WithAmountRange(DefaultMinAmount, DefaultMaxAmount)
}

// WithAmountRange returns default criteria using a custom amount range.
func WithAmountRange(minAmount, maxAmount int64) Criteria {
	return Criteria{
		MinAmount: minAmount,
		MaxAmount: maxAmount,
	}
}

// Filter returns the records matching c, preserving their order. records is
// never modified.
func Filter(records []expense.Expense, c Criteria) []expense.Expense {
	result := make([]expense.Expense, 0, len(records))
	for _, e := range records {
		if Matches(e, c) {
			result = append(result, e)
		}
	}
	return result
}

// Matches reports whether e satisfies every clause of c.
func Matches(e expense.Expense, c Criteria) bool {
	return MatchSearch(e, c) &&
		MatchCategory(e, c) &&
		MatchPaymentMethod(e, c) &&
		MatchAmount(e, c) &&
		MatchDate(e, c)
}

func MatchSearch(e expense.Expense, c Criteria) bool {
	if c.SearchTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Description()), strings.ToLower(c.SearchTerm))
}

func MatchCategory(e expense.Expense, c Criteria) bool {
	return len(c.Categories) == 0 || slices.Contains(c.Categories, e.Category())
}

func MatchPaymentMethod(e expense.Expense, c Criteria) bool {
	return len(c.PaymentMethods) == 0 || slices.Contains(c.PaymentMethods, e.PaymentMethod())
}

func MatchAmount(e expense.Expense, c Criteria) bool {
	return e.Amount() >= c.MinAmount && e.Amount() <= c.MaxAmount
}

func MatchDate(e expense.Expense, c Criteria) bool {
	if c.StartDate != nil && e.Date().Before(expense.Day(*c.StartDate)) {
		return false
	}
	if c.EndDate != nil && e.Date().After(expense.EndOfDay(*c.EndDate)) {
		return false
	}
	return true
}
