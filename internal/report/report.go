// Package report derives summary statistics from a list of expenses. Every
// function is pure and works on whichever list the caller passes, the full
// list or a filtered view.
package report

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

const (
	percentageOfTotal = 100
)

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category expense.Category
	Amount   int64
}

// Summary bundles the values shown on the analytics cards.
type Summary struct {
	Count          int
	Total          int64
	TopCategory    CategoryTotal
	HasTopCategory bool
	MonthlyAverage int64
	Trend          float64
}

// Total sums the amount of every record.
func Total(records []expense.Expense) int64 {
	var total int64
	for _, e := range records {
		total += e.Amount()
	}
	return total
}

// CategoryTotals sums amounts per category. Categories without records are
// absent from the result.
func CategoryTotals(records []expense.Expense) map[expense.Category]int64 {
	totals := make(map[expense.Category]int64)
	for _, e := range records {
		totals[e.Category()] += e.Amount()
	}
	return totals
}

// SortedCategoryTotals returns the category totals ordered by amount
// descending, ties broken by category name ascending.
func SortedCategoryTotals(records []expense.Expense) []CategoryTotal {
	totals := CategoryTotals(records)

	sorted := make([]CategoryTotal, 0, len(totals))
	keys := maps.Keys(totals)
	slices.Sort(keys)

	for _, category := range keys {
		sorted = append(sorted, CategoryTotal{Category: category, Amount: totals[category]})
	}

	slices.SortStableFunc(sorted, func(a, b CategoryTotal) int {
		return cmp.Compare(b.Amount, a.Amount)
	})

	return sorted
}

// TopCategory returns the category with the largest total. Ties go to the
// category whose name sorts first. The boolean is false for an empty list.
func TopCategory(records []expense.Expense) (CategoryTotal, bool) {
	sorted := SortedCategoryTotals(records)
	if len(sorted) == 0 {
		return CategoryTotal{}, false
	}
	return sorted[0], true
}

// MonthlyTotals sums amounts per "YYYY-MM" month.
func MonthlyTotals(records []expense.Expense) map[string]int64 {
	totals := make(map[string]int64)
	for _, e := range records {
		totals[e.MonthKey()] += e.Amount()
	}
	return totals
}

// MonthlyAverage divides the total by the number of distinct months,
// rounding half up to the cent. It is 0 when there are no months.
func MonthlyAverage(records []expense.Expense) int64 {
	months := len(MonthlyTotals(records))
	if months == 0 {
		return 0
	}

	return decimal.NewFromInt(Total(records)).
		DivRound(decimal.NewFromInt(int64(months)), 0).
		IntPart()
}

// MonthOverMonthTrend returns the percentage change of the most recent
// month against the month before it in the data.
//
// The trend is 0 when there are fewer than two months or when the previous
// month total is 0, so growth from nothing is reported as flat.
func MonthOverMonthTrend(records []expense.Expense) float64 {
	totals := MonthlyTotals(records)
	keys := maps.Keys(totals)
	slices.Sort(keys)
	slices.Reverse(keys)

	if len(keys) < 2 {
		return 0
	}

	last := totals[keys[0]]
	previous := totals[keys[1]]
	if previous == 0 {
		return 0
	}

	return float64(last-previous) / float64(previous) * percentageOfTotal
}

// Summarize computes every analytics card value in one pass over the
// derived maps.
func Summarize(records []expense.Expense) Summary {
	top, ok := TopCategory(records)

	return Summary{
		Count:          len(records),
		Total:          Total(records),
		TopCategory:    top,
		HasTopCategory: ok,
		MonthlyAverage: MonthlyAverage(records),
		Trend:          MonthOverMonthTrend(records),
	}
}

// Category is the per-category detail of a breakdown.
type Category struct {
	Name              expense.Category
	Amount            int64
	Expenses          []expense.Expense
	PercentageOfTotal float64
	LastTransaction   time.Time
	AvgAmount         int64
}

// Breakdown groups records by category, ordered like SortedCategoryTotals.
func Breakdown(records []expense.Expense) []Category {
	total := Total(records)
	grouped := make(map[expense.Category][]expense.Expense)
	for _, e := range records {
		grouped[e.Category()] = append(grouped[e.Category()], e)
	}

	breakdown := make([]Category, 0, len(grouped))
	for _, ct := range SortedCategoryTotals(records) {
		expenses := grouped[ct.Category]

		category := Category{
			Name:      ct.Category,
			Amount:    ct.Amount,
			Expenses:  expenses,
			AvgAmount: decimal.NewFromInt(ct.Amount).
				DivRound(decimal.NewFromInt(int64(len(expenses))), 0).
				IntPart(),
		}

		if total > 0 {
			category.PercentageOfTotal = float64(ct.Amount*percentageOfTotal) / float64(total)
		}

		for _, e := range expenses {
			if e.Date().After(category.LastTransaction) {
				category.LastTransaction = e.Date()
			}
		}

		breakdown = append(breakdown, category)
	}

	return breakdown
}
