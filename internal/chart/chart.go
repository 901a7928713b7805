// Package chart shapes aggregated totals into the series consumed by the
// dashboard pie and line widgets.
package chart

import (
	"slices"
	"time"

	"golang.org/x/exp/maps"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

// Palette holds the slice colours, assigned in slice order and repeated
// when there are more slices than colours.
var Palette = []string{"#0ea5e9", "#06b6d4", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6", "#ec4899"}

const monthLabelLayout = "Jan 2006"

// PieSlice is one category of the breakdown chart.
type PieSlice struct {
	Name  expense.Category `json:"name"`
	Value float64          `json:"value"`
	Color string           `json:"color"`
}

// LinePoint is one month of the trend chart.
type LinePoint struct {
	Month string  `json:"month"`
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

// PieSeries converts category totals into slices ordered like
// expense.Categories. The boolean is false when there is nothing to draw,
// which is different from a series holding zero-valued slices.
func PieSeries(totals map[expense.Category]int64) ([]PieSlice, bool) {
	if len(totals) == 0 {
		return nil, false
	}

	series := make([]PieSlice, 0, len(totals))
	for _, category := range orderedCategories(totals) {
		series = append(series, PieSlice{
			Name:  category,
			Value: expense.DollarsFloat(totals[category]),
			Color: Palette[len(series)%len(Palette)],
		})
	}

	return series, true
}

// orderedCategories lists the known categories present in totals first, in
// display order, followed by any unknown ones sorted by name.
func orderedCategories(totals map[expense.Category]int64) []expense.Category {
	ordered := make([]expense.Category, 0, len(totals))
	for _, category := range expense.Categories {
		if _, ok := totals[category]; ok {
			ordered = append(ordered, category)
		}
	}

	keys := maps.Keys(totals)
	slices.Sort(keys)

	for _, category := range keys {
		if !category.Valid() {
			ordered = append(ordered, category)
		}
	}

	return ordered
}

// LineSeries converts "YYYY-MM" totals into points sorted by month. The
// boolean is false when there is nothing to draw.
func LineSeries(totals map[string]int64) ([]LinePoint, bool) {
	if len(totals) == 0 {
		return nil, false
	}

	keys := maps.Keys(totals)
	slices.Sort(keys)
	points := make([]LinePoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, LinePoint{
			Month: MonthLabel(key),
			Key:   key,
			Total: expense.DollarsFloat(totals[key]),
		})
	}

	return points, true
}

// MonthLabel turns "2025-10" into "Oct 2025". Keys that are not valid
// months are returned unchanged.
func MonthLabel(key string) string {
	t, err := time.Parse(expense.MonthKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format(monthLabelLayout)
}
