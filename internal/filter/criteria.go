package filter

import (
	"slices"
	"time"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

// ToggleCategory selects category when it is not selected and deselects it
// otherwise.
func (c *Criteria) ToggleCategory(category expense.Category) {
	if i := slices.Index(c.Categories, category); i >= 0 {
		c.Categories = slices.Delete(slices.Clone(c.Categories), i, i+1)
		return
	}
	c.Categories = append(slices.Clone(c.Categories), category)
}

// TogglePaymentMethod selects method when it is not selected and deselects
// it otherwise.
func (c *Criteria) TogglePaymentMethod(method expense.PaymentMethod) {
	if i := slices.Index(c.PaymentMethods, method); i >= 0 {
		c.PaymentMethods = slices.Delete(slices.Clone(c.PaymentMethods), i, i+1)
		return
	}
	c.PaymentMethods = append(slices.Clone(c.PaymentMethods), method)
}

// SetAmountRange sets both amount bounds, swapping them when given in
// reverse order.
func (c *Criteria) SetAmountRange(minAmount, maxAmount int64) {
	if minAmount > maxAmount {
		minAmount, maxAmount = maxAmount, minAmount
	}
	c.MinAmount = minAmount
	c.MaxAmount = maxAmount
}

// SetDateRange sets the date bounds from YYYY-MM-DD strings. An empty or
// unparseable value clears that bound.
func (c *Criteria) SetDateRange(start, end string) {
	c.StartDate = parseOptionalDate(start)
	c.EndDate = parseOptionalDate(end)
}

// ActiveCount returns how many constraints narrow the result compared to
// criteria built with the given default range.
func (c Criteria) ActiveCount(defaultMin, defaultMax int64) int {
	count := len(c.Categories) + len(c.PaymentMethods)
	if c.SearchTerm != "" {
		count++
	}
	if c.MinAmount > defaultMin || c.MaxAmount < defaultMax {
		count++
	}
	if c.StartDate != nil {
		count++
	}
	if c.EndDate != nil {
		count++
	}
	return count
}

// Clone returns a copy of c that shares no slices or dates with it.
func (c Criteria) Clone() Criteria {
	clone := c
	clone.Categories = slices.Clone(c.Categories)
	clone.PaymentMethods = slices.Clone(c.PaymentMethods)
	if c.StartDate != nil {
		start := *c.StartDate
		clone.StartDate = &start
	}
	if c.EndDate != nil {
		end := *c.EndDate
		clone.EndDate = &end
	}
	return clone
}

func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := expense.ParseDate(s)
	if err != nil {
		return nil
	}
	return &t
}
