package filter

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

// Query keys understood by ParseCriteria.
const (
	KeySearch        = "q"
	KeyCategory      = "category"
	KeyPaymentMethod = "payment_method"
	KeyAmountMin     = "amount_min"
	KeyAmountMax     = "amount_max"
	KeyDateFrom      = "date_from"
	KeyDateTo        = "date_to"
	KeyRange         = "range"
)

// ParseCriteria builds criteria from query parameters on top of base.
//
// Category and payment method accept repeated keys or comma separated
// lists. Values that cannot be understood are skipped and reported in the
// returned error; the criteria are always usable. Unparseable dates leave
// the bound unset.
func ParseCriteria(params url.Values, base Criteria, now time.Time) (Criteria, error) {
	c := base.Clone()
	var errs []error

	if term := params.Get(KeySearch); term != "" {
		c.SearchTerm = term
	}

	for _, value := range listValues(params[KeyCategory]) {
		category, err := expense.ParseCategory(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeyCategory, err))
			continue
		}
		if !slices.Contains(c.Categories, category) {
			c.Categories = append(c.Categories, category)
		}
	}

	for _, value := range listValues(params[KeyPaymentMethod]) {
		method, err := expense.ParsePaymentMethod(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeyPaymentMethod, err))
			continue
		}
		if !slices.Contains(c.PaymentMethods, method) {
			c.PaymentMethods = append(c.PaymentMethods, method)
		}
	}

	if minStr := params.Get(KeyAmountMin); minStr != "" {
		val, err := expense.ParseAmount(minStr)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeyAmountMin, err))
		} else {
			c.MinAmount = val
		}
	}

	if maxStr := params.Get(KeyAmountMax); maxStr != "" {
		val, err := expense.ParseAmount(maxStr)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeyAmountMax, err))
		} else {
			c.MaxAmount = val
		}
	}

	if rangeStr := params.Get(KeyRange); rangeStr != "" {
		preset, err := ParsePreset(rangeStr)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeyRange, err))
		} else {
			c = ApplyPreset(c, preset, now)
		}
	}

	if fromStr := params.Get(KeyDateFrom); fromStr != "" {
		c.StartDate = parseOptionalDate(fromStr)
		if c.StartDate == nil {
			errs = append(errs, fmt.Errorf("%s: %w: %q", KeyDateFrom, expense.ErrInvalidDate, fromStr))
		}
	}

	if toStr := params.Get(KeyDateTo); toStr != "" {
		c.EndDate = parseOptionalDate(toStr)
		if c.EndDate == nil {
			errs = append(errs, fmt.Errorf("%s: %w: %q", KeyDateTo, expense.ErrInvalidDate, toStr))
		}
	}

	return c, errors.Join(errs...)
}

func listValues(values []string) []string {
	var result []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}
