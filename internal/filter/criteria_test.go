package filter

import (
	"slices"
	"testing"
	"time"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.MinAmount != 0 || c.MaxAmount != 100000 {
		t.Errorf("Default() amount range = [%d, %d], want [0, 100000]", c.MinAmount, c.MaxAmount)
	}
	if c.SearchTerm != "" || len(c.Categories) != 0 || len(c.PaymentMethods) != 0 {
		t.Errorf("Default() should not restrict search, categories or payment methods: %+v", c)
	}
	if c.StartDate != nil || c.EndDate != nil {
		t.Errorf("Default() should not set dates: %+v", c)
	}
}

func TestToggleCategory(t *testing.T) {
	c := Default()

	c.ToggleCategory(expense.Food)
	c.ToggleCategory(expense.Health)
	if want := []expense.Category{expense.Food, expense.Health}; !slices.Equal(c.Categories, want) {
		t.Errorf("Categories = %v, want %v", c.Categories, want)
	}

	snapshot := c.Clone()
	c.ToggleCategory(expense.Food)
	if want := []expense.Category{expense.Health}; !slices.Equal(c.Categories, want) {
		t.Errorf("Categories = %v, want %v", c.Categories, want)
	}
	if want := []expense.Category{expense.Food, expense.Health}; !slices.Equal(snapshot.Categories, want) {
		t.Errorf("toggling changed a clone: %v", snapshot.Categories)
	}
}

func TestTogglePaymentMethod(t *testing.T) {
	c := Default()

	c.TogglePaymentMethod(expense.Cash)
	if want := []expense.PaymentMethod{expense.Cash}; !slices.Equal(c.PaymentMethods, want) {
		t.Errorf("PaymentMethods = %v, want %v", c.PaymentMethods, want)
	}

	c.TogglePaymentMethod(expense.Cash)
	if len(c.PaymentMethods) != 0 {
		t.Errorf("PaymentMethods = %v, want empty", c.PaymentMethods)
	}
}

func TestSetAmountRangeSwapsReversedBounds(t *testing.T) {
	c := Default()
	c.SetAmountRange(5000, 1000)

	if c.MinAmount != 1000 || c.MaxAmount != 5000 {
		t.Errorf("amount range = [%d, %d], want [1000, 5000]", c.MinAmount, c.MaxAmount)
	}
}

func TestSetDateRange(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantStart string
		wantEnd   string
	}{
		{name: "both valid", start: "2025-10-01", end: "2025-10-31", wantStart: "2025-10-01", wantEnd: "2025-10-31"},
		{name: "empty clears", start: "", end: "", wantStart: "", wantEnd: ""},
		{name: "unparseable start is unset", start: "yesterday", end: "2025-10-31", wantStart: "", wantEnd: "2025-10-31"},
		{name: "unparseable end is unset", start: "2025-10-01", end: "31/10/2025", wantStart: "2025-10-01", wantEnd: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			c.SetDateRange(tt.start, tt.end)

			if got := formatOptional(c.StartDate); got != tt.wantStart {
				t.Errorf("StartDate = %q, want %q", got, tt.wantStart)
			}
			if got := formatOptional(c.EndDate); got != tt.wantEnd {
				t.Errorf("EndDate = %q, want %q", got, tt.wantEnd)
			}
		})
	}
}

func TestActiveCount(t *testing.T) {
	c := Default()
	if got := c.ActiveCount(DefaultMinAmount, DefaultMaxAmount); got != 0 {
		t.Errorf("ActiveCount() = %d, want 0", got)
	}

	c.SearchTerm = "gas"
	c.ToggleCategory(expense.Food)
	c.ToggleCategory(expense.Health)
	c.TogglePaymentMethod(expense.Cash)
	c.SetAmountRange(0, 50000)
	c.SetDateRange("2025-10-01", "2025-10-31")

	if got := c.ActiveCount(DefaultMinAmount, DefaultMaxAmount); got != 7 {
		t.Errorf("ActiveCount() = %d, want 7", got)
	}
}

func formatOptional(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(expense.DateLayout)
}
