package testutil

import (
	"testing"
	"time"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

// NewExpense builds an expense from dollar and date strings, failing the
// test when either cannot be parsed.
func NewExpense(
	t *testing.T,
	id, description, amount string,
	category expense.Category,
	date string,
	method expense.PaymentMethod,
) expense.Expense {
	t.Helper()

	cents, err := expense.ParseAmount(amount)
	if err != nil {
		t.Fatalf("invalid amount %q: %v", amount, err)
	}

	d, err := expense.ParseDate(date)
	if err != nil {
		t.Fatalf("invalid date %q: %v", date, err)
	}

	return expense.New(id, expense.Draft{
		Description:   description,
		Amount:        cents,
		Category:      category,
		Date:          d,
		PaymentMethod: method,
	})
}

// ScenarioExpenses returns three expenses spread over September and
// October 2025 totalling $186.49.
func ScenarioExpenses(t *testing.T) []expense.Expense {
	t.Helper()

	return []expense.Expense{
		NewExpense(t, "1", "Grocery Shopping", "125.50", expense.Food, "2025-10-25", expense.CreditCard),
		NewExpense(t, "2", "Gas", "45.00", expense.Transportation, "2025-10-24", expense.DebitCard),
		NewExpense(t, "3", "Movie Tickets", "15.99", expense.Entertainment, "2025-09-15", expense.CreditCard),
	}
}

// DashboardExpenses returns the eight expenses shown on the analytics page.
func DashboardExpenses(t *testing.T) []expense.Expense {
	t.Helper()

	return []expense.Expense{
		NewExpense(t, "1", "Grocery Shopping", "125.50", expense.Food, "2025-10-25", expense.CreditCard),
		NewExpense(t, "2", "Gas", "45.00", expense.Transportation, "2025-10-24", expense.DebitCard),
		NewExpense(t, "3", "Netflix Subscription", "15.99", expense.Entertainment, "2025-10-20", expense.CreditCard),
		NewExpense(t, "4", "Restaurant Dinner", "85.30", expense.Food, "2025-10-18", expense.CreditCard),
		NewExpense(t, "5", "Gym Membership", "50.00", expense.Health, "2025-10-15", expense.BankTransfer),
		NewExpense(t, "6", "Book Purchase", "24.99", expense.Education, "2025-10-12", expense.CreditCard),
		NewExpense(t, "7", "Electricity Bill", "120.00", expense.Utilities, "2025-09-28", expense.BankTransfer),
		NewExpense(t, "8", "Movie Tickets", "30.00", expense.Entertainment, "2025-09-15", expense.CreditCard),
	}
}

// IDs returns the ids of records in order.
func IDs(records []expense.Expense) []string {
	ids := make([]string, len(records))
	for i, e := range records {
		ids[i] = e.ID()
	}
	return ids
}

// Now is a fixed clock the day after the newest dashboard expense.
var Now = time.Date(2025, time.October, 26, 9, 30, 0, 0, time.UTC)
