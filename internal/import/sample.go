package importutil

import (
	"time"

	"github.com/GustavoCaso/expensetrack/internal/expense"
	"github.com/GustavoCaso/expensetrack/internal/ledger"
)

type sampleRow struct {
	description string
	cents       int64
	category    expense.Category
	day         int
	month       time.Month
	method      expense.PaymentMethod
}

var sampleRows = []sampleRow{
	{"Grocery Shopping", 12550, expense.Food, 25, time.October, expense.CreditCard},
	{"Gas", 4500, expense.Transportation, 24, time.October, expense.DebitCard},
	{"Netflix Subscription", 1599, expense.Entertainment, 20, time.October, expense.CreditCard},
	{"Restaurant Dinner", 8530, expense.Food, 18, time.October, expense.CreditCard},
	{"Gym Membership", 5000, expense.Health, 15, time.October, expense.BankTransfer},
	{"Book Purchase", 2499, expense.Education, 12, time.October, expense.CreditCard},
	{"Electricity Bill", 12000, expense.Utilities, 28, time.September, expense.BankTransfer},
	{"Movie Tickets", 3000, expense.Entertainment, 15, time.September, expense.CreditCard},
}

// Sample returns eight demo expenses from September and October 2025 with
// ids "1" to "8", newest first.
func Sample() []expense.Expense {
	records := make([]expense.Expense, len(sampleRows))
	ids := ledger.NewSequenceGenerator(0)
	for i, r := range sampleRows {
		records[i] = expense.New(ids.NewID(), expense.Draft{
			Description:   r.description,
			Amount:        r.cents,
			Category:      r.category,
			Date:          expense.NewDate(2025, r.month, r.day),
			PaymentMethod: r.method,
		})
	}
	return records
}
