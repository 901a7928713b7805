// Package export writes expenses in formats other tools can read.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

// Header is the first CSV row.
var Header = []string{"ID", "Date", "Description", "Amount", "Category", "Payment Method"}

// CSV exports expenses in the given order, amounts in dollars with two
// decimals and dates as YYYY-MM-DD.
func CSV(writer io.Writer, expenses []expense.Expense) error {
	w := csv.NewWriter(writer)

	records := make([][]string, 0, len(expenses)+1)
	records = append(records, Header)
	for _, e := range expenses {
		records = append(records, expenseToCSVRecord(e))
	}

	// WriteAll flushes
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}

func expenseToCSVRecord(e expense.Expense) []string {
	return []string{
		e.ID(),
		e.Date().Format(expense.DateLayout),
		e.Description(),
		expense.Dollars(e.Amount()).StringFixed(2),
		e.Category().String(),
		e.PaymentMethod().String(),
	}
}

// jsonExpense mirrors the CSV columns with lower case keys that the import
// package reads back.
type jsonExpense struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	Category      string `json:"category"`
	PaymentMethod string `json:"payment_method"`
}

// JSON exports expenses as an indented array of objects.
func JSON(writer io.Writer, expenses []expense.Expense) error {
	out := make([]jsonExpense, 0, len(expenses))
	for _, e := range expenses {
		r := expenseToCSVRecord(e)
		out = append(out, jsonExpense{
			ID:            r[0],
			Date:          r[1],
			Description:   r[2],
			Amount:        r[3],
			Category:      r[4],
			PaymentMethod: r[5],
		})
	}

	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to write JSON records: %w", err)
	}

	return nil
}
