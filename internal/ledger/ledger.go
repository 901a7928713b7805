// Package ledger applies add, update and delete operations to an expense
// list. Every operation returns a new slice and leaves its input untouched;
// refreshing a filtered view afterwards is the caller's job.
package ledger

import (
	"errors"
	"slices"

	"github.com/GustavoCaso/expensetrack/internal/expense"
)

// ErrNotFound is returned when no record carries the requested id. The
// returned list is then an unchanged copy of the input.
var ErrNotFound = errors.New("expense not found")

// Add assigns a fresh id to draft and prepends the new record, so the list
// stays newest first.
func Add(records []expense.Expense, draft expense.Draft, ids IDGenerator) ([]expense.Expense, expense.Expense) {
	created := expense.New(ids.NewID(), draft)

	updated := make([]expense.Expense, 0, len(records)+1)
	updated = append(updated, created)
	updated = append(updated, records...)

	return updated, created
}

// Update replaces the record sharing replacement's id, keeping its position.
func Update(records []expense.Expense, replacement expense.Expense) ([]expense.Expense, error) {
	updated := slices.Clone(records)

	i := indexOf(updated, replacement.ID())
	if i < 0 {
		return updated, ErrNotFound
	}

	updated[i] = replacement
	return updated, nil
}

// Remove drops the record with the given id.
func Remove(records []expense.Expense, id string) ([]expense.Expense, error) {
	i := indexOf(records, id)
	if i < 0 {
		return slices.Clone(records), ErrNotFound
	}

	updated := make([]expense.Expense, 0, len(records)-1)
	updated = append(updated, records[:i]...)
	updated = append(updated, records[i+1:]...)

	return updated, nil
}

// Find returns the record with the given id.
func Find(records []expense.Expense, id string) (expense.Expense, bool) {
	i := indexOf(records, id)
	if i < 0 {
		return expense.Expense{}, false
	}
	return records[i], true
}

func indexOf(records []expense.Expense, id string) int {
	return slices.IndexFunc(records, func(e expense.Expense) bool {
		return e.ID() == id
	})
}
