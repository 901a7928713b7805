package importutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/GustavoCaso/expensetrack/internal/category"
	"github.com/GustavoCaso/expensetrack/internal/expense"
	"github.com/GustavoCaso/expensetrack/internal/ledger"
)

func newTestMapper(t *testing.T) *Mapper {
	t.Helper()

	matcher, err := category.NewMatcher(category.DefaultRules)
	if err != nil {
		t.Fatalf("NewMatcher failed: %v", err)
	}
	return NewMapper(matcher, ledger.NewSequenceGenerator(100))
}

func TestNewFieldMapping(t *testing.T) {
	m, err := NewFieldMapping([]string{"Date", " AMOUNT ", "Description", "Payment Method"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := FieldMapping{ID: -1, Description: 2, Amount: 1, Category: -1, Date: 0, PaymentMethod: 3}
	if m != want {
		t.Errorf("NewFieldMapping() = %+v, want %+v", m, want)
	}

	_, err = NewFieldMapping([]string{"description", "category"})
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	for _, column := range []string{ColumnAmount, ColumnDate, ColumnPaymentMethod} {
		if !strings.Contains(err.Error(), column) {
			t.Errorf("error %q does not mention %s", err, column)
		}
	}
}

func TestLoad(t *testing.T) {
	csvData := `id,description,amount,category,date,payment_method
a1,Grocery Shopping,125.50,Food,2025-10-25,Credit Card
,Gas,"45,00",,2025-10-24,debit_card
,Gift,10.00,Gifts,2025-10-20,Cash
,Broken amount,abc,Food,2025-10-20,Cash
,Bad date,1.00,Food,25/10/2025,Cash
,Bad payment,1.00,Food,2025-10-20,Cheque
,,1.00,Food,2025-10-20,Cash`

	result, err := newTestMapper(t).Load("expenses.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(result.Expenses) != 3 {
		t.Fatalf("Expected 3 expenses, got %d", len(result.Expenses))
	}

	tests := []struct {
		id       string
		amount   int64
		category expense.Category
		method   expense.PaymentMethod
	}{
		{id: "a1", amount: 12550, category: expense.Food, method: expense.CreditCard},
		{id: "101", amount: 4500, category: expense.Transportation, method: expense.DebitCard},
		{id: "102", amount: 1000, category: expense.Other, method: expense.Cash},
	}

	for i, tt := range tests {
		got := result.Expenses[i]
		if got.ID() != tt.id {
			t.Errorf("Expenses[%d].ID() = %q, want %q", i, got.ID(), tt.id)
		}
		if got.Amount() != tt.amount {
			t.Errorf("Expenses[%d].Amount() = %d, want %d", i, got.Amount(), tt.amount)
		}
		if got.Category() != tt.category {
			t.Errorf("Expenses[%d].Category() = %q, want %q", i, got.Category(), tt.category)
		}
		if got.PaymentMethod() != tt.method {
			t.Errorf("Expenses[%d].PaymentMethod() = %q, want %q", i, got.PaymentMethod(), tt.method)
		}
	}

	wantErrors := []struct {
		row int
		err error
	}{
		{row: 4, err: expense.ErrInvalidAmount},
		{row: 5, err: expense.ErrInvalidDate},
		{row: 6, err: expense.ErrUnknownPaymentMethod},
		{row: 7, err: nil},
	}

	if len(result.Errors) != len(wantErrors) {
		t.Fatalf("Expected %d row errors, got %d: %v", len(wantErrors), len(result.Errors), result.Errors)
	}

	for i, want := range wantErrors {
		got := result.Errors[i]
		if got.Row != want.row {
			t.Errorf("Errors[%d].Row = %d, want %d", i, got.Row, want.row)
		}
		if want.err != nil && !errors.Is(got, want.err) {
			t.Errorf("Errors[%d] = %v, want %v", i, got, want.err)
		}
	}

	if result.Err() == nil {
		t.Error("Err() should join the row errors")
	}
}

func TestLoadJSON(t *testing.T) {
	jsonData := `[{"description": "Netflix Subscription", "amount": 15.99, "date": "2025-10-20", "payment_method": "Credit Card"}]`

	result, err := newTestMapper(t).Load("expenses.json", strings.NewReader(jsonData))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if result.Err() != nil {
		t.Fatalf("unexpected row errors: %v", result.Err())
	}

	got := result.Expenses[0]
	if got.Amount() != 1599 || got.Category() != expense.Entertainment || got.ID() != "101" {
		t.Errorf("unexpected expense %q %d %q", got.ID(), got.Amount(), got.Category())
	}
}

func TestLoadMissingColumns(t *testing.T) {
	_, err := newTestMapper(t).Load("expenses.csv", strings.NewReader("description,amount\nGas,1.00"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("expected ErrMissingColumn, got %v", err)
	}
}

func TestLoadDuplicateIDs(t *testing.T) {
	csvData := `id,description,amount,date,payment_method
a1,Coffee,3.50,2025-10-25,Cash
a2,Lunch,12.00,2025-10-25,Cash
a1,Dinner,30.00,2025-10-25,Cash
,Snack,2.00,2025-10-25,Cash`

	result, err := newTestMapper(t).Load("expenses.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(result.Expenses) != 3 {
		t.Fatalf("Expected 3 expenses, got %d", len(result.Expenses))
	}

	wantIDs := []string{"a1", "a2", "101"}
	for i, id := range wantIDs {
		if result.Expenses[i].ID() != id {
			t.Errorf("Expenses[%d].ID() = %q, want %q", i, result.Expenses[i].ID(), id)
		}
	}

	if result.Expenses[0].Description() != "Coffee" {
		t.Errorf("first a1 should be kept, got %q", result.Expenses[0].Description())
	}

	if len(result.Errors) != 1 {
		t.Fatalf("Expected 1 row error, got %d: %v", len(result.Errors), result.Errors)
	}

	got := result.Errors[0]
	if got.Row != 3 {
		t.Errorf("Errors[0].Row = %d, want 3", got.Row)
	}
	if !errors.Is(got, ErrDuplicateID) {
		t.Errorf("Errors[0] = %v, want ErrDuplicateID", got)
	}
}

func TestSample(t *testing.T) {
	records := Sample()

	if len(records) != 8 {
		t.Fatalf("Expected 8 records, got %d", len(records))
	}

	var total int64
	for i, r := range records {
		if err := r.Draft().Validate(); err != nil {
			t.Errorf("record %d invalid: %v", i, err)
		}
		total += r.Amount()
	}

	if records[0].ID() != "1" || records[7].ID() != "8" {
		t.Errorf("ids = %q..%q, want 1..8", records[0].ID(), records[7].ID())
	}

	if total != 49678 {
		t.Errorf("total = %d, want 49678", total)
	}

	for i := 1; i < len(records); i++ {
		if records[i].Date().After(records[i-1].Date()) {
			t.Errorf("records[%d] (%s) is newer than records[%d] (%s)", i, records[i].Date().Format("2006-01-02"), i-1, records[i-1].Date().Format("2006-01-02"))
		}
	}

	if records[6].MonthKey() != "2025-09" {
		t.Errorf("records[6].MonthKey() = %q, want 2025-09", records[6].MonthKey())
	}
}
