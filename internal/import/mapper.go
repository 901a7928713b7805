package importutil

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/GustavoCaso/expensetrack/internal/category"
	"github.com/GustavoCaso/expensetrack/internal/expense"
	"github.com/GustavoCaso/expensetrack/internal/ledger"
)

// Column names recognised in input files. Matching ignores case and
// surrounding whitespace, and spaces match underscores.
const (
	ColumnID            = "id"
	ColumnDescription   = "description"
	ColumnAmount        = "amount"
	ColumnCategory      = "category"
	ColumnDate          = "date"
	ColumnPaymentMethod = "payment_method"
)

var requiredColumns = []string{
	ColumnDescription,
	ColumnAmount,
	ColumnDate,
	ColumnPaymentMethod,
}

var (
	ErrMissingColumn = errors.New("missing column")
	ErrDuplicateID   = errors.New("duplicate id")
)

// FieldMapping holds the index of each known column, -1 when absent.
type FieldMapping struct {
	ID            int
	Description   int
	Amount        int
	Category      int
	Date          int
	PaymentMethod int
}

// RowError is a problem with a single data row. Row is 1-based and does not
// count the header.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// MappingResult contains the expenses built from valid rows and the errors
// of the rejected ones.
type MappingResult struct {
	Expenses []expense.Expense
	Errors   []RowError
}

// Err joins every row error, or returns nil when all rows were valid.
func (r *MappingResult) Err() error {
	errs := make([]error, len(r.Errors))
	for i, err := range r.Errors {
		errs[i] = err
	}
	return errors.Join(errs...)
}

// NewFieldMapping locates the known columns in headers.
func NewFieldMapping(headers []string) (FieldMapping, error) {
	index := map[string]int{}
	for i, h := range headers {
		name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	column := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		return -1
	}

	m := FieldMapping{
		ID:            column(ColumnID),
		Description:   column(ColumnDescription),
		Amount:        column(ColumnAmount),
		Category:      column(ColumnCategory),
		Date:          column(ColumnDate),
		PaymentMethod: column(ColumnPaymentMethod),
	}

	var errs []error
	for _, name := range requiredColumns {
		if column(name) < 0 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingColumn, name))
		}
	}

	return m, errors.Join(errs...)
}

// Mapper turns parsed rows into expenses.
type Mapper struct {
	matcher *category.Matcher
	ids     ledger.IDGenerator
}

// NewMapper returns a mapper that guesses missing categories with matcher
// and assigns ids with ids when the file has none.
func NewMapper(matcher *category.Matcher, ids ledger.IDGenerator) *Mapper {
	return &Mapper{
		matcher: matcher,
		ids:     ids,
	}
}

// Load parses the file and maps its rows.
func (m *Mapper) Load(filename string, reader io.Reader) (*MappingResult, error) {
	data, err := ParseFile(filename, reader)
	if err != nil {
		return nil, err
	}
	return m.Apply(data)
}

// Apply maps every row of data. Invalid rows are collected in the result
// and never stop the import.
func (m *Mapper) Apply(data *ParsedData) (*MappingResult, error) {
	mapping, err := NewFieldMapping(data.Headers)
	if err != nil {
		return nil, fmt.Errorf("invalid headers: %w", err)
	}

	result := &MappingResult{
		Expenses: make([]expense.Expense, 0, len(data.Rows)),
		Errors:   make([]RowError, 0),
	}

	seen := make(map[string]int, len(data.Rows))
	for i, row := range data.Rows {
		e, err := m.mapRow(row, mapping)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: i + 1, Err: err})
			continue
		}
		if first, ok := seen[e.ID()]; ok {
			result.Errors = append(result.Errors, RowError{
				Row: i + 1,
				Err: fmt.Errorf("%w %q, first used in row %d", ErrDuplicateID, e.ID(), first),
			})
			continue
		}
		seen[e.ID()] = i + 1
		result.Expenses = append(result.Expenses, e)
	}

	return result, nil
}

func (m *Mapper) mapRow(row []string, mapping FieldMapping) (expense.Expense, error) {
	field := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	description := field(mapping.Description)
	if description == "" {
		return expense.Expense{}, errors.New("description is required")
	}

	amount, err := expense.ParseAmount(field(mapping.Amount))
	if err != nil {
		return expense.Expense{}, err
	}

	date, err := expense.ParseDate(field(mapping.Date))
	if err != nil {
		return expense.Expense{}, err
	}

	method, err := expense.ParsePaymentMethod(field(mapping.PaymentMethod))
	if err != nil {
		return expense.Expense{}, err
	}

	c, err := expense.ParseCategory(field(mapping.Category))
	if err != nil {
		c = m.matcher.MatchOrOther(description)
	}

	id := field(mapping.ID)
	if id == "" {
		id = m.ids.NewID()
	}

	return expense.New(id, expense.Draft{
		Description:   description,
		Amount:        amount,
		Category:      c,
		Date:          date,
		PaymentMethod: method,
	}), nil
}
