// Package expense defines the expense record and the closed enumerations
// its fields draw from.
package expense

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidDate          = errors.New("invalid date")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// Draft holds the fields of an expense that has not been assigned an id yet.
type Draft struct {
	Description   string
	Amount        int64 // cents
	Category      Category
	Date          time.Time
	PaymentMethod PaymentMethod
}

// Validate reports the first field that breaks the record invariants.
func (d Draft) Validate() error {
	if d.Amount < 0 {
		return fmt.Errorf("%w: %d cents is negative", ErrInvalidAmount, d.Amount)
	}
	if !d.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, d.Category)
	}
	if !d.PaymentMethod.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, d.PaymentMethod)
	}
	if d.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	return nil
}

// Expense is an immutable expense record. Edits build a new Expense with
// the same id.
type Expense struct {
	id            string
	description   string
	amount        int64
	category      Category
	date          time.Time
	paymentMethod PaymentMethod
}

// New builds an expense with the given id. The date is truncated to its
// calendar day.
func New(id string, d Draft) Expense {
	var date time.Time
	if !d.Date.IsZero() {
		date = Day(d.Date)
	}

	return Expense{
		id:            id,
		description:   d.Description,
		amount:        d.Amount,
		category:      d.Category,
		date:          date,
		paymentMethod: d.PaymentMethod,
	}
}

func (e Expense) ID() string {
	return e.id
}

func (e Expense) Description() string {
	return e.description
}

// Amount returns the amount in cents.
func (e Expense) Amount() int64 {
	return e.amount
}

func (e Expense) Category() Category {
	return e.category
}

func (e Expense) Date() time.Time {
	return e.date
}

func (e Expense) PaymentMethod() PaymentMethod {
	return e.paymentMethod
}

// MonthKey returns the "YYYY-MM" month the expense belongs to.
func (e Expense) MonthKey() string {
	return MonthKey(e.date)
}

// Draft returns the fields of e without its id, ready to be edited.
func (e Expense) Draft() Draft {
	return Draft{
		Description:   e.description,
		Amount:        e.amount,
		Category:      e.category,
		Date:          e.date,
		PaymentMethod: e.paymentMethod,
	}
}

// Equal reports whether both expenses carry the same id and field values.
func (e Expense) Equal(other Expense) bool {
	return e.id == other.id &&
		e.description == other.description &&
		e.amount == other.amount &&
		e.category == other.category &&
		e.date.Equal(other.date) &&
		e.paymentMethod == other.paymentMethod
}
