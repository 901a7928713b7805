package expense

import (
	"fmt"
	"strings"
)

// Category is one of the fixed expense categories.
type Category string

const (
	Food           Category = "Food"
	Transportation Category = "Transportation"
	Entertainment  Category = "Entertainment"
	Health         Category = "Health"
	Education      Category = "Education"
	Utilities      Category = "Utilities"
	Other          Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{
	Food,
	Transportation,
	Entertainment,
	Health,
	Education,
	Utilities,
	Other,
}

func (c Category) String() string {
	return string(c)
}

// Valid reports whether c belongs to the category enumeration.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory matches s against the known categories ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, known := range Categories {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// PaymentMethod is one of the fixed ways an expense can be paid.
type PaymentMethod string

const (
	CreditCard   PaymentMethod = "Credit Card"
	DebitCard    PaymentMethod = "Debit Card"
	BankTransfer PaymentMethod = "Bank Transfer"
	Cash         PaymentMethod = "Cash"
)

// PaymentMethods lists every payment method in display order.
var PaymentMethods = []PaymentMethod{
	CreditCard,
	DebitCard,
	BankTransfer,
	Cash,
}

func (p PaymentMethod) String() string {
	return string(p)
}

// Valid reports whether p belongs to the payment method enumeration.
func (p PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePaymentMethod matches s against the known payment methods ignoring
// case, surrounding whitespace and the separator used between words, so
// "credit card", "credit_card" and "Credit-Card" all resolve to CreditCard.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	normalized := normalizeWords(s)
	for _, known := range PaymentMethods {
		if strings.EqualFold(normalized, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
}

func normalizeWords(s string) string {
	replacer := strings.NewReplacer("_", " ", "-", " ")
	return strings.Join(strings.Fields(replacer.Replace(s)), " ")
}
