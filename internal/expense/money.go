package expense

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const centsExponent = 2

// ParseAmount converts a dollar string to cents.
//
// Both "12.34" and "12,34" are accepted. Fractions beyond the cent are
// rounded half up, so "10.999" becomes 1100. Negative values are rejected.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: amount cannot be empty", ErrInvalidAmount)
	}

	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return centsFromDecimal(d)
}

// AmountFromFloat converts a dollar value coming from a float source such as
// a JSON number into cents.
func AmountFromFloat(f float64) (int64, error) {
	return centsFromDecimal(decimal.NewFromFloat(f))
}

func centsFromDecimal(d decimal.Decimal) (int64, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, d.String())
	}
	return d.Shift(centsExponent).Round(0).IntPart(), nil
}

// Dollars returns the exact dollar value of an amount in cents.
func Dollars(cents int64) decimal.Decimal {
	return decimal.New(cents, -centsExponent)
}

// DollarsFloat returns the dollar value rounded to two decimals for widgets
// that expect plain numbers.
func DollarsFloat(cents int64) float64 {
	return Dollars(cents).Round(centsExponent).InexactFloat64()
}
