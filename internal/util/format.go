// Package util holds formatting helpers shared by the command line output.
package util

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	centsPerUnit  = 100
	thousandGroup = 1000
)

// FormatMoney renders an amount in cents using the given thousand and
// decimal separators, e.g. 1234567 with "," and "." is "12,345.67".
func FormatMoney(cents int64, thousand, decimalSep string) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	units := cents / centsPerUnit
	groups := []string{}
	for units >= thousandGroup {
		groups = append([]string{fmt.Sprintf("%03d", units%thousandGroup)}, groups...)
		units /= thousandGroup
	}
	groups = append([]string{fmt.Sprintf("%d", units)}, groups...)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(strings.Join(groups, thousand))
	fmt.Fprintf(&b, "%s%02d", decimalSep, cents%centsPerUnit)

	return b.String()
}

// FormatPercent renders a percentage with one decimal and an explicit sign,
// e.g. "+12.5%" or "-3.0%".
func FormatPercent(p float64) string {
	d := decimal.NewFromFloat(p).Round(1)
	if d.IsNegative() {
		return d.StringFixed(1) + "%"
	}
	return "+" + d.StringFixed(1) + "%"
}
