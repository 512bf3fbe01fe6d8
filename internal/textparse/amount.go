// Package textparse extracts monetary values and calendar dates from the
// unstructured strings found in CSV cells and email bodies.
package textparse

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencyReplacer = strings.NewReplacer(
	"$", "",
	"€", "",
	"£", "",
	"¥", "",
	"USD", "",
	"EUR", "",
	"GBP", "",
	",", "",
	" ", "",
	"\t", "",
)

// ParseAmount extracts a non-negative amount from a free-form monetary string.
// Parenthesized values follow the accounting convention (negative), then the
// absolute value is taken; a leading minus is likewise stripped. Returns 0 on
// unparseable input; callers must treat 0 as "skip", not as a real
// zero-amount charge.
func ParseAmount(value string) float64 {
	d, ok := ParseAmountStrict(value)
	if !ok {
		return 0
	}
	f, _ := d.Abs().Float64()
	return f
}

// ParseAmountStrict is the variant that distinguishes "not an amount" from a
// genuine zero. The returned decimal keeps the accounting sign.
func ParseAmountStrict(value string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = currencyReplacer.Replace(s)
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimPrefix(s, "-")
	}
	if s == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}
