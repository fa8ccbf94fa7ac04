// Package money parses user-entered amounts and formats them for display.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmpty is returned when an amount string is blank.
var ErrEmpty = errors.New("empty amount")

// Parse reads a decimal amount such as "12", "12.50" or "-3". Surrounding
// whitespace is ignored. Trailing garbage ("12abc") is an error.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrEmpty
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

// ParseOrZero is Parse for numeric inputs that fall back to zero when the
// text is blank or not a number (income, savings goal, draft amounts).
func ParseOrZero(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Fixed formats d with exactly two decimals, rounding half away from zero.
func Fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Format renders d as a currency string like "$1234.50" or "-$20.00".
func Format(symbol string, d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + symbol + Fixed(d.Neg())
	}
	return symbol + Fixed(d)
}

// Percent formats a 0-100 percentage with one decimal, e.g. "62.5%".
func Percent(p decimal.Decimal) string {
	return p.StringFixed(1) + "%"
}
