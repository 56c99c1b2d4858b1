package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a user-typed amount into a decimal. It accepts both
// plain machine notation ("1234.56") and the local convention with dot
// thousands and comma decimals ("1.234,56", "1234,56"). An optional leading
// "$" is ignored.
func ParseAmount(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	normalized := normalizeSeparators(raw)
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// ParsePositiveAmount is ParseAmount restricted to amounts > 0, the rule for
// movement and withdrawal values.
func ParsePositiveAmount(s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}
	return d, nil
}

// normalizeSeparators rewrites local formatting into decimal notation.
// A comma always means the decimal point; dots are decimal only when no
// comma is present and the dot looks like a decimal separator.
func normalizeSeparators(s string) string {
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma:
		// "1.234,56" -> "1234.56"
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case hasDot:
		// A single dot followed by exactly three digits is a thousands
		// separator ("1.234"); anything else is a decimal point.
		if i := strings.LastIndex(s, "."); strings.Count(s, ".") > 1 || len(s)-i-1 == 3 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	return s
}
