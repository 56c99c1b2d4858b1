package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatARS renders an amount the way the backend's users read money:
// dot-grouped thousands, comma decimals, two fixed decimal places.
// Negative amounts carry the sign before the symbol: -$1.234,56.
func FormatARS(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return sign + "$" + groupThousands(intPart) + "," + fracPart
}

// FormatNumber renders a plain grouped number without symbol or forced
// decimals: 20000 -> "20.000", 50.5 -> "50,5".
func FormatNumber(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	s := d.String()
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	out := sign + groupThousands(intPart)
	if hasFrac {
		out += "," + fracPart
	}
	return out
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
