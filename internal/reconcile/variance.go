package reconcile

import (
	"github.com/shopspring/decimal"
)

// VarianceTag classifies counted minus expected.
type VarianceTag int

const (
	Exacto VarianceTag = iota
	Sobrante
	Faltante
)

func (t VarianceTag) String() string {
	switch t {
	case Sobrante:
		return "Sobrante"
	case Faltante:
		return "Faltante"
	default:
		return "Exacto"
	}
}

// Variance returns counted − expected and its classification: positive is
// surplus, negative is shortfall, zero is exact.
func Variance(counted, expected decimal.Decimal) (decimal.Decimal, VarianceTag) {
	diff := counted.Sub(expected)
	switch diff.Sign() {
	case 1:
		return diff, Sobrante
	case -1:
		return diff, Faltante
	default:
		return diff, Exacto
	}
}
