// Package reconcile computes the counted cash total from denomination
// counts and classifies the variance against the expected balance. Pure
// calculation: nothing here touches persisted state.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cajafuerte/arqueo/internal/models"
)

// Denominations handled as bill counts, highest first. Smaller bills and
// coins go into the Resto bucket as a raw amount.
var Denominations = []int64{20000, 10000, 2000, 1000}

// Count maps denominations to how many bills were counted, plus the resto
// amount. Counts never go below zero.
type Count struct {
	bills map[int64]int
	resto decimal.Decimal
}

// NewCount returns an empty count.
func NewCount() *Count {
	bills := make(map[int64]int, len(Denominations))
	for _, d := range Denominations {
		bills[d] = 0
	}
	return &Count{bills: bills}
}

// Bills returns the count for a denomination.
func (c *Count) Bills(denomination int64) int {
	return c.bills[denomination]
}

// SetBills sets the count for a denomination, clamped at zero. Unknown
// denominations are ignored.
func (c *Count) SetBills(denomination int64, n int) {
	if _, ok := c.bills[denomination]; !ok {
		return
	}
	if n < 0 {
		n = 0
	}
	c.bills[denomination] = n
}

// Increment adds one bill of the denomination.
func (c *Count) Increment(denomination int64) {
	c.SetBills(denomination, c.bills[denomination]+1)
}

// Decrement removes one bill of the denomination, stopping at zero.
func (c *Count) Decrement(denomination int64) {
	c.SetBills(denomination, c.bills[denomination]-1)
}

// Resto returns the catch-all bucket amount.
func (c *Count) Resto() decimal.Decimal {
	return c.resto
}

// SetResto sets the catch-all bucket, clamped at zero.
func (c *Count) SetResto(amount decimal.Decimal) {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	c.resto = amount
}

// Total returns the counted total: denomination value times count for each
// bill, plus the resto amount.
func (c *Count) Total() decimal.Decimal {
	total := c.resto
	for _, d := range Denominations {
		total = total.Add(decimal.NewFromInt(d).Mul(decimal.NewFromInt(int64(c.bills[d]))))
	}
	return total
}

// Breakdown renders the counting formula in fixed order: every
// denomination highest first, resto last when present, then the total.
// Recomputing with unchanged counts yields the same string.
func (c *Count) Breakdown() string {
	parts := make([]string, 0, len(Denominations)+1)
	for _, d := range Denominations {
		parts = append(parts, fmt.Sprintf("$%s × %d", models.FormatNumber(decimal.NewFromInt(d)), c.bills[d]))
	}
	if c.resto.IsPositive() {
		parts = append(parts, "Resto $"+models.FormatNumber(c.resto))
	}
	return strings.Join(parts, " + ") + " = " + models.FormatARS(c.Total())
}
