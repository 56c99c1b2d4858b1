package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCountTotal(t *testing.T) {
	c := NewCount()
	c.SetBills(20000, 1)
	c.SetBills(2000, 1)
	c.SetResto(decimal.NewFromInt(50))

	assert.True(t, c.Total().Equal(decimal.NewFromInt(22050)),
		"Total() = %s, want 22050", c.Total())
}

func TestCountClampsNegatives(t *testing.T) {
	c := NewCount()

	c.SetBills(10000, -3)
	assert.Equal(t, 0, c.Bills(10000))

	c.Decrement(1000)
	assert.Equal(t, 0, c.Bills(1000))

	c.SetResto(decimal.NewFromInt(-200))
	assert.True(t, c.Resto().IsZero())
}

func TestCountIgnoresUnknownDenomination(t *testing.T) {
	c := NewCount()
	c.SetBills(500, 7)

	assert.Equal(t, 0, c.Bills(500))
	assert.True(t, c.Total().IsZero())
}

func TestCountIncrementDecrement(t *testing.T) {
	c := NewCount()
	c.Increment(20000)
	c.Increment(20000)
	c.Decrement(20000)

	assert.Equal(t, 1, c.Bills(20000))
	assert.True(t, c.Total().Equal(decimal.NewFromInt(20000)))
}

func TestBreakdownListsEveryDenomination(t *testing.T) {
	c := NewCount()
	c.SetBills(20000, 1)
	c.SetBills(2000, 1)
	c.SetResto(decimal.NewFromInt(50))

	want := "$20.000 × 1 + $10.000 × 0 + $2.000 × 1 + $1.000 × 0 + Resto $50 = $22.050,00"
	assert.Equal(t, want, c.Breakdown())
}

func TestBreakdownOmitsZeroResto(t *testing.T) {
	c := NewCount()
	c.SetBills(1000, 2)

	assert.NotContains(t, c.Breakdown(), "Resto")
	assert.Contains(t, c.Breakdown(), "= $2.000,00")
}

func TestBreakdownIsIdempotent(t *testing.T) {
	c := NewCount()
	c.SetBills(10000, 3)
	c.SetResto(decimal.RequireFromString("120.50"))

	first := c.Breakdown()
	second := c.Breakdown()
	assert.Equal(t, first, second)
	assert.True(t, c.Total().Equal(decimal.RequireFromString("30120.50")))
}
