package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1234.56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"1234,56", "1234.56"},
		{"1.234", "1234"},
		{"1.234.567", "1234567"},
		{"$ 1.234,56", "1234.56"},
		{"$500", "500"},
		{"0,5", "0.5"},
		{"12.5", "12.5"},
		{"  250  ", "250"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
		})
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "$", "abc", "12a", "1,2,3"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseAmount(input)
			assert.Error(t, err)
		})
	}
}

func TestParsePositiveAmount(t *testing.T) {
	got, err := ParsePositiveAmount("1.500,00")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1500)))

	_, err = ParsePositiveAmount("0")
	assert.Error(t, err)

	_, err = ParsePositiveAmount("-100")
	assert.Error(t, err)
}
