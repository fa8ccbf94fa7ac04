package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"50", "50"},
		{" 12.50 ", "12.5"},
		{"0", "0"},
		{"-3.25", "-3.25"},
		{"0.1", "0.1"},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		require.NoError(t, err, "input: %q", tt.input)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "Parse(%q) = %s", tt.input, got)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "12abc", "1,000"} {
		_, err := Parse(input)
		assert.Error(t, err, "expected error for input: %q", input)
	}

	_, err := Parse(" ")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParseOrZero(t *testing.T) {
	assert.True(t, ParseOrZero("abc").IsZero())
	assert.True(t, ParseOrZero("").IsZero())
	assert.True(t, decimal.NewFromInt(1000).Equal(ParseOrZero("1000")))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"1234.5", "$1234.50"},
		{"0.105", "$0.11"},
		{"-200", "-$200.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format("$", decimal.RequireFromString(tt.amount)))
	}
}

func TestDecimalSums(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3 in display and comparison.
	sum := ParseOrZero("0.1").Add(ParseOrZero("0.2"))
	assert.True(t, decimal.RequireFromString("0.3").Equal(sum))
	assert.Equal(t, "0.30", Fixed(sum))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "62.5%", Percent(decimal.RequireFromString("62.5")))
	assert.Equal(t, "0.0%", Percent(decimal.Zero))
}
