package orbrowser

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		unit PriceUnit
		want string
	}{
		{"dollars per million", "0.00000025", Dollars, "$0.25"},
		{"cents per million", "0.00000025", Cents, "¢25.00"},
		{"dollars whole", "0.000015", Dollars, "$15.00"},
		{"free model", "0", Dollars, "$0.00"},
		{"empty", "", Dollars, NA},
		{"garbage", "not-a-price", Dollars, NA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.raw, tt.unit))
		})
	}
}

func TestFormatPriceExactScaling(t *testing.T) {
	// Decimal math, no float drift: a price that would wobble through
	// float64 still lands on exactly two decimals.
	assert.Equal(t, "$0.10", FormatPrice("0.0000001", Dollars))
	assert.Equal(t, "¢10.00", FormatPrice("0.0000001", Cents))
}

func TestPriceUnitNamed(t *testing.T) {
	unit, err := PriceUnitNamed("dollars")
	require.NoError(t, err)
	assert.Equal(t, "$", unit.Symbol)

	unit, err = PriceUnitNamed("cents")
	require.NoError(t, err)
	assert.Equal(t, "¢", unit.Symbol)

	unit, err = PriceUnitNamed("")
	require.NoError(t, err)
	assert.Equal(t, "$", unit.Symbol)

	_, err = PriceUnitNamed("euros")
	assert.Error(t, err)
}

func TestFormatTimestamp(t *testing.T) {
	got := FormatTimestamp(1700000000)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), got)

	assert.Equal(t, NA, FormatTimestamp(0))
	assert.Equal(t, NA, FormatTimestamp(-5))
}

func TestFormatTokens(t *testing.T) {
	assert.Equal(t, "131072 | 131k", FormatTokens(131072, true))
	assert.Equal(t, "500 | 0k", FormatTokens(500, true))
	assert.Equal(t, "131072", FormatTokens(131072, false))
	assert.Equal(t, NA, FormatTokens(0, true))
	assert.Equal(t, NA, FormatTokens(0, false))
}
