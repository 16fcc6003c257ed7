package orbrowser

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// NA is the sentinel shown for missing or malformed field values.
const NA = "N/A"

// PriceUnit controls how per-token price strings are rescaled for
// display. The API reports dollars per token; the table historically
// showed either dollars or cents per million tokens.
type PriceUnit struct {
	Symbol string
	scale  decimal.Decimal
}

var (
	// Dollars renders prices as dollars per million tokens.
	Dollars = PriceUnit{Symbol: "$", scale: decimal.NewFromInt(1_000_000)}
	// Cents renders prices as cents per million tokens.
	Cents = PriceUnit{Symbol: "¢", scale: decimal.NewFromInt(100_000_000)}
)

// PriceUnitNamed maps a configuration name to a PriceUnit.
func PriceUnitNamed(name string) (PriceUnit, error) {
	switch name {
	case "dollars", "":
		return Dollars, nil
	case "cents":
		return Cents, nil
	default:
		return PriceUnit{}, fmt.Errorf("unknown price unit %q (want dollars or cents)", name)
	}
}

// FormatPrice rescales a per-token price string to a per-million-tokens
// figure with two decimal places and a currency symbol prefix. Empty or
// non-numeric input yields NA.
func FormatPrice(raw string, unit PriceUnit) string {
	if raw == "" {
		return NA
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return NA
	}
	return unit.Symbol + price.Mul(unit.scale).StringFixed(2)
}

// FormatTimestamp renders a Unix epoch as a local YYYY-MM-DD date.
// Zero or negative input yields NA.
func FormatTimestamp(ts int64) string {
	if ts <= 0 {
		return NA
	}
	return time.Unix(ts, 0).Format("2006-01-02")
}

// FormatTokens renders a token count. With split enabled the count is
// doubled up with its truncated thousands value, e.g. "131072 | 131k",
// which keeps the exact number copyable while staying readable. Zero
// input yields NA.
func FormatTokens(count int64, split bool) string {
	if count == 0 {
		return NA
	}
	if !split {
		return strconv.FormatInt(count, 10)
	}
	return fmt.Sprintf("%d | %dk", count, count/1000)
}
