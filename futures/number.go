package futures

import (
	"strings"

	"github.com/shopspring/decimal"
)

// On-chain values are integers scaled by 10^18.
const WeiDecimals = 18

// SecondsPerDay normalizes instantaneous funding rates, which the venue
// quotes per day.
const SecondsPerDay int64 = 86400

// FromWei converts a raw 1e18-scaled integer value into its decimal amount.
// The shift is exact, no precision is lost.
func FromWei(raw decimal.Decimal) decimal.Decimal {
	return raw.Shift(-WeiDecimals)
}

// ToWei converts a decimal amount back to its raw 1e18-scaled representation.
func ToWei(d decimal.Decimal) decimal.Decimal {
	return d.Shift(WeiDecimals)
}

// FromWeiString converts a raw decimal-string integer into its decimal amount.
func FromWeiString(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return FromWei(d), nil
}

// SafeDiv divides num by den, returning zero when den is zero. Zero
// denominators never propagate as an arithmetic fault.
func SafeDiv(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

// FormatDollars renders d as a currency display string, e.g. "$1,234.56".
// Display formatting is the only boundary where precision may be rounded.
func FormatDollars(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	parts := strings.SplitN(fixed, ".", 2)
	intPart := parts[0]

	var sb strings.Builder
	if d.IsNegative() {
		sb.WriteByte('-')
	}
	sb.WriteByte('$')
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}
	sb.WriteByte('.')
	sb.WriteString(parts[1])
	return sb.String()
}
