package futures

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromWeiToWeiRoundTrip(t *testing.T) {
	for _, raw := range []string{
		"0",
		"1",
		"1000000000000000000",
		"-2500000000000000000",
		"123456789012345678901234567890",
	} {
		d, err := decimal.NewFromString(raw)
		require.Nil(t, err)
		assert.True(t, ToWei(FromWei(d)).Equal(d), "round trip failed for %s", raw)
	}
}

func TestFromWeiString(t *testing.T) {
	d, err := FromWeiString("1500000000000000000")
	require.Nil(t, err)
	assert.True(t, d.Equal(decimal.NewFromFloat(1.5)))

	_, err = FromWeiString("not-a-number")
	assert.NotNil(t, err)
}

func TestSafeDiv(t *testing.T) {
	assert.True(t, SafeDiv(decimal.NewFromInt(10), decimal.Zero).IsZero())
	assert.True(t, SafeDiv(decimal.Zero, decimal.Zero).IsZero())
	assert.True(t, SafeDiv(decimal.NewFromInt(10), decimal.NewFromInt(4)).
		Equal(decimal.NewFromFloat(2.5)))
}

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "$0.00", FormatDollars(decimal.Zero))
	assert.Equal(t, "$0.50", FormatDollars(decimal.NewFromFloat(0.5)))
	assert.Equal(t, "$1,234.50", FormatDollars(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "$1,000,000.00", FormatDollars(decimal.NewFromInt(1000000)))
	assert.Equal(t, "$999.99", FormatDollars(decimal.NewFromFloat(999.99)))
	assert.Equal(t, "-$12.34", FormatDollars(decimal.NewFromFloat(-12.34)))
}
