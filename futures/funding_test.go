package futures

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(ts int64, funding float64) FundingRateUpdate {
	return FundingRateUpdate{Timestamp: ts, Funding: rawWei(funding)}
}

func TestCalculateFundingRateInsufficientData(t *testing.T) {
	price := decimal.NewFromInt(1000)
	rate := decimal.NewFromFloat(0.0001)

	_, err := CalculateFundingRate(0, 3600, nil, price, rate)
	assert.Equal(t, ErrInsufficientData, err)

	_, err = CalculateFundingRate(0, 3600, []FundingRateUpdate{update(0, 1)}, price, rate)
	assert.Equal(t, ErrInsufficientData, err)
}

func TestCalculateFundingRateUnordered(t *testing.T) {
	price := decimal.NewFromInt(1000)
	updates := []FundingRateUpdate{update(100, 1), update(50, 2)}
	_, err := CalculateFundingRate(0, 3600, updates, price, decimal.Zero)
	assert.Equal(t, ErrUnorderedUpdates, err)

	// duplicate timestamps are rejected as well
	updates = []FundingRateUpdate{update(100, 1), update(100, 2)}
	_, err = CalculateFundingRate(0, 3600, updates, price, decimal.Zero)
	assert.Equal(t, ErrUnorderedUpdates, err)
}

func TestCalculateFundingRateFullWindow(t *testing.T) {
	// two checkpoints spanning the whole window: no extrapolation
	updates := []FundingRateUpdate{update(0, 20), update(3600, 10)}
	price := decimal.NewFromInt(2)

	rate, err := CalculateFundingRate(0, 3600, updates, price, decimal.NewFromInt(999))
	require.Nil(t, err)
	// funding paid = 20 - 10 = 10, rate = 10 / 2
	assert.True(t, rate.Equal(decimal.NewFromInt(5)), "got %s", rate)
}

func TestCalculateFundingRateExtrapolation(t *testing.T) {
	// checkpoints cover 1800s of a 3600s period, remainder comes from the
	// current daily rate scaled by price
	updates := []FundingRateUpdate{update(0, 4), update(1800, 2)}
	price := decimal.NewFromInt(2)
	currentRate := decimal.NewFromFloat(4.32)

	rate, err := CalculateFundingRate(0, 3600, updates, price, currentRate)
	require.Nil(t, err)
	// covered: 4 - 2 = 2; remainder: 4.32 * 1800 / 86400 * 2 = 0.18
	// rate = (2 + 0.18) / 2 = 1.09
	assert.True(t, rate.Equal(decimal.NewFromFloat(1.09)), "got %s", rate)
}

func TestCalculateFundingRateClampsOverlap(t *testing.T) {
	// the window starts halfway into the first pair: only the overlapping
	// half of the funding delta counts
	updates := []FundingRateUpdate{update(0, 10), update(200, 4)}
	price := decimal.NewFromInt(1)

	rate, err := CalculateFundingRate(100, 100, updates, price, decimal.Zero)
	require.Nil(t, err)
	// delta 6 over 200s, overlap 100s -> 3
	assert.True(t, rate.Equal(decimal.NewFromInt(3)), "got %s", rate)
}

func TestCalculateFundingRateZeroPrice(t *testing.T) {
	updates := []FundingRateUpdate{update(0, 20), update(3600, 10)}
	rate, err := CalculateFundingRate(0, 3600, updates, decimal.Zero, decimal.Zero)
	require.Nil(t, err)
	assert.True(t, rate.IsZero())
}
