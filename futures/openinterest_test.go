package futures

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSizesSource map[string]MarketSizes

func (f fakeSizesSource) MarketSizes(asset string) (MarketSizes, error) {
	sizes, ok := f[asset]
	if !ok {
		return MarketSizes{}, fmt.Errorf("FuturesMarket%s for %s does not exist", asset, asset)
	}
	return sizes, nil
}

func TestMapOpenInterestRatios(t *testing.T) {
	src := fakeSizesSource{
		"sBoth":  {Long: rawWei(3), Short: rawWei(1)},
		"sEmpty": {Long: decimal.Zero, Short: decimal.Zero},
		"sLong":  {Long: rawWei(10), Short: decimal.Zero},
		"sShort": {Long: decimal.Zero, Short: rawWei(10)},
	}
	oi := MapOpenInterest([]string{"sBoth", "sEmpty", "sLong", "sShort"}, src)
	require.Len(t, oi, 4)

	byAsset := make(map[string]OpenInterestRatio)
	for _, o := range oi {
		byAsset[o.Asset] = o.Ratio
	}

	assert.True(t, byAsset["sBoth"].Long.Equal(decimal.NewFromFloat(0.75)))
	assert.True(t, byAsset["sBoth"].Short.Equal(decimal.NewFromFloat(0.25)))
	assert.True(t, byAsset["sEmpty"].Long.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, byAsset["sEmpty"].Short.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, byAsset["sLong"].Long.Equal(decimal.NewFromInt(1)))
	assert.True(t, byAsset["sLong"].Short.IsZero())
	assert.True(t, byAsset["sShort"].Long.IsZero())
	assert.True(t, byAsset["sShort"].Short.Equal(decimal.NewFromInt(1)))
}

func TestMapOpenInterestRatioSumsToOne(t *testing.T) {
	// sizes chosen so the division does not terminate
	src := fakeSizesSource{
		"sOdd": {Long: rawWei(1), Short: rawWei(2)},
	}
	oi := MapOpenInterest([]string{"sOdd"}, src)
	require.Len(t, oi, 1)
	sum := oi[0].Ratio.Long.Add(oi[0].Ratio.Short)
	assert.True(t, sum.Equal(decimal.NewFromInt(1)), "ratio sum %s", sum)
}

func TestMapOpenInterestSkipsUnknownAssets(t *testing.T) {
	src := fakeSizesSource{
		"sETH": {Long: rawWei(1), Short: rawWei(1)},
	}
	oi := MapOpenInterest([]string{"sMISSING", "sETH"}, src)
	require.Len(t, oi, 1)
	assert.Equal(t, "sETH", oi[0].Asset)
}
