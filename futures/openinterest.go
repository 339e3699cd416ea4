package futures

import "github.com/shopspring/decimal"

// MarketSizes holds a market's raw 1e18-scaled long and short notional
// sizes.
type MarketSizes struct {
	Long  decimal.Decimal
	Short decimal.Decimal
}

// MarketSizesSource reads per-market long/short sizes, typically from the
// market contract on chain.
type MarketSizesSource interface {
	MarketSizes(asset string) (MarketSizes, error)
}

var half = decimal.NewFromFloat(0.5)

// MapOpenInterest computes the long/short open-interest ratio per asset.
// The batch is best-effort: assets whose sizes cannot be read are skipped,
// never reported as an error. Each emitted ratio sums to exactly 1.
func MapOpenInterest(assets []string, src MarketSizesSource) []OpenInterest {
	openInterest := make([]OpenInterest, 0, len(assets))
	for _, asset := range assets {
		sizes, err := src.MarketSizes(asset)
		if err != nil {
			continue
		}
		longSize := FromWei(sizes.Long)
		shortSize := FromWei(sizes.Short)

		var ratio OpenInterestRatio
		switch {
		case shortSize.IsZero() && longSize.IsZero():
			ratio = OpenInterestRatio{Long: half, Short: half}
		case shortSize.IsZero():
			ratio = OpenInterestRatio{Long: decimal.NewFromInt(1), Short: decimal.Zero}
		case longSize.IsZero():
			ratio = OpenInterestRatio{Long: decimal.Zero, Short: decimal.NewFromInt(1)}
		default:
			combined := shortSize.Add(longSize)
			long := longSize.Div(combined)
			// derive the short share from the long share so the two sum to
			// exactly 1 after division rounding
			ratio = OpenInterestRatio{Long: long, Short: decimal.NewFromInt(1).Sub(long)}
		}
		openInterest = append(openInterest, OpenInterest{Asset: asset, Ratio: ratio})
	}
	return openInterest
}
