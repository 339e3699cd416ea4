package futures

import (
	"github.com/shopspring/decimal"

	"github.com/kwenta/futures-data-watcher/graph"
)

// VolumeStat is the accumulated volume and trade count of one asset.
type VolumeStat struct {
	Volume decimal.Decimal `json:"volume"`
	Trades int64           `json:"trades"`
}

// Volumes maps asset symbols to their accumulated stats.
type Volumes map[string]VolumeStat

// DailyStats is the total volume and trade count over a day.
type DailyStats struct {
	TotalVolume decimal.Decimal `json:"totalVolume"`
	TotalTrades int64           `json:"totalTrades"`
}

// CalculateVolumes reduces hourly stat rows into per-asset volume and trade
// totals.
func CalculateVolumes(rows []graph.HourlyStatResult) Volumes {
	volumes := make(Volumes, len(rows))
	for _, row := range rows {
		asset := DecodeAssetSymbol(row.Asset)
		acc := volumes[asset]
		acc.Volume = acc.Volume.Add(FromWei(row.Volume))
		acc.Trades += row.Trades.IntPart()
		volumes[asset] = acc
	}
	return volumes
}

// CalculateDailyTradeStats reduces one-minute stat rows into a daily total.
func CalculateDailyTradeStats(rows []graph.OneMinStatResult) DailyStats {
	stats := DailyStats{TotalVolume: decimal.Zero}
	for _, row := range rows {
		stats.TotalVolume = stats.TotalVolume.Add(FromWei(row.Volume).Abs())
		stats.TotalTrades += row.Trades.IntPart()
	}
	return stats
}

// CalculateSynthVolumes totals exchange volume in USD per source synth.
// Rows without a source synth are skipped.
func CalculateSynthVolumes(rows []graph.SynthExchangeResult) map[string]decimal.Decimal {
	volumes := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		if row.FromSynth == nil || row.FromSynth.Symbol == "" {
			continue
		}
		symbol := row.FromSynth.Symbol
		volumes[symbol] = volumes[symbol].Add(row.FromAmountInUSD)
	}
	return volumes
}
