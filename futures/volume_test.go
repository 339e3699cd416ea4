package futures

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwenta/futures-data-watcher/graph"
)

const sBTCBytes32 = "0x7342544300000000000000000000000000000000000000000000000000000000"

func TestCalculateVolumes(t *testing.T) {
	rows := []graph.HourlyStatResult{
		{Asset: sETHBytes32, Volume: rawWei(100), Trades: decimal.NewFromInt(4)},
		{Asset: sETHBytes32, Volume: rawWei(50), Trades: decimal.NewFromInt(1)},
		{Asset: sBTCBytes32, Volume: rawWei(700), Trades: decimal.NewFromInt(2)},
	}
	volumes := CalculateVolumes(rows)
	require.Len(t, volumes, 2)

	assert.True(t, volumes["sETH"].Volume.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, int64(5), volumes["sETH"].Trades)
	assert.True(t, volumes["sBTC"].Volume.Equal(decimal.NewFromInt(700)))
	assert.Equal(t, int64(2), volumes["sBTC"].Trades)
}

func TestCalculateDailyTradeStats(t *testing.T) {
	rows := []graph.OneMinStatResult{
		{Volume: rawWei(10), Trades: decimal.NewFromInt(1)},
		{Volume: rawWei(-5), Trades: decimal.NewFromInt(2)},
	}
	stats := CalculateDailyTradeStats(rows)
	// volumes accumulate as absolute values
	assert.True(t, stats.TotalVolume.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, int64(3), stats.TotalTrades)
}

func TestCalculateSynthVolumes(t *testing.T) {
	rows := []graph.SynthExchangeResult{
		{FromSynth: &graph.SynthResult{Symbol: "sUSD"}, FromAmountInUSD: decimal.NewFromInt(100)},
		{FromSynth: &graph.SynthResult{Symbol: "sUSD"}, FromAmountInUSD: decimal.NewFromInt(50)},
		{FromSynth: &graph.SynthResult{Symbol: "sETH"}, FromAmountInUSD: decimal.NewFromInt(30)},
		{FromSynth: nil, FromAmountInUSD: decimal.NewFromInt(999)},
	}
	volumes := CalculateSynthVolumes(rows)
	require.Len(t, volumes, 2)
	assert.True(t, volumes["sUSD"].Equal(decimal.NewFromInt(150)))
	assert.True(t, volumes["sETH"].Equal(decimal.NewFromInt(30)))
}
