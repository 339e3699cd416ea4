package onchain

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwenta/futures-data-watcher/common/logging"
	"github.com/kwenta/futures-data-watcher/futures"
)

type fakeCaller map[common.Address]futures.MarketSizes

func (f fakeCaller) MarketSizes(market common.Address) (futures.MarketSizes, error) {
	return f[market], nil
}

func TestMarketContractName(t *testing.T) {
	assert.Equal(t, "FuturesMarketETH", MarketContractName("sETH"))
	assert.Equal(t, "FuturesMarketBTC", MarketContractName("sBTC"))
	// assets without the synth prefix pass through
	assert.Equal(t, "FuturesMarketETH", MarketContractName("ETH"))
}

func TestFuturesMarketContract(t *testing.T) {
	logger := logging.NewLoggerTag("test")
	ethMarket := common.HexToAddress("0x0000000000000000000000000000000000000001")
	registry := NewRegistry(logger, fakeCaller{}, map[string]common.Address{
		"FuturesMarketETH": ethMarket,
	})

	addr, err := registry.FuturesMarketContract("sETH")
	require.Nil(t, err)
	assert.Equal(t, ethMarket, addr)

	_, err = registry.FuturesMarketContract("")
	assert.NotNil(t, err)

	_, err = registry.FuturesMarketContract("sDOGE")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "FuturesMarketDOGE")
}

func TestRegistryMarketSizes(t *testing.T) {
	logger := logging.NewLoggerTag("test")
	ethMarket := common.HexToAddress("0x0000000000000000000000000000000000000001")
	caller := fakeCaller{
		ethMarket: {Long: decimal.NewFromInt(3), Short: decimal.NewFromInt(1)},
	}
	registry := NewRegistry(logger, caller, map[string]common.Address{
		"FuturesMarketETH": ethMarket,
	})

	sizes, err := registry.MarketSizes("sETH")
	require.Nil(t, err)
	assert.True(t, sizes.Long.Equal(decimal.NewFromInt(3)))
	assert.True(t, sizes.Short.Equal(decimal.NewFromInt(1)))

	_, err = registry.MarketSizes("sDOGE")
	assert.NotNil(t, err)
}
