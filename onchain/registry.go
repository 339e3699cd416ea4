package onchain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/kwenta/futures-data-watcher/common/logging"
	"github.com/kwenta/futures-data-watcher/futures"
)

// MarketCaller reads market sizes by contract address.
type MarketCaller interface {
	MarketSizes(market common.Address) (futures.MarketSizes, error)
}

// Registry resolves asset symbols to their FuturesMarket contract and reads
// market sizes through a caller. It implements futures.MarketSizesSource.
type Registry struct {
	logger    logging.Logger
	caller    MarketCaller
	contracts map[string]common.Address
}

// assertSourceInterface
func _() {
	var _ futures.MarketSizesSource = (*Registry)(nil)
}

func NewRegistry(logger logging.Logger, caller MarketCaller, contracts map[string]common.Address) *Registry {
	return &Registry{
		logger:    logger,
		caller:    caller,
		contracts: contracts,
	}
}

// FuturesMarketContract resolves the market contract of an asset. The
// contract name drops the synth prefix: sBTC resolves FuturesMarketBTC.
// Unknown assets are an explicit error, the one surfaced failure of this
// package.
func (r *Registry) FuturesMarketContract(asset string) (common.Address, error) {
	if asset == "" {
		return common.Address{}, fmt.Errorf("asset needs to be specified")
	}
	name := MarketContractName(asset)
	addr, ok := r.contracts[name]
	if !ok {
		return common.Address{}, fmt.Errorf("%s for %s does not exist", name, asset)
	}
	return addr, nil
}

// MarketSizes reads the raw long/short sizes of an asset's market.
func (r *Registry) MarketSizes(asset string) (futures.MarketSizes, error) {
	addr, err := r.FuturesMarketContract(asset)
	if err != nil {
		return futures.MarketSizes{}, err
	}
	return r.caller.MarketSizes(addr)
}

// MarketContractName derives the FuturesMarket contract name of an asset.
func MarketContractName(asset string) string {
	if len(asset) > 0 && asset[0] == 's' {
		asset = asset[1:]
	}
	return "FuturesMarket" + asset
}
