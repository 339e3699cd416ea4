package main

import (
	"time"

	"github.com/alexflint/go-arg"

	"github.com/kwenta/futures-data-watcher/common/config"
	"github.com/kwenta/futures-data-watcher/common/logging"
	"github.com/kwenta/futures-data-watcher/futures"
	"github.com/kwenta/futures-data-watcher/graph"
	"github.com/kwenta/futures-data-watcher/network"
)

// args of the diagnostic. Since is RFC3339; it bounds the funding-rate and
// volume windows.
type args struct {
	Network int64  `arg:"--network" default:"10" help:"chain id of the subgraph to check"`
	Account string `arg:"--account" help:"wallet address to query positions and trades for"`
	Market  string `arg:"--market" help:"market contract address for funding rate updates"`
	Since   string `arg:"--since" help:"RFC3339 lower bound for stats windows"`
}

func main() {
	name := "check-subgraph"
	logging.Initialize(name)
	defer logging.Finalize()
	logger := logging.NewLoggerTag(name)

	var a args
	arg.MustParse(&a)

	networkCfg := network.DefaultConfig()
	url := networkCfg.EndpointFor(network.ID(a.Network))
	client := graph.NewClient(logger, url)

	since := time.Now().Unix() - futures.SecondsPerDay
	if a.Since != "" {
		t, err := config.ParseTimeConfig(a.Since)
		if err != nil {
			logger.Error("fail to parse --since %s err=%s", a.Since, err)
			return
		}
		since = t.Unix()
	}

	if a.Account != "" {
		rows, err := client.GetPositions(a.Account)
		if err != nil {
			logger.Error("fail to get positions err=%s", err)
		} else {
			history := futures.MapPositionHistory(rows)
			logger.Info("account %s has %d position rows", a.Account, len(history))
		}

		trades, err := client.GetTrades(a.Account, 1000)
		if err != nil {
			logger.Error("fail to get trades err=%s", err)
		} else {
			logger.Info("account %s has %d trades", a.Account, len(futures.MapTrades(trades)))
		}
	}

	if a.Market != "" {
		updates, err := client.GetFundingRateUpdates(a.Market, since)
		if err != nil {
			logger.Error("fail to get funding rate updates err=%s", err)
		} else {
			logger.Info("market %s has %d funding checkpoints since %d",
				a.Market, len(updates), since)
		}
	}

	stats, err := client.GetHourlyStats(since)
	if err != nil {
		logger.Error("fail to get hourly stats err=%s", err)
		return
	}
	for asset, stat := range futures.CalculateVolumes(stats) {
		logger.Info("asset %s volume %s over %d trades", asset, stat.Volume, stat.Trades)
	}
}
