package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/kwenta/futures-data-watcher/api"
	"github.com/kwenta/futures-data-watcher/common/config"
	cerrors "github.com/kwenta/futures-data-watcher/common/errors"
	"github.com/kwenta/futures-data-watcher/common/logging"
	"github.com/kwenta/futures-data-watcher/futures"
	"github.com/kwenta/futures-data-watcher/graph"
	"github.com/kwenta/futures-data-watcher/network"
	"github.com/kwenta/futures-data-watcher/onchain"
)

func main() {
	name := "futures-watcher"
	// Initialize logger.
	logging.Initialize(name)
	defer logging.Finalize()

	logger := logging.NewLoggerTag(name)

	// Setup panic handler.
	cerrors.Initialize(logger)
	defer cerrors.Catch()

	logger.Info("%s service started.", name)
	logger.Info("Initializing.")

	backgroundCtx, stop := context.WithCancel(context.Background())
	go WaitExitSignal(stop, logger)
	group, ctx := errgroup.WithContext(backgroundCtx)

	networkCfg := network.DefaultConfig()
	networkID := network.ID(config.GetInt64("NETWORK_ID", int64(networkCfg.DefaultNetwork)))
	graphURL := config.GetString("FUTURES_GRAPH_URL", networkCfg.EndpointFor(networkID))
	graphClient := graph.NewClient(logger, graphURL)

	var sizes futures.MarketSizesSource
	rpcURL := config.GetString("L2_RPC_URL", "")
	if rpcURL != "" {
		ethClient, err := onchain.NewClient(logger, rpcURL, ctx)
		if err != nil {
			logger.Error("onchain client fail:%s", err)
			os.Exit(-3)
		}
		if ts, err := ethClient.LatestBlockTimestamp(); err != nil {
			logger.Warn("fail to get chain head timestamp err=%s", err)
		} else {
			logger.Info("chain head timestamp %d", ts)
		}
		sizes = onchain.NewRegistry(logger, ethClient, parseMarketContracts(
			config.GetString("MARKET_CONTRACTS", "")))
	} else {
		logger.Warn("L2_RPC_URL not set, open interest disabled")
	}

	server := api.NewServer(ctx, logger, config.GetString("API_ADDRESS", ":9487"),
		graphClient, sizes)
	group.Go(func() error {
		return server.Run()
	})

	if err := group.Wait(); err != nil {
		logger.Critical("service stopped: %s", err)
	}
}

// parseMarketContracts parses "FuturesMarketBTC=0x…,FuturesMarketETH=0x…"
// into a contract address table.
func parseMarketContracts(raw string) map[string]common.Address {
	contracts := make(map[string]common.Address)
	if raw == "" {
		return contracts
	}
	for _, entry := range strings.Split(raw, ",") {
		pair := strings.SplitN(strings.TrimSpace(entry), "=", 2)
		if len(pair) != 2 {
			continue
		}
		contracts[pair[0]] = common.HexToAddress(pair[1])
	}
	return contracts
}

func WaitExitSignal(ctxStop context.CancelFunc, logger logging.Logger) {
	var exitSignal = make(chan os.Signal, 1)
	signal.Notify(exitSignal, syscall.SIGTERM)
	signal.Notify(exitSignal, syscall.SIGINT)

	sig := <-exitSignal
	logger.Info("caught sig: %+v, Stopping...\n", sig)
	ctxStop()
}
