package onchain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"

	"github.com/kwenta/futures-data-watcher/common/logging"
	"github.com/kwenta/futures-data-watcher/futures"
)

// marketSizesABI covers the single view we call on FuturesMarket contracts.
const marketSizesABI = `[{"constant":true,"inputs":[],"name":"marketSizes","outputs":[{"name":"long","type":"uint256"},{"name":"short","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"}]`

type Client struct {
	client    *ethclient.Client
	logger    logging.Logger
	ctx       context.Context
	url       string
	marketABI abi.ABI
}

func NewClient(logger logging.Logger, rpcURL string, ctx context.Context) (*Client, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("rpcURL is empty")
	}
	logger.Info("New client with rpcUrl=%s", rpcURL)
	c, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, err
	}
	parsed, err := abi.JSON(strings.NewReader(marketSizesABI))
	if err != nil {
		return nil, fmt.Errorf("fail to parse market ABI err=%s", err)
	}
	return &Client{
		client:    c,
		logger:    logger,
		ctx:       ctx,
		url:       rpcURL,
		marketABI: parsed,
	}, nil
}

// MarketSizes calls marketSizes() on a FuturesMarket contract and returns
// the raw 1e18-scaled long and short sizes.
func (c *Client) MarketSizes(market common.Address) (futures.MarketSizes, error) {
	ctx30, cancel := context.WithTimeout(c.ctx, 30*time.Second)
	defer cancel()

	data, err := c.marketABI.Pack("marketSizes")
	if err != nil {
		return futures.MarketSizes{}, fmt.Errorf("fail to pack marketSizes err=%s", err)
	}
	out, err := c.client.CallContract(ctx30, ethereum.CallMsg{To: &market, Data: data}, nil)
	if err != nil {
		return futures.MarketSizes{}, fmt.Errorf(
			"fail to call marketSizes on %s err=%s", market.Hex(), err)
	}

	var sizes struct {
		Long  *big.Int
		Short *big.Int
	}
	if err := c.marketABI.Unpack(&sizes, "marketSizes", out); err != nil {
		return futures.MarketSizes{}, fmt.Errorf(
			"fail to unpack marketSizes of %s err=%s", market.Hex(), err)
	}
	return futures.MarketSizes{
		Long:  decimal.NewFromBigInt(sizes.Long, 0),
		Short: decimal.NewFromBigInt(sizes.Short, 0),
	}, nil
}

// LatestBlockTimestamp returns the timestamp of the chain head.
func (c *Client) LatestBlockTimestamp() (int64, error) {
	ctx30, cancel := context.WithTimeout(c.ctx, 30*time.Second)
	defer cancel()
	header, err := c.client.HeaderByNumber(ctx30, nil)
	if err != nil {
		return -1, fmt.Errorf("fail to get header err=%s", err)
	}
	return int64(header.Time), nil
}
