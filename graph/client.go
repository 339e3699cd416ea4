package graph

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kwenta/futures-data-watcher/common/logging"
	utils "github.com/kwenta/futures-data-watcher/utils/http"
)

// The subgraph caps page size at 1000 rows; larger sets are walked with an
// id_gt cursor.
const pageSize = 1000

type Client struct {
	logger logging.Logger
	client *utils.Client
}

func NewClient(logger logging.Logger, url string) *Client {
	logger.Info("New futures graph client with url %s", url)
	return &Client{
		logger: logger,
		client: utils.NewHttpClient(utils.DefaultTransport, logger, url),
	}
}

// queryGraph return err if failed to get response from graph in three times
func (c *Client) queryGraph(resp interface{}, query string, args ...interface{}) error {
	var params struct {
		Query string `json:"query"`
	}
	params.Query = fmt.Sprintf(query, args...)
	for i := 0; i < 3; i++ {
		err, code, res := c.client.Post(nil, params, nil)
		if err != nil {
			c.logger.Error("fail to post http params=%+v err=%s", params, err)
			continue
		} else if code/100 != 2 {
			c.logger.Error("unexpected http params=%+v, response=%v", params, code)
			continue
		}
		err = json.Unmarshal(res, &resp)
		if err != nil {
			c.logger.Error("fail to unmarshal result=%+v, err=%s", res, err)
			continue
		}
		// success
		return nil
	}
	return errors.New("fail to query futures graph in three times")
}

// GetPositions gets all futuresPosition rows of an account.
func (c *Client) GetPositions(account string) ([]PositionResult, error) {
	c.logger.Debug("Get positions of account %s", account)
	var ret []PositionResult

	idFilter := "0x0"
	for {
		positions, err := c.getPositionsWithID(account, idFilter)
		if err != nil {
			return ret, err
		}
		ret = append(ret, positions...)
		length := len(positions)
		if length == pageSize {
			// means there are more positions, update idFilter
			idFilter = positions[length-1].ID
		} else {
			// means got all positions
			return ret, nil
		}
	}
}

func (c *Client) getPositionsWithID(account string, id string) ([]PositionResult, error) {
	query := `{
		futuresPositions(first: 1000, orderBy: id, orderDirection: asc,
			where: { account: "%s", id_gt: "%s" }
		) {
			id
			lastTxHash
			openTimestamp
			closeTimestamp
			timestamp
			market
			asset
			account
			abstractAccount
			accountType
			isOpen
			isLiquidated
			trades
			totalVolume
			size
			initialMargin
			margin
			pnl
			feesPaid
			netFunding
			pnlWithFeesPaid
			netTransfers
			totalDeposits
			entryPrice
			avgEntryPrice
			exitPrice
		}
	}`
	var resp struct {
		Data struct {
			FuturesPositions []PositionResult
		}
	}
	if err := c.queryGraph(&resp, query, account, id); err != nil {
		return nil, fmt.Errorf(
			"fail to get positions with account=%s, ID=%s, err=%s", account, id, err)
	}
	return resp.Data.FuturesPositions, nil
}

// GetTrades gets the most recent futuresTrade rows of an account.
func (c *Client) GetTrades(account string, first int) ([]TradeResult, error) {
	c.logger.Debug("Get trades of account %s", account)
	if first <= 0 || first > pageSize {
		first = pageSize
	}
	query := `{
		futuresTrades(first: %d, orderBy: timestamp, orderDirection: desc,
			where: { account: "%s" }
		) {
			id
			timestamp
			account
			size
			asset
			price
			positionSize
			positionClosed
			pnl
			feesPaid
			orderType
		}
	}`
	var resp struct {
		Data struct {
			FuturesTrades []TradeResult
		}
	}
	if err := c.queryGraph(&resp, query, first, account); err != nil {
		return nil, fmt.Errorf("fail to get trades with account=%s err=%s", account, err)
	}
	return resp.Data.FuturesTrades, nil
}

// GetMarginTransfers gets margin transfers of an account on one market.
func (c *Client) GetMarginTransfers(market string, account string) ([]MarginTransferResult, error) {
	c.logger.Debug("Get margin transfers of market %s account %s", market, account)
	query := `{
		futuresMarginTransfers(first: 1000, orderBy: timestamp, orderDirection: desc,
			where: { account: "%s", market: "%s" }
		) {
			id
			timestamp
			account
			market
			size
			asset
			txHash
		}
	}`
	var resp struct {
		Data struct {
			FuturesMarginTransfers []MarginTransferResult
		}
	}
	if err := c.queryGraph(&resp, query, account, market); err != nil {
		return nil, fmt.Errorf(
			"fail to get margin transfers with market=%s account=%s err=%s", market, account, err)
	}
	return resp.Data.FuturesMarginTransfers, nil
}

// GetFundingRateUpdates gets funding checkpoints of a market since
// minTimestamp, oldest first. The estimator requires chronological order.
func (c *Client) GetFundingRateUpdates(market string, minTimestamp int64) ([]FundingRateUpdateResult, error) {
	c.logger.Debug("Get funding rate updates of market %s since %d", market, minTimestamp)
	query := `{
		fundingRateUpdates(first: 1000, orderBy: timestamp, orderDirection: asc,
			where: { market: "%s", timestamp_gte: %d }
		) {
			timestamp
			funding
		}
	}`
	var resp struct {
		Data struct {
			FundingRateUpdates []FundingRateUpdateResult
		}
	}
	if err := c.queryGraph(&resp, query, market, minTimestamp); err != nil {
		return nil, fmt.Errorf(
			"fail to get funding rate updates with market=%s err=%s", market, err)
	}
	return resp.Data.FundingRateUpdates, nil
}

// GetHourlyStats gets per-market hourly volume stats since minTimestamp.
func (c *Client) GetHourlyStats(minTimestamp int64) ([]HourlyStatResult, error) {
	c.logger.Debug("Get hourly stats since %d", minTimestamp)
	query := `{
		futuresHourlyStats(first: 1000, orderBy: timestamp, orderDirection: desc,
			where: { timestamp_gte: %d }
		) {
			asset
			volume
			trades
			timestamp
		}
	}`
	var resp struct {
		Data struct {
			FuturesHourlyStats []HourlyStatResult
		}
	}
	if err := c.queryGraph(&resp, query, minTimestamp); err != nil {
		return nil, fmt.Errorf("fail to get hourly stats err=%s", err)
	}
	return resp.Data.FuturesHourlyStats, nil
}

// GetOneMinStats gets one-minute trade stats since minTimestamp.
func (c *Client) GetOneMinStats(minTimestamp int64) ([]OneMinStatResult, error) {
	c.logger.Debug("Get one minute stats since %d", minTimestamp)
	query := `{
		futuresOneMinStats(first: 1000, orderBy: timestamp, orderDirection: desc,
			where: { timestamp_gte: %d }
		) {
			volume
			trades
			timestamp
		}
	}`
	var resp struct {
		Data struct {
			FuturesOneMinStats []OneMinStatResult
		}
	}
	if err := c.queryGraph(&resp, query, minTimestamp); err != nil {
		return nil, fmt.Errorf("fail to get one minute stats err=%s", err)
	}
	return resp.Data.FuturesOneMinStats, nil
}

// GetSynthExchanges gets synth exchange rows since minTimestamp.
func (c *Client) GetSynthExchanges(minTimestamp int64) ([]SynthExchangeResult, error) {
	c.logger.Debug("Get synth exchanges since %d", minTimestamp)
	query := `{
		synthExchanges(first: 1000, orderBy: timestamp, orderDirection: desc,
			where: { timestamp_gte: %d }
		) {
			id
			fromSynth {
				symbol
			}
			fromAmountInUSD
			timestamp
		}
	}`
	var resp struct {
		Data struct {
			SynthExchanges []SynthExchangeResult
		}
	}
	if err := c.queryGraph(&resp, query, minTimestamp); err != nil {
		return nil, fmt.Errorf("fail to get synth exchanges err=%s", err)
	}
	return resp.Data.SynthExchanges, nil
}
