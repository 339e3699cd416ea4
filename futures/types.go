package futures

import "github.com/shopspring/decimal"

// PositionSide is the direction of a position. It is always derived from
// the sign of a size or leverage value, never stored as a source of truth.
type PositionSide string

const (
	SideLong  PositionSide = "long"
	SideShort PositionSide = "short"
)

// PositionDetail is the raw per-market position snapshot as read from the
// FuturesMarketData contract. All numeric fields are raw 1e18-scaled values.
type PositionDetail struct {
	RemainingMargin  decimal.Decimal
	AccessibleMargin decimal.Decimal
	OrderPending     bool
	Order            OrderDetail
	Position         PositionData
	AccruedFunding   decimal.Decimal
	NotionalValue    decimal.Decimal
	LiquidationPrice decimal.Decimal
	ProfitLoss       decimal.Decimal
}

// OrderDetail is the raw pending-order part of a PositionDetail.
type OrderDetail struct {
	Fee      decimal.Decimal
	Leverage decimal.Decimal
}

// PositionData is the raw core-position part of a PositionDetail.
type PositionData struct {
	FundingIndex decimal.Decimal
	LastPrice    decimal.Decimal
	Size         decimal.Decimal
	Margin       decimal.Decimal
}

// Order is a pending order on a market.
type Order struct {
	Pending  bool            `json:"pending"`
	Fee      decimal.Decimal `json:"fee"`
	Leverage decimal.Decimal `json:"leverage"`
	Side     PositionSide    `json:"side"`
}

// Position is the open-position part of a FuturesPosition. Magnitude fields
// are absolute values; direction lives in Side.
type Position struct {
	CanLiquidatePosition bool            `json:"canLiquidatePosition"`
	Side                 PositionSide    `json:"side"`
	NotionalValue        decimal.Decimal `json:"notionalValue"`
	AccruedFunding       decimal.Decimal `json:"accruedFunding"`
	InitialMargin        decimal.Decimal `json:"initialMargin"`
	ProfitLoss           decimal.Decimal `json:"profitLoss"`
	FundingIndex         int64           `json:"fundingIndex"`
	LastPrice            decimal.Decimal `json:"lastPrice"`
	Size                 decimal.Decimal `json:"size"`
	LiquidationPrice     decimal.Decimal `json:"liquidationPrice"`
	InitialLeverage      decimal.Decimal `json:"initialLeverage"`
	PnL                  decimal.Decimal `json:"pnl"`
	PnLPct               decimal.Decimal `json:"pnlPct"`
	MarginRatio          decimal.Decimal `json:"marginRatio"`
	Leverage             decimal.Decimal `json:"leverage"`
}

// FuturesPosition is a trader's current state on one market. Position is
// nil iff the on-chain size is zero; Order is nil unless an order is pending.
type FuturesPosition struct {
	Asset            string          `json:"asset"`
	Order            *Order          `json:"order"`
	RemainingMargin  decimal.Decimal `json:"remainingMargin"`
	AccessibleMargin decimal.Decimal `json:"accessibleMargin"`
	Position         *Position       `json:"position"`
}

// PositionHistory is one historical (open or closed) position row.
type PositionHistory struct {
	ID              int64           `json:"id"`
	TransactionHash string          `json:"transactionHash"`
	Timestamp       int64           `json:"timestamp"`
	OpenTimestamp   int64           `json:"openTimestamp"`
	CloseTimestamp  *int64          `json:"closeTimestamp"`
	Market          string          `json:"market"`
	Asset           string          `json:"asset"`
	Account         string          `json:"account"`
	AbstractAccount string          `json:"abstractAccount"`
	AccountType     string          `json:"accountType"`
	IsOpen          bool            `json:"isOpen"`
	IsLiquidated    bool            `json:"isLiquidated"`
	Size            decimal.Decimal `json:"size"`
	FeesPaid        decimal.Decimal `json:"feesPaid"`
	NetFunding      decimal.Decimal `json:"netFunding"`
	NetTransfers    decimal.Decimal `json:"netTransfers"`
	TotalDeposits   decimal.Decimal `json:"totalDeposits"`
	InitialMargin   decimal.Decimal `json:"initialMargin"`
	Margin          decimal.Decimal `json:"margin"`
	EntryPrice      decimal.Decimal `json:"entryPrice"`
	ExitPrice       decimal.Decimal `json:"exitPrice"`
	PnL             decimal.Decimal `json:"pnl"`
	PnLWithFeesPaid decimal.Decimal `json:"pnlWithFeesPaid"`
	TotalVolume     decimal.Decimal `json:"totalVolume"`
	Trades          int64           `json:"trades"`
	AvgEntryPrice   decimal.Decimal `json:"avgEntryPrice"`
	Leverage        decimal.Decimal `json:"leverage"`
	Side            PositionSide    `json:"side"`
}

// FuturesTrade is a single executed trade.
type FuturesTrade struct {
	Size           decimal.Decimal `json:"size"`
	Asset          string          `json:"asset"`
	Price          decimal.Decimal `json:"price"`
	TxnHash        string          `json:"txnHash"`
	Timestamp      int64           `json:"timestamp"`
	PositionSize   decimal.Decimal `json:"positionSize"`
	PositionClosed bool            `json:"positionClosed"`
	Side           PositionSide    `json:"side"`
	PnL            decimal.Decimal `json:"pnl"`
	FeesPaid       decimal.Decimal `json:"feesPaid"`
	OrderType      string          `json:"orderType"`
}

// MarginTransferAction classifies a margin transfer by the sign of its size.
type MarginTransferAction string

const (
	ActionDeposit  MarginTransferAction = "deposit"
	ActionWithdraw MarginTransferAction = "withdraw"
)

// MarginTransfer is a deposit or withdrawal of margin collateral.
type MarginTransfer struct {
	Timestamp  int64                `json:"timestamp"`
	Account    string               `json:"account"`
	Market     string               `json:"market"`
	Size       decimal.Decimal      `json:"size"`
	Action     MarginTransferAction `json:"action"`
	Amount     string               `json:"amount"`
	IsPositive bool                 `json:"isPositive"`
	Asset      string               `json:"asset"`
	TxHash     string               `json:"txHash"`
}

// OpenInterestRatio is the long/short share of a market's notional exposure.
// Long and Short always sum to exactly 1.
type OpenInterestRatio struct {
	Long  decimal.Decimal `json:"long"`
	Short decimal.Decimal `json:"short"`
}

// OpenInterest is the long/short exposure ratio of one market.
type OpenInterest struct {
	Asset string            `json:"asset"`
	Ratio OpenInterestRatio `json:"ratio"`
}

// FundingRateUpdate is a funding checkpoint: the cumulative funding value
// (raw 1e18-scaled) recorded at a point in time.
type FundingRateUpdate struct {
	Timestamp int64
	Funding   decimal.Decimal
}
