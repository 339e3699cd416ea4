package graph

import "github.com/shopspring/decimal"

// Raw subgraph rows. Numeric fields arrive as decimal-string integers at
// the on-chain 1e18 scale; nullable fields are pointers.

// PositionResult is one futuresPosition row.
type PositionResult struct {
	ID              string           `json:"id"`
	LastTxHash      string           `json:"lastTxHash"`
	OpenTimestamp   decimal.Decimal  `json:"openTimestamp"`
	CloseTimestamp  *decimal.Decimal `json:"closeTimestamp"`
	Timestamp       decimal.Decimal  `json:"timestamp"`
	Market          string           `json:"market"`
	Asset           string           `json:"asset"`
	Account         string           `json:"account"`
	AbstractAccount string           `json:"abstractAccount"`
	AccountType     string           `json:"accountType"`
	IsOpen          bool             `json:"isOpen"`
	IsLiquidated    bool             `json:"isLiquidated"`
	Trades          decimal.Decimal  `json:"trades"`
	TotalVolume     decimal.Decimal  `json:"totalVolume"`
	Size            decimal.Decimal  `json:"size"`
	InitialMargin   decimal.Decimal  `json:"initialMargin"`
	Margin          decimal.Decimal  `json:"margin"`
	PnL             decimal.Decimal  `json:"pnl"`
	FeesPaid        *decimal.Decimal `json:"feesPaid"`
	NetFunding      *decimal.Decimal `json:"netFunding"`
	PnLWithFeesPaid decimal.Decimal  `json:"pnlWithFeesPaid"`
	NetTransfers    *decimal.Decimal `json:"netTransfers"`
	TotalDeposits   *decimal.Decimal `json:"totalDeposits"`
	EntryPrice      decimal.Decimal  `json:"entryPrice"`
	AvgEntryPrice   decimal.Decimal  `json:"avgEntryPrice"`
	ExitPrice       *decimal.Decimal `json:"exitPrice"`
}

// TradeResult is one futuresTrade row.
type TradeResult struct {
	ID             string          `json:"id"`
	Timestamp      decimal.Decimal `json:"timestamp"`
	Account        string          `json:"account"`
	Size           decimal.Decimal `json:"size"`
	Asset          string          `json:"asset"`
	Price          decimal.Decimal `json:"price"`
	PositionSize   decimal.Decimal `json:"positionSize"`
	PositionClosed bool            `json:"positionClosed"`
	PnL            decimal.Decimal `json:"pnl"`
	FeesPaid       decimal.Decimal `json:"feesPaid"`
	OrderType      string          `json:"orderType"`
}

// MarginTransferResult is one futuresMarginTransfer row.
type MarginTransferResult struct {
	ID        string          `json:"id"`
	Timestamp decimal.Decimal `json:"timestamp"`
	Account   string          `json:"account"`
	Market    string          `json:"market"`
	Size      decimal.Decimal `json:"size"`
	Asset     string          `json:"asset"`
	TxHash    string          `json:"txHash"`
}

// FundingRateUpdateResult is one fundingRateUpdate checkpoint row.
type FundingRateUpdateResult struct {
	Timestamp decimal.Decimal `json:"timestamp"`
	Funding   decimal.Decimal `json:"funding"`
}

// HourlyStatResult is one futuresHourlyStat row.
type HourlyStatResult struct {
	Asset     string          `json:"asset"`
	Volume    decimal.Decimal `json:"volume"`
	Trades    decimal.Decimal `json:"trades"`
	Timestamp decimal.Decimal `json:"timestamp"`
}

// OneMinStatResult is one futuresOneMinStat row.
type OneMinStatResult struct {
	Volume    decimal.Decimal `json:"volume"`
	Trades    decimal.Decimal `json:"trades"`
	Timestamp decimal.Decimal `json:"timestamp"`
}

// SynthExchangeResult is one synthExchange row from the exchange subgraph.
type SynthExchangeResult struct {
	ID              string          `json:"id"`
	FromSynth       *SynthResult    `json:"fromSynth"`
	FromAmountInUSD decimal.Decimal `json:"fromAmountInUSD"`
	Timestamp       decimal.Decimal `json:"timestamp"`
}

// SynthResult identifies a synth by symbol.
type SynthResult struct {
	Symbol string `json:"symbol"`
}
