package graph

// Interface is what consumers of the futures subgraph depend on.
type Interface interface {
	GetPositions(account string) ([]PositionResult, error)
	GetTrades(account string, first int) ([]TradeResult, error)
	GetMarginTransfers(market string, account string) ([]MarginTransferResult, error)
	GetFundingRateUpdates(market string, minTimestamp int64) ([]FundingRateUpdateResult, error)
	GetHourlyStats(minTimestamp int64) ([]HourlyStatResult, error)
	GetOneMinStats(minTimestamp int64) ([]OneMinStatResult, error)
	GetSynthExchanges(minTimestamp int64) ([]SynthExchangeResult, error)
}

// assertGraphInterface
func _() {
	var _ Interface = (*Client)(nil)
}
