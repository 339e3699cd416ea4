package futures

import (
	"strings"

	"github.com/kwenta/futures-data-watcher/graph"
)

// MapTrades converts raw futuresTrade subgraph rows into FuturesTrade
// records. Side follows the sign of size; the transaction hash is the row
// id prefix.
func MapTrades(rows []graph.TradeResult) []FuturesTrade {
	trades := make([]FuturesTrade, 0, len(rows))
	for _, row := range rows {
		size := FromWei(row.Size)
		side := SideShort
		if size.IsPositive() {
			side = SideLong
		}
		trades = append(trades, FuturesTrade{
			Size:           size,
			Asset:          DecodeAssetSymbol(row.Asset),
			Price:          FromWei(row.Price),
			TxnHash:        strings.Split(row.ID, "-")[0],
			Timestamp:      row.Timestamp.IntPart(),
			PositionSize:   FromWei(row.PositionSize),
			PositionClosed: row.PositionClosed,
			Side:           side,
			PnL:            FromWei(row.PnL),
			FeesPaid:       FromWei(row.FeesPaid),
			OrderType:      row.OrderType,
		})
	}
	return trades
}

// MapMarginTransfers converts raw futuresMarginTransfer subgraph rows into
// MarginTransfer records: deposit/withdraw from the sign of the size, a
// signed currency display amount, and the asset symbol decoded from bytes32.
func MapMarginTransfers(rows []graph.MarginTransferResult) []MarginTransfer {
	transfers := make([]MarginTransfer, 0, len(rows))
	for _, row := range rows {
		size := FromWei(row.Size)
		isPositive := size.IsPositive()

		sign := "-"
		action := ActionWithdraw
		if isPositive {
			sign = "+"
			action = ActionDeposit
		}

		transfers = append(transfers, MarginTransfer{
			Timestamp:  row.Timestamp.IntPart(),
			Account:    row.Account,
			Market:     row.Market,
			Size:       size,
			Action:     action,
			Amount:     sign + FormatDollars(size.Abs()),
			IsPositive: isPositive,
			Asset:      DecodeAssetSymbol(row.Asset),
			TxHash:     row.TxHash,
		})
	}
	return transfers
}
