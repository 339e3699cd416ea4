package futures

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kwenta/futures-data-watcher/graph"
)

// MapPosition converts a raw on-chain position snapshot into a
// FuturesPosition. Position is nil iff the raw size is zero; every division
// with a zero denominator resolves to zero.
func MapPosition(detail PositionDetail, canLiquidate bool, asset string) FuturesPosition {
	initialMargin := FromWei(detail.Position.Margin)
	pnl := FromWei(detail.ProfitLoss).Add(FromWei(detail.AccruedFunding))
	pnlPct := decimal.Zero
	if initialMargin.IsPositive() {
		pnlPct = pnl.Div(initialMargin)
	}

	p := FuturesPosition{
		Asset:            asset,
		RemainingMargin:  FromWei(detail.RemainingMargin),
		AccessibleMargin: FromWei(detail.AccessibleMargin),
	}

	if detail.OrderPending {
		leverage := FromWei(detail.Order.Leverage)
		side := SideShort
		if !leverage.IsNegative() {
			side = SideLong
		}
		p.Order = &Order{
			Pending:  true,
			Fee:      FromWei(detail.Order.Fee),
			Leverage: leverage,
			Side:     side,
		}
	}

	size := FromWei(detail.Position.Size)
	if size.IsZero() {
		return p
	}

	side := SideShort
	if size.IsPositive() {
		side = SideLong
	}
	lastPrice := FromWei(detail.Position.LastPrice)
	notionalValue := FromWei(detail.NotionalValue)
	remainingMargin := FromWei(detail.RemainingMargin)

	initialLeverage := decimal.Zero
	if initialMargin.IsPositive() {
		initialLeverage = size.Mul(lastPrice).Div(initialMargin).Abs()
	}
	marginRatio := decimal.Zero
	if !notionalValue.IsZero() {
		marginRatio = remainingMargin.Div(notionalValue.Abs())
	}
	leverage := decimal.Zero
	if !remainingMargin.IsZero() {
		leverage = notionalValue.Div(remainingMargin).Abs()
	}

	p.Position = &Position{
		CanLiquidatePosition: canLiquidate,
		Side:                 side,
		NotionalValue:        notionalValue.Abs(),
		AccruedFunding:       FromWei(detail.AccruedFunding),
		InitialMargin:        initialMargin,
		ProfitLoss:           FromWei(detail.ProfitLoss),
		FundingIndex:         detail.Position.FundingIndex.IntPart(),
		LastPrice:            lastPrice,
		Size:                 size.Abs(),
		LiquidationPrice:     FromWei(detail.LiquidationPrice),
		InitialLeverage:      initialLeverage,
		PnL:                  pnl,
		PnLPct:               pnlPct,
		MarginRatio:          marginRatio,
		Leverage:             leverage,
	}
	return p
}

// MapPositionHistory converts raw futuresPosition subgraph rows into
// PositionHistory records.
func MapPositionHistory(rows []graph.PositionResult) []PositionHistory {
	history := make([]PositionHistory, 0, len(rows))
	for _, row := range rows {
		size := FromWei(row.Size)
		margin := FromWei(row.Margin)
		entryPrice := FromWei(row.EntryPrice)

		leverage := decimal.Zero
		if !margin.IsZero() {
			leverage = size.Mul(entryPrice).Div(margin).Abs()
		}
		side := SideShort
		if !size.IsNegative() {
			side = SideLong
		}

		var closeTimestamp *int64
		if row.CloseTimestamp != nil {
			ts := row.CloseTimestamp.IntPart()
			closeTimestamp = &ts
		}

		history = append(history, PositionHistory{
			ID:              positionIDFromRowID(row.ID),
			TransactionHash: row.LastTxHash,
			Timestamp:       row.Timestamp.IntPart(),
			OpenTimestamp:   row.OpenTimestamp.IntPart(),
			CloseTimestamp:  closeTimestamp,
			Market:          row.Market,
			Asset:           DecodeAssetSymbol(row.Asset),
			Account:         row.Account,
			AbstractAccount: row.AbstractAccount,
			AccountType:     row.AccountType,
			IsOpen:          row.IsOpen,
			IsLiquidated:    row.IsLiquidated,
			Size:            size.Abs(),
			FeesPaid:        FromWei(orZero(row.FeesPaid)),
			NetFunding:      FromWei(orZero(row.NetFunding)),
			NetTransfers:    FromWei(orZero(row.NetTransfers)),
			TotalDeposits:   FromWei(orZero(row.TotalDeposits)),
			InitialMargin:   FromWei(row.InitialMargin),
			Margin:          margin,
			EntryPrice:      entryPrice,
			ExitPrice:       FromWei(orZero(row.ExitPrice)),
			PnL:             FromWei(row.PnL),
			PnLWithFeesPaid: FromWei(row.PnLWithFeesPaid),
			TotalVolume:     FromWei(row.TotalVolume),
			Trades:          row.Trades.IntPart(),
			AvgEntryPrice:   FromWei(row.AvgEntryPrice),
			Leverage:        leverage,
			Side:            side,
		})
	}
	return history
}

// positionIDFromRowID extracts the numeric position id from a subgraph row
// id of the form "<market>-<id>".
func positionIDFromRowID(rowID string) int64 {
	parts := strings.Split(rowID, "-")
	if len(parts) < 2 {
		return 0
	}
	id, err := strconv.ParseInt(parts[1], 0, 64)
	if err != nil {
		return 0
	}
	return id
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
