package futures

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientData reports that fewer than two funding checkpoints
	// exist, so no time-weighted rate can be estimated.
	ErrInsufficientData = errors.New("insufficient funding rate data")

	// ErrUnorderedUpdates reports funding checkpoints whose timestamps are
	// not strictly increasing. Callers must pass chronological checkpoints.
	ErrUnorderedUpdates = errors.New("funding rate updates are not in chronological order")
)

// CalculateFundingRate estimates the time-weighted average funding rate
// over the window starting at minTimestamp with the given period length in
// seconds. Updates must be in strictly increasing timestamp order; their
// Funding values are raw 1e18-scaled cumulative funding. When the
// checkpoints do not cover the full period the remainder is extrapolated
// from the current instantaneous daily rate scaled by the asset price.
func CalculateFundingRate(
	minTimestamp int64,
	periodLength int64,
	updates []FundingRateUpdate,
	assetPrice decimal.Decimal,
	currentFundingRate decimal.Decimal,
) (decimal.Decimal, error) {
	if len(updates) < 2 {
		return decimal.Zero, ErrInsufficientData
	}
	for i := 0; i < len(updates)-1; i++ {
		if updates[i+1].Timestamp <= updates[i].Timestamp {
			return decimal.Zero, ErrUnorderedUpdates
		}
	}

	fundingPaid := decimal.Zero
	var timeTotal int64
	lastTimestamp := minTimestamp

	for i := 0; i < len(updates)-1; i++ {
		minFunding := updates[i]
		maxFunding := updates[i+1]

		fundingStart := FromWei(minFunding.Funding)
		fundingEnd := FromWei(maxFunding.Funding)
		fundingDiff := fundingStart.Sub(fundingEnd)

		// clamp the overlap so slices counted by prior iterations are not
		// double-counted
		overlapStart := minFunding.Timestamp
		if lastTimestamp > overlapStart {
			overlapStart = lastTimestamp
		}
		timeDiff := maxFunding.Timestamp - overlapStart
		timeMax := maxFunding.Timestamp - minFunding.Timestamp

		if timeMax > 0 {
			fundingPaid = fundingPaid.Add(
				fundingDiff.Mul(decimal.NewFromInt(timeDiff)).Div(decimal.NewFromInt(timeMax)))
			timeTotal += timeDiff
		}
		lastTimestamp = maxFunding.Timestamp
	}

	// extrapolate the uncovered remainder from the current rate
	timeLeft := periodLength - timeTotal
	if timeLeft > 0 {
		fundingPaid = fundingPaid.Add(
			currentFundingRate.
				Mul(decimal.NewFromInt(timeLeft)).
				Div(decimal.NewFromInt(SecondsPerDay)).
				Mul(assetPrice))
	}

	return SafeDiv(fundingPaid, assetPrice), nil
}
