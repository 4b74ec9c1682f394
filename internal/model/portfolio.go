package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrMissingGoalPrice means the BTC or ETH price needed to cost the goal was
// unavailable; the altcoin valuation is still usable.
var ErrMissingGoalPrice = errors.New("goal asset price unavailable")

// ErrZeroGoal means the configured targets cost nothing, so an achievement
// percentage is undefined.
var ErrZeroGoal = errors.New("accumulation goal is zero")

// Holding is one portfolio position. CurrentPrice is a Metric: a holding
// whose price could not be fetched is excluded from aggregate value, not
// valued at zero.
type Holding struct {
	AssetID      string
	Symbol       string
	Quantity     float64
	AvgBuyPrice  float64
	CurrentPrice Metric
}

// PnLPercent returns (current − avg_buy) / avg_buy × 100. Absent when the
// current price or the cost basis is unknown.
func (h Holding) PnLPercent() Metric {
	if !h.CurrentPrice.Valid || h.AvgBuyPrice <= 0 {
		return None()
	}
	return Some((h.CurrentPrice.Value - h.AvgBuyPrice) / h.AvgBuyPrice * 100)
}

// HoldingValuation is one priced holding inside an achievement summary.
type HoldingValuation struct {
	Symbol     string
	Quantity   float64
	ValueUSD   decimal.Decimal
	PnLPercent Metric
}

// Targets is the accumulation goal in BTC and ETH quantities.
type Targets struct {
	BTC float64
	ETH float64
}

// Achievement summarizes how far liquidating the altcoin holdings would go
// toward the BTC/ETH accumulation goal. AchievementPct is uncapped.
type Achievement struct {
	Holdings       []HoldingValuation
	AltcoinValue   decimal.Decimal
	GoalCost       decimal.Decimal
	AchievementPct decimal.Decimal
	Excluded       []string // symbols skipped for missing price
}
