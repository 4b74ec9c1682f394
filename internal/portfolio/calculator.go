package portfolio

import (
	"strings"

	"github.com/shopspring/decimal"

	"CycleSentinel/internal/model"
)

// goal-cost and valuation math runs on decimals; float drift across a
// portfolio sum is visible money.

// Achievement values the altcoin holdings against the BTC/ETH accumulation
// goal. BTC and ETH positions are part of the goal, not funding for it, so
// they are skipped. Holdings without a fetched price are excluded from the
// sum and flagged rather than silently valued at zero.
func Achievement(holdings []model.Holding, targets model.Targets, btcPrice, ethPrice model.Metric) (model.Achievement, error) {
	a := model.Achievement{}

	for _, h := range holdings {
		if isGoalAsset(h.Symbol) {
			continue
		}
		if !h.CurrentPrice.Valid {
			a.Excluded = append(a.Excluded, h.Symbol)
			continue
		}
		value := decimal.NewFromFloat(h.Quantity).Mul(decimal.NewFromFloat(h.CurrentPrice.Value))
		a.Holdings = append(a.Holdings, model.HoldingValuation{
			Symbol:     h.Symbol,
			Quantity:   h.Quantity,
			ValueUSD:   value,
			PnLPercent: h.PnLPercent(),
		})
		a.AltcoinValue = a.AltcoinValue.Add(value)
	}

	if !btcPrice.Valid || !ethPrice.Valid {
		return a, model.ErrMissingGoalPrice
	}
	a.GoalCost = decimal.NewFromFloat(targets.BTC).Mul(decimal.NewFromFloat(btcPrice.Value)).
		Add(decimal.NewFromFloat(targets.ETH).Mul(decimal.NewFromFloat(ethPrice.Value)))

	if a.GoalCost.IsZero() {
		return a, model.ErrZeroGoal
	}
	a.AchievementPct = a.AltcoinValue.Div(a.GoalCost).Mul(decimal.NewFromInt(100))
	return a, nil
}

// GoalAction maps the achievement percentage to a portfolio recommendation.
func GoalAction(pct decimal.Decimal) model.Action {
	switch {
	case pct.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return model.ActionGoalAchievable
	case pct.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return model.ActionNearGoal
	default:
		return model.ActionKeepAccumulating
	}
}

func isGoalAsset(symbol string) bool {
	switch strings.ToUpper(symbol) {
	case "BTC", "ETH":
		return true
	}
	return false
}
