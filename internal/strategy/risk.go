package strategy

import (
	"fmt"

	"CycleSentinel/internal/model"
)

// EvaluateRisk combines the BTC indicator snapshot, the sentiment snapshot
// and the altseason score into a single cycle-top risk score. A factor
// contributes only when its signal is present and above its trigger; absent
// signals are excluded, never counted as neutral. The total is clamped to
// [0, 100].
func EvaluateRisk(snap *model.IndicatorSnapshot, sentiment model.MarketSentiment, altseasonScore model.Metric, cfg Config) model.RiskScore {
	var factors []model.RiskFactor

	if f, ok := piCycleFactor(snap, cfg); ok {
		factors = append(factors, f)
	}
	if f, ok := rsiFactor(snap, cfg); ok {
		factors = append(factors, f)
	}
	if f, ok := rciFactor(snap, cfg); ok {
		factors = append(factors, f)
	}
	if f, ok := altseasonFactor(altseasonScore, cfg); ok {
		factors = append(factors, f)
	}
	if f, ok := fearGreedFactor(sentiment, cfg); ok {
		factors = append(factors, f)
	}

	total := 0
	for _, f := range factors {
		total += f.Points
	}
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	return model.RiskScore{
		Score:   total,
		Level:   model.LevelForScore(total),
		Factors: factors,
	}
}

func piCycleFactor(snap *model.IndicatorSnapshot, cfg Config) (model.RiskFactor, bool) {
	if snap == nil || !snap.PiCycleRatio.Valid {
		return model.RiskFactor{}, false
	}
	ratio := snap.PiCycleRatio.Value
	switch {
	case ratio >= 1:
		return model.RiskFactor{
			Name:   "pi_cycle_triggered",
			Points: cfg.Weights.PiCycleTriggered,
			Detail: fmt.Sprintf("Pi Cycle ratio %.3f ≥ 1", ratio),
		}, true
	case ratio >= cfg.Thresholds.PiCycleApproach:
		return model.RiskFactor{
			Name:   "pi_cycle_approaching",
			Points: cfg.Weights.PiCycleApproaching,
			Detail: fmt.Sprintf("Pi Cycle ratio %.3f approaching 1", ratio),
		}, true
	}
	return model.RiskFactor{}, false
}

func rsiFactor(snap *model.IndicatorSnapshot, cfg Config) (model.RiskFactor, bool) {
	if snap == nil || !snap.RSI.Valid {
		return model.RiskFactor{}, false
	}
	rsi := snap.RSI.Value
	switch {
	case rsi > cfg.Thresholds.RSIExtreme:
		return model.RiskFactor{
			Name:   "rsi_extreme",
			Points: cfg.Weights.RSIExtreme,
			Detail: fmt.Sprintf("RSI %.1f extremely overbought", rsi),
		}, true
	case rsi > cfg.Thresholds.RSIOverbought:
		return model.RiskFactor{
			Name:   "rsi_overbought",
			Points: cfg.Weights.RSIOverbought,
			Detail: fmt.Sprintf("RSI %.1f overbought", rsi),
		}, true
	}
	return model.RiskFactor{}, false
}

// rciFactor fires on trend exhaustion: the long-term line still reads an
// established uptrend while the short-term line has rolled over.
func rciFactor(snap *model.IndicatorSnapshot, cfg Config) (model.RiskFactor, bool) {
	if snap == nil || !snap.RCI.Short.Valid || !snap.RCI.Long.Valid {
		return model.RiskFactor{}, false
	}
	short, long := snap.RCI.Short.Value, snap.RCI.Long.Value
	if long < cfg.Thresholds.RCIExhaustLong {
		return model.RiskFactor{}, false
	}
	switch {
	case short <= cfg.Thresholds.RCIExhaustShort:
		return model.RiskFactor{
			Name:   "rci_exhaustion",
			Points: cfg.Weights.RCIExhaustion,
			Detail: fmt.Sprintf("RCI divergence: long %.0f vs short %.0f", long, short),
		}, true
	case short <= cfg.Thresholds.RCIWeakenShort:
		return model.RiskFactor{
			Name:   "rci_weakening",
			Points: cfg.Weights.RCIWeakening,
			Detail: fmt.Sprintf("RCI weakening: long %.0f vs short %.0f", long, short),
		}, true
	}
	return model.RiskFactor{}, false
}

func altseasonFactor(score model.Metric, cfg Config) (model.RiskFactor, bool) {
	if !score.Valid || score.Value <= float64(cfg.Altseason.UpperBand) {
		return model.RiskFactor{}, false
	}
	return model.RiskFactor{
		Name:   "altseason_peak",
		Points: cfg.Weights.AltseasonPeak,
		Detail: fmt.Sprintf("altseason score %.0f in top band", score.Value),
	}, true
}

func fearGreedFactor(sentiment model.MarketSentiment, cfg Config) (model.RiskFactor, bool) {
	if !sentiment.FearGreed.Valid {
		return model.RiskFactor{}, false
	}
	fg := sentiment.FearGreed.Value
	switch {
	case fg > cfg.Thresholds.FearGreedExtreme:
		return model.RiskFactor{
			Name:   "fear_greed_extreme",
			Points: cfg.Weights.FearGreedExtreme,
			Detail: fmt.Sprintf("Fear & Greed %.0f extreme greed", fg),
		}, true
	case fg > cfg.Thresholds.FearGreedHigh:
		return model.RiskFactor{
			Name:   "fear_greed_high",
			Points: cfg.Weights.FearGreedHigh,
			Detail: fmt.Sprintf("Fear & Greed %.0f high greed", fg),
		}, true
	}
	return model.RiskFactor{}, false
}

// riskAction maps a risk band to its fixed recommended action.
func riskAction(level model.RiskLevel) model.Action {
	switch level {
	case model.RiskMinimal:
		return model.ActionAccumulateAggressively
	case model.RiskLow:
		return model.ActionAccumulate
	case model.RiskModerate:
		return model.ActionPrepareExits
	case model.RiskHigh:
		return model.ActionSellPartial
	default:
		return model.ActionSellMajor
	}
}
