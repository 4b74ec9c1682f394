package strategy

import (
	"math"

	"CycleSentinel/internal/model"
)

// AltseasonState is the band the combined altseason score falls in.
type AltseasonState string

const (
	AltseasonBTCDominance AltseasonState = "BTC_DOMINANCE"
	AltseasonTransition   AltseasonState = "TRANSITION"
	AltseasonActive       AltseasonState = "ALTSEASON"
)

// AltseasonStatus is the detector output.
type AltseasonStatus struct {
	Score          float64
	State          AltseasonState
	DominanceScore float64
	MomentumScore  model.Metric // absent without a previous snapshot
	Action         model.Action
}

// DetectAltseason scores capital rotation out of BTC on a 0-100 scale from
// BTC dominance and, when a previous sentiment snapshot exists, ETH/BTC
// momentum. Without dominance there is nothing to score and ok is false.
func DetectAltseason(cur model.MarketSentiment, prev *model.MarketSentiment, cfg AltseasonConfig) (AltseasonStatus, bool) {
	if !cur.BTCDominance.Valid {
		return AltseasonStatus{}, false
	}

	dom := dominanceScore(cur.BTCDominance.Value, cfg)

	status := AltseasonStatus{DominanceScore: dom, Score: dom}
	if mom, ok := momentumScore(cur, prev, cfg); ok {
		status.MomentumScore = model.Some(mom)
		status.Score = cfg.DominanceWeight*dom + cfg.MomentumWeight*mom
	}

	switch {
	case status.Score < float64(cfg.LowerBand):
		status.State = AltseasonBTCDominance
		status.Action = model.ActionFocusBTC
	case status.Score > float64(cfg.UpperBand):
		status.State = AltseasonActive
		status.Action = model.ActionMonitorExits
	default:
		status.State = AltseasonTransition
		status.Action = model.ActionAwaitSignals
	}
	return status, true
}

// dominanceScore maps BTC dominance to 0-100 linearly between the two
// extremes: full score at or below the low extreme, zero at or above the
// high one.
func dominanceScore(dominance float64, cfg AltseasonConfig) float64 {
	switch {
	case dominance <= cfg.DominanceExtremeLow:
		return 100
	case dominance >= cfg.DominanceExtremeHigh:
		return 0
	default:
		span := cfg.DominanceExtremeHigh - cfg.DominanceExtremeLow
		return (cfg.DominanceExtremeHigh - dominance) / span * 100
	}
}

// momentumScore centers at 50 and moves by a band of the ETH/BTC ratio's
// percent change against the previous snapshot. Rising ratio means capital
// rotating into ETH.
func momentumScore(cur model.MarketSentiment, prev *model.MarketSentiment, cfg AltseasonConfig) (float64, bool) {
	if prev == nil || !cur.ETHBTCRatio.Valid || !prev.ETHBTCRatio.Valid || prev.ETHBTCRatio.Value == 0 {
		return 0, false
	}
	change := (cur.ETHBTCRatio.Value - prev.ETHBTCRatio.Value) / prev.ETHBTCRatio.Value * 100

	band := 0.0
	switch mag := math.Abs(change); {
	case mag >= cfg.MomentumVeryStrong:
		band = 50
	case mag >= cfg.MomentumStrong:
		band = 30
	case mag >= cfg.MomentumWeak:
		band = 10
	}
	if change < 0 {
		band = -band
	}
	return 50 + band, true
}
