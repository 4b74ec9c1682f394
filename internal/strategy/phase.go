package strategy

import "CycleSentinel/internal/model"

// MarketPhase is the categorical market regime.
type MarketPhase string

const (
	PhaseCapitulation    MarketPhase = "CAPITULATION"
	PhaseBuyZone         MarketPhase = "BUY_ZONE"
	PhaseEuphoriaRisk    MarketPhase = "EUPHORIA_RISK"
	PhaseSellZone        MarketPhase = "SELL_ZONE"
	PhaseAltseasonActive MarketPhase = "ALTSEASON_ACTIVE"
	PhaseFear            MarketPhase = "FEAR"
	PhaseGreed           MarketPhase = "GREED"
	PhaseNeutral         MarketPhase = "NEUTRAL"
)

// phaseRule is one row of the decision table. Rules are evaluated top-down;
// the first match wins. A rule referencing a missing sentiment field does
// not match, so missing data falls through to NEUTRAL.
type phaseRule struct {
	phase   MarketPhase
	action  model.Action
	matches func(s model.MarketSentiment) bool
}

var phaseTable = []phaseRule{
	{PhaseCapitulation, model.ActionAggressiveAccumulation, func(s model.MarketSentiment) bool {
		return s.FearGreed.Valid && s.BTCDominance.Valid && s.FearGreed.Value <= 20 && s.BTCDominance.Value > 60
	}},
	{PhaseBuyZone, model.ActionGradualAccumulation, func(s model.MarketSentiment) bool {
		return s.FearGreed.Valid && s.BTCDominance.Valid && s.FearGreed.Value <= 30 && s.BTCDominance.Value > 55
	}},
	{PhaseEuphoriaRisk, model.ActionReduceRiskNow, func(s model.MarketSentiment) bool {
		return s.FearGreed.Valid && s.BTCDominance.Valid && s.FearGreed.Value >= 80 && s.BTCDominance.Value < 45
	}},
	{PhaseSellZone, model.ActionTakeProfits, func(s model.MarketSentiment) bool {
		return s.FearGreed.Valid && s.FearGreed.Value >= 75
	}},
	{PhaseAltseasonActive, model.ActionRotateAltExits, func(s model.MarketSentiment) bool {
		return s.BTCDominance.Valid && s.ETHBTCRatio.Valid && s.BTCDominance.Value < 45 && s.ETHBTCRatio.Value > 0.07
	}},
	{PhaseFear, model.ActionCautiousAccumulation, func(s model.MarketSentiment) bool {
		return s.FearGreed.Valid && s.FearGreed.Value <= 35
	}},
	{PhaseGreed, model.ActionTrimIntoStrength, func(s model.MarketSentiment) bool {
		return s.FearGreed.Valid && s.FearGreed.Value >= 65
	}},
}

// ClassifyPhase runs the fixed-priority decision table over the sentiment
// snapshot. Pure lookup; the action per phase is fixed.
func ClassifyPhase(s model.MarketSentiment) (MarketPhase, model.Action) {
	for _, rule := range phaseTable {
		if rule.matches(s) {
			return rule.phase, rule.action
		}
	}
	return PhaseNeutral, model.ActionHold
}
