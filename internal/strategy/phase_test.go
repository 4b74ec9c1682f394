package strategy

import (
	"testing"

	"CycleSentinel/internal/model"
)

func sentiment(fg, dom, ratio model.Metric) model.MarketSentiment {
	return model.MarketSentiment{FearGreed: fg, BTCDominance: dom, ETHBTCRatio: ratio}
}

func TestClassifyPhase_DecisionTable(t *testing.T) {
	tests := []struct {
		name      string
		sentiment model.MarketSentiment
		phase     MarketPhase
		action    model.Action
	}{
		{
			"capitulation wins over fear",
			sentiment(model.Some(15), model.Some(65), model.None()),
			PhaseCapitulation, model.ActionAggressiveAccumulation,
		},
		{
			"deep capitulation",
			sentiment(model.Some(8), model.Some(62), model.None()),
			PhaseCapitulation, model.ActionAggressiveAccumulation,
		},
		{
			"buy zone",
			sentiment(model.Some(25), model.Some(57), model.None()),
			PhaseBuyZone, model.ActionGradualAccumulation,
		},
		{
			"euphoria risk",
			sentiment(model.Some(85), model.Some(40), model.None()),
			PhaseEuphoriaRisk, model.ActionReduceRiskNow,
		},
		{
			"sell zone without low dominance",
			sentiment(model.Some(85), model.Some(50), model.None()),
			PhaseSellZone, model.ActionTakeProfits,
		},
		{
			"altseason active",
			sentiment(model.Some(50), model.Some(40), model.Some(0.08)),
			PhaseAltseasonActive, model.ActionRotateAltExits,
		},
		{
			"fear",
			sentiment(model.Some(33), model.Some(50), model.None()),
			PhaseFear, model.ActionCautiousAccumulation,
		},
		{
			"greed",
			sentiment(model.Some(70), model.Some(50), model.None()),
			PhaseGreed, model.ActionTrimIntoStrength,
		},
		{
			"neutral",
			sentiment(model.Some(50), model.Some(50), model.None()),
			PhaseNeutral, model.ActionHold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase, action := ClassifyPhase(tt.sentiment)
			if phase != tt.phase {
				t.Errorf("expected phase %s, got %s", tt.phase, phase)
			}
			if action != tt.action {
				t.Errorf("expected action %s, got %s", tt.action, action)
			}
		})
	}
}

func TestClassifyPhase_MissingDominanceFallsThrough(t *testing.T) {
	// dominance rules cannot match; FG 30 lands on the FEAR rule instead of
	// BUY_ZONE
	phase, _ := ClassifyPhase(sentiment(model.Some(30), model.None(), model.None()))
	if phase != PhaseFear {
		t.Errorf("expected FEAR without dominance, got %s", phase)
	}
}

func TestClassifyPhase_NoDataIsNeutral(t *testing.T) {
	phase, action := ClassifyPhase(model.MarketSentiment{})
	if phase != PhaseNeutral || action != model.ActionHold {
		t.Errorf("no sentiment: expected NEUTRAL/HOLD, got %s/%s", phase, action)
	}
}
