package strategy

import (
	"testing"

	"CycleSentinel/internal/model"
)

func TestRatioGuidance_Table(t *testing.T) {
	cfg := DefaultConfig().Ratio

	tests := []struct {
		name   string
		ratio  float64
		btcRSI model.Metric
		ethRSI model.Metric
		action model.Action
	}{
		{"extreme high with hot ETH", 0.105, model.None(), model.Some(75), model.ActionSwapETHToBTC},
		{"low with hot BTC", 0.035, model.Some(75), model.None(), model.ActionSwapBTCToETH},
		{"low without hot BTC", 0.035, model.Some(55), model.None(), model.ActionFavorETH},
		{"elevated", 0.09, model.None(), model.None(), model.ActionFavorBTC},
		{"usual range", 0.06, model.None(), model.None(), model.ActionHoldRatio},
		{"extreme high but ETH cool reads as elevated", 0.105, model.None(), model.Some(55), model.ActionFavorBTC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := model.MarketSentiment{ETHBTCRatio: model.Some(tt.ratio)}
			btc := &model.IndicatorSnapshot{RSI: tt.btcRSI}
			eth := &model.IndicatorSnapshot{RSI: tt.ethRSI}

			_, action, ok := RatioGuidance(s, btc, eth, cfg)
			if !ok {
				t.Fatal("expected guidance")
			}
			if action != tt.action {
				t.Errorf("expected %s, got %s", tt.action, action)
			}
		})
	}
}

func TestRatioGuidance_MissingRatio(t *testing.T) {
	_, action, ok := RatioGuidance(model.MarketSentiment{}, nil, nil, DefaultConfig().Ratio)
	if ok {
		t.Fatal("missing ratio: expected no guidance")
	}
	if action != model.ActionInsufficientData {
		t.Errorf("expected INSUFFICIENT_DATA, got %s", action)
	}
}

func TestRatioGuidance_NilSnapshotsDefaultNeutral(t *testing.T) {
	// absent RSI reads as neutral 50, so a low ratio favors ETH rather than
	// triggering a swap
	s := model.MarketSentiment{ETHBTCRatio: model.Some(0.035)}
	_, action, ok := RatioGuidance(s, nil, nil, DefaultConfig().Ratio)
	if !ok {
		t.Fatal("expected guidance")
	}
	if action != model.ActionFavorETH {
		t.Errorf("expected FAVOR_ETH, got %s", action)
	}
}
