package portfolio

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"CycleSentinel/internal/model"
)

func TestAchievement_ExactHalf(t *testing.T) {
	holdings := []model.Holding{
		{AssetID: "solana", Symbol: "SOL", Quantity: 100, AvgBuyPrice: 20, CurrentPrice: model.Some(50)},
	}
	targets := model.Targets{BTC: 0.1, ETH: 1}
	// goal cost: 0.1*50000 + 1*5000 = 10000; altcoin value 5000

	a, err := Achievement(holdings, targets, model.Some(50000), model.Some(5000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.AchievementPct.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected exactly 50%%, got %s", a.AchievementPct)
	}
	if !a.AltcoinValue.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected altcoin value 5000, got %s", a.AltcoinValue)
	}
}

func TestAchievement_GoalAssetsSkipped(t *testing.T) {
	holdings := []model.Holding{
		{AssetID: "bitcoin", Symbol: "BTC", Quantity: 1, CurrentPrice: model.Some(50000)},
		{AssetID: "ethereum", Symbol: "ETH", Quantity: 10, CurrentPrice: model.Some(5000)},
		{AssetID: "solana", Symbol: "SOL", Quantity: 10, CurrentPrice: model.Some(100)},
	}
	a, err := Achievement(holdings, model.Targets{BTC: 0.01}, model.Some(50000), model.Some(5000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.AltcoinValue.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("BTC/ETH positions must not fund the goal: expected 1000, got %s", a.AltcoinValue)
	}
}

func TestAchievement_MissingPriceExcludedAndFlagged(t *testing.T) {
	holdings := []model.Holding{
		{AssetID: "solana", Symbol: "SOL", Quantity: 10, CurrentPrice: model.Some(100)},
		{AssetID: "fartcoin", Symbol: "FART", Quantity: 1000, CurrentPrice: model.None()},
	}
	a, err := Achievement(holdings, model.Targets{BTC: 0.01}, model.Some(50000), model.Some(5000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.AltcoinValue.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("unpriced holding valued at zero would be silent data loss: got %s", a.AltcoinValue)
	}
	if len(a.Excluded) != 1 || a.Excluded[0] != "FART" {
		t.Errorf("expected FART flagged as excluded, got %v", a.Excluded)
	}
}

func TestAchievement_UncappedAbove100(t *testing.T) {
	holdings := []model.Holding{
		{AssetID: "solana", Symbol: "SOL", Quantity: 1000, CurrentPrice: model.Some(100)},
	}
	a, err := Achievement(holdings, model.Targets{BTC: 1}, model.Some(50000), model.Some(5000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.AchievementPct.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected uncapped 200%%, got %s", a.AchievementPct)
	}
}

func TestAchievement_MissingGoalPrice(t *testing.T) {
	holdings := []model.Holding{
		{AssetID: "solana", Symbol: "SOL", Quantity: 10, CurrentPrice: model.Some(100)},
	}
	a, err := Achievement(holdings, model.Targets{BTC: 0.1}, model.None(), model.Some(5000))
	if !errors.Is(err, model.ErrMissingGoalPrice) {
		t.Fatalf("expected ErrMissingGoalPrice, got %v", err)
	}
	if !a.AltcoinValue.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("valuation should survive a missing goal price, got %s", a.AltcoinValue)
	}
}

func TestAchievement_ZeroGoal(t *testing.T) {
	holdings := []model.Holding{
		{AssetID: "solana", Symbol: "SOL", Quantity: 10, CurrentPrice: model.Some(100)},
	}
	if _, err := Achievement(holdings, model.Targets{}, model.Some(50000), model.Some(5000)); !errors.Is(err, model.ErrZeroGoal) {
		t.Fatalf("expected ErrZeroGoal, got %v", err)
	}
}

func TestGoalAction_Thresholds(t *testing.T) {
	tests := []struct {
		pct    int64
		action model.Action
	}{
		{120, model.ActionGoalAchievable},
		{100, model.ActionGoalAchievable},
		{85, model.ActionNearGoal},
		{80, model.ActionNearGoal},
		{50, model.ActionKeepAccumulating},
	}
	for _, tt := range tests {
		if got := GoalAction(decimal.NewFromInt(tt.pct)); got != tt.action {
			t.Errorf("%d%%: expected %s, got %s", tt.pct, tt.action, got)
		}
	}
}
