package strategy

import (
	"reflect"
	"testing"
	"time"

	"CycleSentinel/internal/model"
)

var sectionOrder = []model.SectionKind{
	model.SectionPortfolio,
	model.SectionMarketPhase,
	model.SectionCycleRisk,
	model.SectionAltseason,
	model.SectionRatio,
	model.SectionExits,
}

func fullInput() Input {
	btc := &model.IndicatorSnapshot{
		AssetID:      "bitcoin",
		CurrentPrice: 50000,
		RSI:          model.Some(85),
		PiCycleRatio: model.Some(1.02),
	}
	eth := &model.IndicatorSnapshot{
		AssetID:      "ethereum",
		CurrentPrice: 3000,
		RSI:          model.Some(75),
	}
	return Input{
		Sentiment: model.MarketSentiment{
			FearGreed:    model.Some(83),
			BTCDominance: model.Some(50),
			ETHBTCRatio:  model.Some(0.06),
		},
		BTC: btc,
		ETH: eth,
		Snapshots: map[string]*model.IndicatorSnapshot{
			"bitcoin":  btc,
			"ethereum": eth,
			"solana":   {AssetID: "solana", CurrentPrice: 150, RSI: model.Some(72)},
		},
		Holdings: []model.Holding{
			{AssetID: "solana", Symbol: "SOL", Quantity: 10, AvgBuyPrice: 100, CurrentPrice: model.Some(150)},
		},
		Targets: model.Targets{BTC: 0.1, ETH: 1},
		Now:     time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestBuildReport_SectionOrderFixed(t *testing.T) {
	report := BuildReport(fullInput(), DefaultConfig())
	if len(report.Sections) != len(sectionOrder) {
		t.Fatalf("expected %d sections, got %d", len(sectionOrder), len(report.Sections))
	}
	for i, kind := range sectionOrder {
		if report.Sections[i].Kind != kind {
			t.Errorf("section %d: expected %s, got %s", i, kind, report.Sections[i].Kind)
		}
	}
}

func TestBuildReport_Deterministic(t *testing.T) {
	a := BuildReport(fullInput(), DefaultConfig())
	b := BuildReport(fullInput(), DefaultConfig())
	if !reflect.DeepEqual(a, b) {
		t.Error("identical input must produce identical reports")
	}
}

func TestBuildReport_EmptyInputDegrades(t *testing.T) {
	report := BuildReport(Input{Now: time.Now()}, DefaultConfig())
	if len(report.Sections) != len(sectionOrder) {
		t.Fatalf("degraded report must keep all sections, got %d", len(report.Sections))
	}
	for _, s := range report.Sections {
		if s.Action != model.ActionInsufficientData {
			t.Errorf("section %s: expected INSUFFICIENT_DATA, got %s", s.Kind, s.Action)
		}
	}
}

func TestBuildReport_EuphoricScenario(t *testing.T) {
	report := BuildReport(fullInput(), DefaultConfig())

	if report.Risk.Score < 61 {
		t.Errorf("euphoric input: expected at least HIGH risk, got %d", report.Risk.Score)
	}

	phase := report.Sections[1]
	if phase.Action != model.ActionTakeProfits {
		t.Errorf("FG 83 with dominance 50: expected TAKE_PROFITS, got %s", phase.Action)
	}

	exits := report.Sections[5]
	if len(exits.Exits) != 1 {
		t.Fatalf("expected one exit advice, got %d", len(exits.Exits))
	}
	if exits.Exits[0].SellPercent == 0 {
		t.Error("profitable holding in a euphoric market should get a sell band")
	}
}

func TestBuildReport_MissingSentimentKeepsRiskSection(t *testing.T) {
	in := fullInput()
	in.Sentiment = model.MarketSentiment{}

	report := BuildReport(in, DefaultConfig())
	riskSec := report.Sections[2]
	if riskSec.Action == model.ActionInsufficientData {
		t.Error("BTC data present: risk section should still be assessed")
	}
	if report.Sections[1].Action != model.ActionInsufficientData {
		t.Error("no sentiment: phase section should degrade")
	}
	if report.Sections[3].Action != model.ActionInsufficientData {
		t.Error("no dominance: altseason section should degrade")
	}
}
