package strategy

import (
	"fmt"
	"strings"
	"time"

	"CycleSentinel/internal/model"
	"CycleSentinel/internal/portfolio"
)

// Input carries everything one analysis cycle collected. PrevSentiment is
// nil on the first run; Snapshots is keyed by asset ID and includes every
// tracked asset, BTC and ETH included.
type Input struct {
	Sentiment     model.MarketSentiment
	PrevSentiment *model.MarketSentiment
	BTC           *model.IndicatorSnapshot
	ETH           *model.IndicatorSnapshot
	Snapshots     map[string]*model.IndicatorSnapshot
	Holdings      []model.Holding
	Targets       model.Targets
	Now           time.Time
}

// BuildReport assembles the full advisory report in its fixed section order.
// Pure and deterministic: the same input always yields the same report, and
// a section whose data is missing degrades to INSUFFICIENT_DATA instead of
// disappearing.
func BuildReport(in Input, cfg Config) *model.AdvisoryReport {
	alt, altOK := DetectAltseason(in.Sentiment, in.PrevSentiment, cfg.Altseason)

	altScore := model.None()
	if altOK {
		altScore = model.Some(alt.Score)
	}
	risk := EvaluateRisk(in.BTC, in.Sentiment, altScore, cfg)

	report := &model.AdvisoryReport{
		GeneratedAt: in.Now,
		Risk:        risk,
		Sections: []model.Section{
			portfolioSection(in),
			phaseSection(in.Sentiment),
			riskSection(in.BTC, risk),
			altseasonSection(alt, altOK),
			ratioSection(in, cfg),
			exitSection(in, risk, alt, altOK, cfg),
		},
	}
	return report
}

func portfolioSection(in Input) model.Section {
	s := model.Section{Kind: model.SectionPortfolio}
	if len(in.Holdings) == 0 {
		s.Analysis = "no holdings configured"
		s.Action = model.ActionInsufficientData
		return s
	}

	a, err := portfolio.Achievement(in.Holdings, in.Targets, snapshotPrice(in.BTC), snapshotPrice(in.ETH))
	if err != nil {
		s.Analysis = fmt.Sprintf("altcoin value $%s, goal cost unknown: %v", a.AltcoinValue.StringFixed(2), err)
		s.Action = model.ActionInsufficientData
		return s
	}

	s.Analysis = fmt.Sprintf("altcoins worth $%s cover %s%% of the %.4f BTC / %.2f ETH goal",
		a.AltcoinValue.StringFixed(2), a.AchievementPct.StringFixed(1), in.Targets.BTC, in.Targets.ETH)
	if len(a.Excluded) > 0 {
		s.Analysis += fmt.Sprintf(" (unpriced: %s)", strings.Join(a.Excluded, ", "))
	}
	s.Action = portfolio.GoalAction(a.AchievementPct)
	return s
}

func phaseSection(sentiment model.MarketSentiment) model.Section {
	s := model.Section{Kind: model.SectionMarketPhase}
	if !sentiment.FearGreed.Valid && !sentiment.BTCDominance.Valid {
		s.Analysis = "market sentiment unavailable"
		s.Action = model.ActionInsufficientData
		return s
	}
	phase, action := ClassifyPhase(sentiment)
	s.Analysis = fmt.Sprintf("market phase %s (Fear & Greed %s, BTC dominance %s)",
		phase, metricString(sentiment.FearGreed, "%.0f"), metricString(sentiment.BTCDominance, "%.1f%%"))
	s.Action = action
	return s
}

func riskSection(btc *model.IndicatorSnapshot, risk model.RiskScore) model.Section {
	s := model.Section{Kind: model.SectionCycleRisk}
	if btc == nil {
		s.Analysis = "BTC price data unavailable, cycle risk not assessed"
		s.Action = model.ActionInsufficientData
		return s
	}
	s.Analysis = fmt.Sprintf("cycle-top risk %d/100 (%s), %d factor(s) active", risk.Score, risk.Level, len(risk.Factors))
	s.Action = riskAction(risk.Level)
	return s
}

func altseasonSection(alt AltseasonStatus, ok bool) model.Section {
	s := model.Section{Kind: model.SectionAltseason}
	if !ok {
		s.Analysis = "BTC dominance unavailable, altseason not assessed"
		s.Action = model.ActionInsufficientData
		return s
	}
	s.Analysis = fmt.Sprintf("altseason score %.0f/100 (%s)", alt.Score, alt.State)
	if !alt.MomentumScore.Valid {
		s.Analysis += ", dominance only, no previous snapshot"
	}
	s.Action = alt.Action
	return s
}

func ratioSection(in Input, cfg Config) model.Section {
	s := model.Section{Kind: model.SectionRatio}
	analysis, action, ok := RatioGuidance(in.Sentiment, in.BTC, in.ETH, cfg.Ratio)
	if !ok {
		s.Analysis = "ETH/BTC ratio unavailable"
		s.Action = model.ActionInsufficientData
		return s
	}
	s.Analysis = analysis
	s.Action = action
	return s
}

func exitSection(in Input, risk model.RiskScore, alt AltseasonStatus, altOK bool, cfg Config) model.Section {
	s := model.Section{Kind: model.SectionExits}
	if len(in.Holdings) == 0 {
		s.Analysis = "no holdings configured"
		s.Action = model.ActionInsufficientData
		return s
	}
	s.Exits = AdviseExits(in.Holdings, in.Snapshots, risk, alt, altOK, cfg)
	selling := 0
	for _, e := range s.Exits {
		if e.SellPercent > 0 {
			selling++
		}
	}
	s.Analysis = fmt.Sprintf("%d of %d holdings flagged for partial exit", selling, len(s.Exits))
	s.Action = riskAction(risk.Level)
	return s
}

func snapshotPrice(snap *model.IndicatorSnapshot) model.Metric {
	if snap == nil || snap.CurrentPrice <= 0 {
		return model.None()
	}
	return model.Some(snap.CurrentPrice)
}

func metricString(m model.Metric, format string) string {
	if !m.Valid {
		return "n/a"
	}
	return fmt.Sprintf(format, m.Value)
}
