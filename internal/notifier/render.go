package notifier

import (
	"fmt"
	"strings"

	"CycleSentinel/internal/model"
)

// actionText maps the engine's action vocabulary to display text. The
// engine never emits prose; everything human-readable lives here.
var actionText = map[model.Action]string{
	model.ActionInsufficientData: "insufficient data",

	model.ActionAggressiveAccumulation: "accumulate aggressively, capitulation pricing",
	model.ActionGradualAccumulation:    "accumulate gradually",
	model.ActionReduceRiskNow:          "reduce risk now",
	model.ActionTakeProfits:            "take profits",
	model.ActionRotateAltExits:         "rotate altcoin profits to BTC/ETH",
	model.ActionCautiousAccumulation:   "accumulate cautiously",
	model.ActionTrimIntoStrength:       "trim positions into strength",
	model.ActionHold:                   "hold",

	model.ActionAccumulateAggressively: "accumulate aggressively",
	model.ActionAccumulate:             "accumulate",
	model.ActionPrepareExits:           "prepare partial exit plan",
	model.ActionSellPartial:            "sell partial positions",
	model.ActionSellMajor:              "sell majority of risk positions",

	model.ActionGoalAchievable:   "goal achievable, consider converting",
	model.ActionNearGoal:         "close to goal, stay the course",
	model.ActionKeepAccumulating: "keep accumulating",

	model.ActionFocusBTC:     "focus on BTC and ETH",
	model.ActionAwaitSignals: "transition zone, await clearer signals",
	model.ActionMonitorExits: "altseason active, monitor alt exits",

	model.ActionSwapBTCToETH: "swap part of BTC into ETH",
	model.ActionSwapETHToBTC: "swap part of ETH into BTC",
	model.ActionFavorETH:     "favor ETH for new buys",
	model.ActionFavorBTC:     "favor BTC for new buys",
	model.ActionHoldRatio:    "keep current BTC/ETH split",
}

var sectionHeader = map[model.SectionKind]string{
	model.SectionPortfolio:   "💼 <b>Portfolio</b>",
	model.SectionMarketPhase: "🌡 <b>Market Phase</b>",
	model.SectionCycleRisk:   "🚨 <b>Cycle Top Risk</b>",
	model.SectionAltseason:   "🔄 <b>Altseason</b>",
	model.SectionRatio:       "⚖️ <b>BTC/ETH Ratio</b>",
	model.SectionExits:       "📤 <b>Partial Exits</b>",
}

var levelEmoji = map[model.RiskLevel]string{
	model.RiskMinimal:  "🟢",
	model.RiskLow:      "🟢",
	model.RiskModerate: "🟡",
	model.RiskHigh:     "🟠",
	model.RiskCritical: "🔴",
}

// ActionText returns the display text for an action, falling back to the
// raw enum value for anything unmapped.
func ActionText(a model.Action) string {
	if t, ok := actionText[a]; ok {
		return t
	}
	return string(a)
}

// RenderReport formats a full advisory report as a Telegram HTML message.
// prevRisk is the previous cycle's risk score, or negative when unknown.
func RenderReport(report *model.AdvisoryReport, prevRisk int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s <b>CycleSentinel</b> | %s\n", levelEmoji[report.Risk.Level],
		report.GeneratedAt.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Risk %d/100 (%s)%s\n", report.Risk.Score, report.Risk.Level, trendArrow(report.Risk.Score, prevRisk)))

	for _, s := range report.Sections {
		b.WriteString("\n")
		b.WriteString(sectionHeader[s.Kind])
		b.WriteString("\n")
		b.WriteString(s.Analysis)
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("→ %s\n", ActionText(s.Action)))

		if s.Kind == model.SectionCycleRisk {
			for _, f := range report.Risk.Factors {
				b.WriteString(fmt.Sprintf("  • +%d %s\n", f.Points, f.Detail))
			}
		}
		for _, e := range s.Exits {
			b.WriteString(renderExit(e))
		}
	}
	return b.String()
}

func renderExit(e model.ExitAdvice) string {
	line := fmt.Sprintf("  • %s: sell %d%% (score %d", e.Symbol, e.SellPercent, e.LocalScore)
	if e.PnLPercent.Valid {
		line += fmt.Sprintf(", P&L %+.1f%%", e.PnLPercent.Value)
	}
	line += ")"
	if e.Suppressed {
		line += " held back, position at a loss"
	}
	return line + "\n"
}

// RenderSection formats one section on its own, for single-topic command
// replies.
func RenderSection(s model.Section) string {
	var b strings.Builder
	b.WriteString(sectionHeader[s.Kind])
	b.WriteString("\n")
	b.WriteString(s.Analysis)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("→ %s\n", ActionText(s.Action)))
	for _, e := range s.Exits {
		b.WriteString(renderExit(e))
	}
	return b.String()
}

// RenderHelp lists the supported commands.
func RenderHelp() string {
	return strings.Join([]string{
		"<b>CycleSentinel commands</b>",
		"/report  full advisory report now",
		"/portfolio  holdings and goal progress",
		"/help  this message",
	}, "\n")
}

func trendArrow(cur, prev int) string {
	switch {
	case prev < 0 || cur == prev:
		return ""
	case cur > prev:
		return fmt.Sprintf(" ↑ from %d", prev)
	default:
		return fmt.Sprintf(" ↓ from %d", prev)
	}
}
