package strategy

import (
	"fmt"

	"CycleSentinel/internal/model"
)

// AdviseExits produces a per-holding partial-exit recommendation. Each
// holding starts from the global risk score and earns local bumps from its
// own indicators, then the clamped local score maps to a sell band. Holdings
// without an indicator snapshot still get advice from the global score
// alone.
func AdviseExits(holdings []model.Holding, snaps map[string]*model.IndicatorSnapshot, risk model.RiskScore, alt AltseasonStatus, altOK bool, cfg Config) []model.ExitAdvice {
	advice := make([]model.ExitAdvice, 0, len(holdings))
	for _, h := range holdings {
		advice = append(advice, adviseOne(h, snaps[h.AssetID], risk, alt, altOK, cfg))
	}
	return advice
}

func adviseOne(h model.Holding, snap *model.IndicatorSnapshot, risk model.RiskScore, alt AltseasonStatus, altOK bool, cfg Config) model.ExitAdvice {
	local := risk.Score
	reason := fmt.Sprintf("global risk %d", risk.Score)

	if snap != nil && snap.RSI.Valid {
		switch rsi := snap.RSI.Value; {
		case rsi > 80:
			local += 15
			reason += fmt.Sprintf(", RSI %.0f extreme", rsi)
		case rsi > 70:
			local += 10
			reason += fmt.Sprintf(", RSI %.0f overbought", rsi)
		case rsi > 60:
			local += 5
			reason += fmt.Sprintf(", RSI %.0f elevated", rsi)
		}
	}
	if snap != nil && rciExhausted(snap, cfg.Thresholds) {
		local += 10
		reason += ", RCI exhaustion"
	}
	if altOK && alt.Score > float64(cfg.Altseason.UpperBand) {
		local += 5
		reason += ", altseason peak"
	}
	if local > 100 {
		local = 100
	}
	if local < 0 {
		local = 0
	}

	band := sellBand(local, cfg.Exit)

	pnl := h.PnLPercent()
	suppressed := false
	if cfg.Exit.SuppressLossSales && pnl.Valid && pnl.Value < 0 && band > 0 && risk.Level != model.RiskCritical {
		band = lowerBand(band)
		suppressed = true
		reason += fmt.Sprintf(", held back at %.1f%% loss", pnl.Value)
	}

	return model.ExitAdvice{
		Symbol:      h.Symbol,
		SellPercent: band,
		LocalScore:  local,
		PnLPercent:  pnl,
		Suppressed:  suppressed,
		Reason:      reason,
	}
}

func rciExhausted(snap *model.IndicatorSnapshot, t RiskThresholds) bool {
	return snap.RCI.Short.Valid && snap.RCI.Long.Valid &&
		snap.RCI.Long.Value >= t.RCIExhaustLong && snap.RCI.Short.Value <= t.RCIExhaustShort
}

func sellBand(score int, cfg ExitConfig) int {
	switch {
	case score < cfg.Band10:
		return 0
	case score < cfg.Band25:
		return 10
	case score < cfg.Band50:
		return 25
	default:
		return 50
	}
}

func lowerBand(band int) int {
	switch band {
	case 50:
		return 25
	case 25:
		return 10
	default:
		return 0
	}
}
