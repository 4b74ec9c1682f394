package strategy

import (
	"fmt"

	"CycleSentinel/internal/model"
)

// RatioGuidance compares the ETH/BTC ratio against its historical reference
// points and each asset's RSI to suggest rebalancing between the two. A
// missing RSI reads as neutral 50; a missing ratio means no guidance.
func RatioGuidance(sentiment model.MarketSentiment, btc, eth *model.IndicatorSnapshot, cfg RatioConfig) (analysis string, action model.Action, ok bool) {
	if !sentiment.ETHBTCRatio.Valid {
		return "", model.ActionInsufficientData, false
	}
	ratio := sentiment.ETHBTCRatio.Value

	btcRSI, ethRSI := 50.0, 50.0
	if btc != nil {
		btcRSI = btc.RSI.Or(50)
	}
	if eth != nil {
		ethRSI = eth.RSI.Or(50)
	}

	switch {
	case ratio >= cfg.ExtremeHigh && ethRSI > 70:
		return fmt.Sprintf("ETH/BTC %.4f at historic high with ETH RSI %.0f overbought", ratio, ethRSI),
			model.ActionSwapETHToBTC, true
	case ratio <= cfg.Low && btcRSI > 70:
		return fmt.Sprintf("ETH/BTC %.4f at historic low with BTC RSI %.0f overbought", ratio, btcRSI),
			model.ActionSwapBTCToETH, true
	case ratio <= cfg.Low:
		return fmt.Sprintf("ETH/BTC %.4f near historic low, ETH cheap in BTC terms", ratio),
			model.ActionFavorETH, true
	case ratio >= cfg.High:
		return fmt.Sprintf("ETH/BTC %.4f elevated, BTC favored for new allocation", ratio),
			model.ActionFavorBTC, true
	default:
		return fmt.Sprintf("ETH/BTC %.4f inside its usual range", ratio),
			model.ActionHoldRatio, true
	}
}
