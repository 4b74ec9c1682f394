package indicator

import "CycleSentinel/internal/model"

// Stochastic computes the latest stochastic oscillator values: %K over
// kPeriod bars and %D as the dPeriod-bar average of %K. A flat high/low
// range yields the neutral 50.
func Stochastic(bars []model.OHLCV, kPeriod, dPeriod int) (k, d float64, err error) {
	if kPeriod <= 0 || dPeriod <= 0 {
		return 0, 0, ErrInvalidPeriod
	}
	if len(bars) < kPeriod+dPeriod-1 {
		return 0, 0, ErrInsufficientData
	}

	kValues := make([]float64, dPeriod)
	for i := 0; i < dPeriod; i++ {
		end := len(bars) - i
		kValues[dPeriod-1-i] = stochK(bars[end-kPeriod : end])
	}

	sum := 0.0
	for _, v := range kValues {
		sum += v
	}
	return kValues[dPeriod-1], sum / float64(dPeriod), nil
}

func stochK(window []model.OHLCV) float64 {
	highest, lowest := window[0].High, window[0].Low
	for _, b := range window[1:] {
		if b.High > highest {
			highest = b.High
		}
		if b.Low < lowest {
			lowest = b.Low
		}
	}
	if highest == lowest {
		return 50
	}
	return (window[len(window)-1].Close - lowest) / (highest - lowest) * 100
}
