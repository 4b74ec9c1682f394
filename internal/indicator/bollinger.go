package indicator

import "math"

// Bollinger computes the latest Bollinger Bands: middle = SMA(period),
// upper/lower = middle ± stdDev × σ over the same window.
func Bollinger(closes []float64, period int, stdDev float64) (upper, middle, lower float64, err error) {
	middle, err = SMA(closes, period)
	if err != nil {
		return 0, 0, 0, err
	}

	window := closes[len(closes)-period:]
	variance := 0.0
	for _, v := range window {
		diff := v - middle
		variance += diff * diff
	}
	sigma := math.Sqrt(variance / float64(period))

	return middle + stdDev*sigma, middle, middle - stdDev*sigma, nil
}
