package indicator

import "sort"

// RCI computes the Rank Correlation Index over the trailing `period` closes:
// the Spearman correlation between price rank and time rank, scaled to
// [-100,100]. +100 means every bar closed higher than the one before it
// (perfect uptrend persistence), −100 a perfect downtrend. A flat window is
// defined as 0, not NaN.
func RCI(closes []float64, period int) (float64, error) {
	if period <= 1 {
		return 0, ErrInvalidPeriod
	}
	if len(closes) < period {
		return 0, ErrInsufficientData
	}

	window := closes[len(closes)-period:]
	flat := true
	for _, v := range window {
		if v != window[0] {
			flat = false
			break
		}
	}
	if flat {
		return 0, nil
	}

	priceRanks := averageRanks(window)
	var dSquared float64
	for i, r := range priceRanks {
		timeRank := float64(i + 1)
		d := r - timeRank
		dSquared += d * d
	}

	n := float64(period)
	return (1 - (6*dSquared)/(n*(n*n-1))) * 100, nil
}

// RCITriple computes the three RCI lines for the configured periods. A line
// whose period exceeds the series length is absent, not zero.
func RCITriple(closes []float64, periods [3]int) (short, medium, long float64, shortOK, mediumOK, longOK bool) {
	if v, err := RCI(closes, periods[0]); err == nil {
		short, shortOK = v, true
	}
	if v, err := RCI(closes, periods[1]); err == nil {
		medium, mediumOK = v, true
	}
	if v, err := RCI(closes, periods[2]); err == nil {
		long, longOK = v, true
	}
	return
}

// averageRanks assigns 1-based ranks, ties sharing the average of their
// positions (standard Spearman treatment).
func averageRanks(values []float64) []float64 {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		avg := float64(i+j+2) / 2 // ranks are 1-based
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}
