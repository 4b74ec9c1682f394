package indicator

// PiCycle computes the Pi Cycle Top ratio MA(short) / (2 × MA(long)) for the
// latest bar, and whether the ratio crossed from below 1 to at-or-above 1
// between the two most recent bars. With the default 111/350 periods it
// requires at least 351 closes so both points exist; exactly 350 closes
// yield the ratio with crossed=false.
func PiCycle(closes []float64, shortPeriod, longPeriod int) (ratio float64, crossed bool, err error) {
	if shortPeriod <= 0 || longPeriod <= 0 {
		return 0, false, ErrInvalidPeriod
	}
	if len(closes) < longPeriod {
		return 0, false, ErrInsufficientData
	}

	shortSeries, err := SMASeries(closes, shortPeriod)
	if err != nil {
		return 0, false, err
	}
	longSeries, err := SMASeries(closes, longPeriod)
	if err != nil {
		return 0, false, err
	}

	cur := piRatio(shortSeries[len(shortSeries)-1], longSeries[len(longSeries)-1])
	if len(longSeries) >= 2 {
		prev := piRatio(shortSeries[len(shortSeries)-2], longSeries[len(longSeries)-2])
		crossed = prev < 1 && cur >= 1
	}
	return cur, crossed, nil
}

func piRatio(short, long float64) float64 {
	if long == 0 {
		return 0
	}
	return short / (2 * long)
}
