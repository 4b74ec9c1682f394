package indicator

import (
	"CycleSentinel/internal/model"

	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/trend"
)

// SMASeries computes the simple moving average series. The result has
// len(closes)-period+1 values, aligned so the last value corresponds to the
// last close.
func SMASeries(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}
	if len(closes) < period {
		return nil, ErrInsufficientData
	}
	sma := trend.NewSmaWithPeriod[float64](period)
	return helper.ChanToSlice(sma.Compute(helper.SliceToChan(closes))), nil
}

// SMA returns the latest simple moving average value.
func SMA(closes []float64, period int) (float64, error) {
	series, err := SMASeries(closes, period)
	if err != nil {
		return 0, err
	}
	return series[len(series)-1], nil
}

// MACrossover compares the short-vs-long MA relative position on the current
// and immediately preceding point. A sign change of short−long is a cross.
// Requires enough data for the long MA on both points.
func MACrossover(closes []float64, shortPeriod, longPeriod int) (shortMA, longMA float64, cross model.CrossSignal, err error) {
	if len(closes) < longPeriod+1 {
		return 0, 0, model.NoCross, ErrInsufficientData
	}
	shortSeries, err := SMASeries(closes, shortPeriod)
	if err != nil {
		return 0, 0, model.NoCross, err
	}
	longSeries, err := SMASeries(closes, longPeriod)
	if err != nil {
		return 0, 0, model.NoCross, err
	}

	// Both series end at the last bar, so last/previous elements align.
	curShort, prevShort := shortSeries[len(shortSeries)-1], shortSeries[len(shortSeries)-2]
	curLong, prevLong := longSeries[len(longSeries)-1], longSeries[len(longSeries)-2]

	cross = model.NoCross
	if prevShort <= prevLong && curShort > curLong {
		cross = model.GoldenCross
	} else if prevShort >= prevLong && curShort < curLong {
		cross = model.DeathCross
	}
	return curShort, curLong, cross, nil
}
