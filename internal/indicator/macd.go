package indicator

import (
	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/trend"
)

// MACD computes the latest MACD line, signal line, and histogram using
// exponential moving averages over closing prices. Requires slow+signal
// closes.
func MACD(closes []float64, fast, slow, signal int) (macd, signalLine, histogram float64, err error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return 0, 0, 0, ErrInvalidPeriod
	}
	if len(closes) < slow+signal {
		return 0, 0, 0, ErrInsufficientData
	}

	m := trend.NewMacdWithPeriod[float64](fast, slow, signal)
	macdChan, signalChan := m.Compute(helper.SliceToChan(closes))

	// Both output channels are fed in lockstep by one unbuffered duplicator;
	// they must be drained concurrently or the producer blocks.
	signalDone := make(chan []float64, 1)
	go func() { signalDone <- helper.ChanToSlice(signalChan) }()
	macdSeries := helper.ChanToSlice(macdChan)
	signalSeries := <-signalDone
	if len(macdSeries) == 0 || len(signalSeries) == 0 {
		return 0, 0, 0, ErrInsufficientData
	}

	macd = macdSeries[len(macdSeries)-1]
	signalLine = signalSeries[len(signalSeries)-1]
	return macd, signalLine, macd - signalLine, nil
}
