package indicator

import "errors"

// ErrInsufficientData reports that a series is too short for the requested
// indicator. The caller excludes the factor from scoring; it must never be
// treated as zero.
var ErrInsufficientData = errors.New("insufficient data")

// ErrInvalidPeriod reports a non-positive period parameter.
var ErrInvalidPeriod = errors.New("period must be positive")

// Params holds every indicator period used by the snapshot computation.
type Params struct {
	RSIPeriod  int
	MACDFast   int
	MACDSlow   int
	MACDSignal int

	MAShort int
	MALong  int

	PiCycleShort int
	PiCycleLong  int

	RCIPeriods [3]int // short, medium, long

	BollingerPeriod int
	BollingerStdDev float64

	StochK int
	StochD int
}

// DefaultParams returns the conventional settings: RSI 14, MACD 12/26/9,
// MA 50/200, Pi Cycle 111/350, RCI 9/26/52, Bollinger 20/2, stochastic 14/3.
func DefaultParams() Params {
	return Params{
		RSIPeriod:       14,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
		MAShort:         50,
		MALong:          200,
		PiCycleShort:    111,
		PiCycleLong:     350,
		RCIPeriods:      [3]int{9, 26, 52},
		BollingerPeriod: 20,
		BollingerStdDev: 2,
		StochK:          14,
		StochD:          3,
	}
}
