package model

import (
	"errors"
	"math"
	"time"
)

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the raw price data for one asset in one analysis cycle.
// Timestamps must be strictly increasing; the series is never mutated after
// construction.
type PriceSeries struct {
	AssetID      string
	Bars         []OHLCV
	CurrentPrice float64
	FetchedAt    time.Time
}

// ErrInvalidSeries rejects a series whose data cannot be trusted. The whole
// cycle for that asset is abandoned rather than computed on garbage.
var ErrInvalidSeries = errors.New("invalid price series")

// Validate checks timestamp ordering and numeric sanity. NaN/Inf values are
// rejected explicitly, never coerced.
func (s *PriceSeries) Validate() error {
	for i, b := range s.Bars {
		if i > 0 && !b.Time.After(s.Bars[i-1].Time) {
			return ErrInvalidSeries
		}
		for _, v := range [...]float64{b.Open, b.High, b.Low, b.Close, b.Volume} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrInvalidSeries
			}
		}
	}
	return nil
}

// Closes extracts the close prices in series order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}
