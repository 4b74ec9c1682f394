package indicator

import (
	"errors"
	"testing"
	"time"

	"CycleSentinel/internal/model"
)

func makeSeries(n int, step float64) *model.PriceSeries {
	bars := make([]model.OHLCV, n)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	price := 100.0
	for i := range bars {
		price += step
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   price - step/2,
			High:   price + 1,
			Low:    price - 1,
			Close:  price,
			Volume: 1000,
		}
	}
	return &model.PriceSeries{AssetID: "bitcoin", Bars: bars, CurrentPrice: price}
}

func TestSnapshot_ShortSeriesDegrades(t *testing.T) {
	// 100 bars: RSI and the short RCI lines resolve, Pi Cycle and the 50/200
	// crossover do not
	snap, err := Snapshot(makeSeries(100, 1), DefaultParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !snap.RSI.Valid {
		t.Error("RSI should be present with 100 bars")
	}
	if snap.PiCycleRatio.Valid {
		t.Error("Pi Cycle needs 350 bars, should be absent")
	}
	if snap.MAShort.Valid || snap.MALong.Valid {
		t.Error("50/200 crossover needs 201 bars, should be absent")
	}
	if !snap.RCI.Short.Valid || !snap.RCI.Medium.Valid || !snap.RCI.Long.Valid {
		t.Error("all RCI lines fit in 100 bars")
	}
}

func TestSnapshot_FullSeries(t *testing.T) {
	snap, err := Snapshot(makeSeries(400, 0.5), DefaultParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !snap.PiCycleRatio.Valid {
		t.Error("Pi Cycle should resolve with 400 bars")
	}
	if !snap.MAShort.Valid || !snap.MALong.Valid {
		t.Error("crossover MAs should resolve with 400 bars")
	}
	if !snap.BollingerMiddle.Valid || !snap.StochK.Valid {
		t.Error("bands and stochastic should resolve with 400 bars")
	}
	if snap.CurrentPrice <= 0 {
		t.Error("current price should carry over from the series")
	}
}

func TestSnapshot_InvalidSeriesRejected(t *testing.T) {
	series := makeSeries(50, 1)
	series.Bars[10].Time = series.Bars[9].Time // break ordering
	if _, err := Snapshot(series, DefaultParams()); !errors.Is(err, model.ErrInvalidSeries) {
		t.Fatalf("expected ErrInvalidSeries, got %v", err)
	}
}

func TestSnapshot_PriceFallsBackToLastClose(t *testing.T) {
	series := makeSeries(50, 1)
	series.CurrentPrice = 0
	snap, err := Snapshot(series, DefaultParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := series.Bars[len(series.Bars)-1].Close
	if snap.CurrentPrice != want {
		t.Errorf("expected fallback to last close %.2f, got %.2f", want, snap.CurrentPrice)
	}
}
