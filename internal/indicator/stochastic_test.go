package indicator

import (
	"errors"
	"math"
	"testing"
	"time"

	"CycleSentinel/internal/model"
)

func stochBars(closes []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time: start.AddDate(0, 0, i), Open: c, High: c + 1, Low: c - 1, Close: c,
		}
	}
	return bars
}

func TestStochastic_TopOfRange(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	bars := stochBars(closes)
	// push the last close to the window high
	bars[len(bars)-1].Close = bars[len(bars)-1].High

	k, d, err := Stochastic(bars, 14, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != 100 {
		t.Errorf("close at window high: expected %%K 100, got %.2f", k)
	}
	if d <= 50 {
		t.Errorf("rising series: expected high %%D, got %.2f", d)
	}
}

func TestStochastic_FlatRange(t *testing.T) {
	bars := make([]model.OHLCV, 20)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = model.OHLCV{Time: start.AddDate(0, 0, i), Open: 5, High: 5, Low: 5, Close: 5}
	}
	k, d, err := Stochastic(bars, 14, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != 50 || d != 50 {
		t.Errorf("flat range: expected neutral 50/50, got %.2f/%.2f", k, d)
	}
}

func TestStochastic_InsufficientData(t *testing.T) {
	bars := stochBars(make([]float64, 15)) // needs 14+3-1 = 16
	if _, _, err := Stochastic(bars, 14, 3); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestBollinger_KnownWindow(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5}
	upper, middle, lower, err := Bollinger(closes, 5, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(middle-3) > 1e-9 {
		t.Errorf("expected middle 3, got %.4f", middle)
	}
	sigma := math.Sqrt(2)
	if math.Abs(upper-(3+2*sigma)) > 1e-9 || math.Abs(lower-(3-2*sigma)) > 1e-9 {
		t.Errorf("bands off: upper %.4f lower %.4f", upper, lower)
	}
}
