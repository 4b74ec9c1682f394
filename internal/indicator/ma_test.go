package indicator

import (
	"errors"
	"math"
	"testing"

	"CycleSentinel/internal/model"
)

func TestSMA_LatestValue(t *testing.T) {
	sma, err := SMA([]float64{1, 2, 3, 4, 5}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(sma-4) > 1e-9 {
		t.Errorf("expected SMA 4, got %.4f", sma)
	}
}

func TestSMA_InsufficientData(t *testing.T) {
	if _, err := SMA([]float64{1, 2}, 3); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestMACrossover_Golden(t *testing.T) {
	// short MA moves from below-or-equal to above the long MA on the last bar
	closes := []float64{10, 9, 8, 7, 9, 13}
	short, long, cross, err := MACrossover(closes, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cross != model.GoldenCross {
		t.Errorf("expected golden cross, got %s", cross)
	}
	if short <= long {
		t.Errorf("after golden cross short MA %.2f should exceed long MA %.2f", short, long)
	}
}

func TestMACrossover_Death(t *testing.T) {
	closes := []float64{10, 11, 12, 13, 11, 7}
	_, _, cross, err := MACrossover(closes, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cross != model.DeathCross {
		t.Errorf("expected death cross, got %s", cross)
	}
}

func TestMACrossover_NoCross(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5}
	_, _, cross, err := MACrossover(closes, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cross != model.NoCross {
		t.Errorf("steady uptrend: expected no cross, got %s", cross)
	}
}

func TestMACrossover_InsufficientData(t *testing.T) {
	closes := []float64{1, 2, 3}
	if _, _, _, err := MACrossover(closes, 2, 3); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}
