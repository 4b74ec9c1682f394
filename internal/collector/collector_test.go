package collector

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"CycleSentinel/internal/indicator"
	"CycleSentinel/internal/model"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestCollect_HappyPath(t *testing.T) {
	fetcher := &MockFetcher{
		Prices:    map[string]float64{"bitcoin": 50000, "ethereum": 3000},
		Dominance: 52,
		FearGreed: 61,
	}
	col := New(fetcher, []string{"bitcoin", "ethereum"}, 400, indicator.DefaultParams(), quietLogger())

	data, err := col.Collect(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(data.Snapshots))
	}
	if !data.Sentiment.FearGreed.Valid || data.Sentiment.FearGreed.Value != 61 {
		t.Errorf("expected fear & greed 61, got %+v", data.Sentiment.FearGreed)
	}
	if !data.Sentiment.ETHBTCRatio.Valid {
		t.Fatal("expected ETH/BTC ratio from fetched prices")
	}
	if got := data.Sentiment.ETHBTCRatio.Value; got != 3000.0/50000.0 {
		t.Errorf("expected ratio 0.06, got %.4f", got)
	}
	if data.Snapshots["bitcoin"].CurrentPrice != 50000 {
		t.Errorf("current price should come from the live quote, got %.0f", data.Snapshots["bitcoin"].CurrentPrice)
	}
}

func TestCollect_SentimentFailsSoft(t *testing.T) {
	fetcher := &MockFetcher{
		Prices:    map[string]float64{"bitcoin": 50000},
		GlobalErr: errors.New("down"),
		FGErr:     errors.New("down"),
	}
	col := New(fetcher, []string{"bitcoin"}, 100, indicator.DefaultParams(), quietLogger())

	data, err := col.Collect(context.Background())
	if err != nil {
		t.Fatalf("sentiment outage must not fail the cycle: %v", err)
	}
	if data.Sentiment.FearGreed.Valid || data.Sentiment.BTCDominance.Valid {
		t.Error("failed sentiment endpoints should leave metrics absent")
	}
	if len(data.Snapshots) != 1 {
		t.Errorf("expected the asset snapshot regardless, got %d", len(data.Snapshots))
	}
}

func TestCollect_NoUsableData(t *testing.T) {
	fetcher := &MockFetcher{SeriesErr: errors.New("down")}
	col := New(fetcher, []string{"bitcoin", "ethereum"}, 100, indicator.DefaultParams(), quietLogger())

	if _, err := col.Collect(context.Background()); !errors.Is(err, ErrNoUsableData) {
		t.Fatalf("expected ErrNoUsableData, got %v", err)
	}
}

func TestCollect_BadSeriesSkipsAssetOnly(t *testing.T) {
	bad := GenerateSeries("ethereum", 3000, 100)
	bad.Bars[5].Time = bad.Bars[4].Time // break ordering

	fetcher := &MockFetcher{
		Series: map[string]*model.PriceSeries{"ethereum": bad},
	}
	col := New(fetcher, []string{"bitcoin", "ethereum"}, 100, indicator.DefaultParams(), quietLogger())

	data, err := col.Collect(context.Background())
	if err != nil {
		t.Fatalf("one bad asset must not fail the cycle: %v", err)
	}
	if _, ok := data.Snapshots["ethereum"]; ok {
		t.Error("invalid series should be rejected")
	}
	if _, ok := data.Snapshots["bitcoin"]; !ok {
		t.Error("healthy asset should survive")
	}
}
