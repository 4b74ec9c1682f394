package collector

import (
	"context"
	"time"

	"CycleSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Zero-value error fields mean every call succeeds.
type MockFetcher struct {
	Prices     map[string]float64
	Series     map[string]*model.PriceSeries
	Dominance  float64
	FearGreed  float64
	SeriesErr  error
	PricesErr  error
	GlobalErr  error
	FGErr      error
	BasePrices map[string]float64 // fallback for generated series
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailySeries(_ context.Context, assetID string, days int) (*model.PriceSeries, error) {
	if m.SeriesErr != nil {
		return nil, m.SeriesErr
	}
	if s, ok := m.Series[assetID]; ok {
		return s, nil
	}
	base := m.BasePrices[assetID]
	if base == 0 {
		base = 100
	}
	return GenerateSeries(assetID, base, days), nil
}

func (m *MockFetcher) FetchPrices(_ context.Context, assetIDs []string) (map[string]float64, error) {
	if m.PricesErr != nil {
		return nil, m.PricesErr
	}
	out := make(map[string]float64, len(assetIDs))
	for _, id := range assetIDs {
		if p, ok := m.Prices[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (m *MockFetcher) FetchBTCDominance(_ context.Context) (float64, error) {
	if m.GlobalErr != nil {
		return 0, m.GlobalErr
	}
	return m.Dominance, nil
}

func (m *MockFetcher) FetchFearGreed(_ context.Context) (float64, error) {
	if m.FGErr != nil {
		return 0, m.FGErr
	}
	return m.FearGreed, nil
}

// GenerateSeries builds a gently trending daily series around a base price.
func GenerateSeries(assetID string, basePrice float64, days int) *model.PriceSeries {
	bars := make([]model.OHLCV, days)
	start := time.Now().AddDate(0, 0, -days).Truncate(24 * time.Hour)
	for i := range bars {
		p := basePrice * (1 + float64(i-days/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return &model.PriceSeries{
		AssetID:      assetID,
		Bars:         bars,
		CurrentPrice: bars[len(bars)-1].Close,
		FetchedAt:    time.Now(),
	}
}
