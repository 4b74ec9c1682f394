package collector

import (
	"context"

	"CycleSentinel/internal/model"
)

// Fetcher is the market data source. All calls take a context so a hung
// upstream cannot stall the analysis cycle past its deadline.
type Fetcher interface {
	// FetchDailySeries returns up to days of daily bars for one asset,
	// oldest first.
	FetchDailySeries(ctx context.Context, assetID string, days int) (*model.PriceSeries, error)
	// FetchPrices returns current USD prices keyed by asset ID.
	FetchPrices(ctx context.Context, assetIDs []string) (map[string]float64, error)
	// FetchBTCDominance returns BTC's share of total market cap in percent.
	FetchBTCDominance(ctx context.Context) (float64, error)
	// FetchFearGreed returns the Fear & Greed index, 0 to 100.
	FetchFearGreed(ctx context.Context) (float64, error)
	Name() string
}
