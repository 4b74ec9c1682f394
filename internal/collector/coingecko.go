package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"CycleSentinel/internal/model"
)

const (
	defaultCoinGeckoURL = "https://api.coingecko.com/api/v3"
	defaultFearGreedURL = "https://api.alternative.me/fng/"
)

// CoinGeckoFetcher implements Fetcher against the public CoinGecko API plus
// the alternative.me Fear & Greed endpoint.
type CoinGeckoFetcher struct {
	Client       *http.Client
	BaseURL      string
	FearGreedURL string
	APIKey       string // demo API key, sent as a header when set
}

// NewCoinGeckoFetcher creates a fetcher with sane timeouts.
func NewCoinGeckoFetcher(apiKey string) *CoinGeckoFetcher {
	return &CoinGeckoFetcher{
		Client:       &http.Client{Timeout: 30 * time.Second},
		BaseURL:      defaultCoinGeckoURL,
		FearGreedURL: defaultFearGreedURL,
		APIKey:       apiKey,
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

func (f *CoinGeckoFetcher) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if f.APIKey != "" && strings.HasPrefix(rawURL, f.BaseURL) {
		req.Header.Set("x-cg-demo-api-key", f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("rate limited: %w", ErrUpstream)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d from %s: %w", resp.StatusCode, rawURL, ErrUpstream)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", rawURL, err)
	}
	return nil
}

// marketChart is the CoinGecko market_chart payload. Each entry is a
// [timestamp_ms, value] pair.
type marketChart struct {
	Prices       [][2]float64 `json:"prices"`
	TotalVolumes [][2]float64 `json:"total_volumes"`
}

// FetchDailySeries builds a daily series from the market_chart endpoint.
// CoinGecko serves daily close prices, not candles, so each bar carries the
// close in all four price fields.
func (f *CoinGeckoFetcher) FetchDailySeries(ctx context.Context, assetID string, days int) (*model.PriceSeries, error) {
	u := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=%d&interval=daily",
		f.BaseURL, url.PathEscape(assetID), days)

	var chart marketChart
	if err := f.get(ctx, u, &chart); err != nil {
		return nil, err
	}
	if len(chart.Prices) == 0 {
		return nil, fmt.Errorf("no prices for %s: %w", assetID, ErrUpstream)
	}

	volumes := make(map[int64]float64, len(chart.TotalVolumes))
	for _, v := range chart.TotalVolumes {
		volumes[int64(v[0])] = v[1]
	}

	bars := make([]model.OHLCV, 0, len(chart.Prices))
	for _, p := range chart.Prices {
		ts := int64(p[0])
		price := p[1]
		bars = append(bars, model.OHLCV{
			Time:   time.UnixMilli(ts),
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: volumes[ts],
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	bars = dedupeBars(bars)

	return &model.PriceSeries{
		AssetID:      assetID,
		Bars:         bars,
		CurrentPrice: bars[len(bars)-1].Close,
		FetchedAt:    time.Now(),
	}, nil
}

// dedupeBars drops bars sharing a timestamp with their predecessor. The
// market_chart endpoint appends a live partial point that can collide with
// the last daily one.
func dedupeBars(bars []model.OHLCV) []model.OHLCV {
	out := bars[:0]
	for i, b := range bars {
		if i > 0 && !b.Time.After(out[len(out)-1].Time) {
			out[len(out)-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}

// FetchPrices batches all asset IDs into one simple/price call.
func (f *CoinGeckoFetcher) FetchPrices(ctx context.Context, assetIDs []string) (map[string]float64, error) {
	if len(assetIDs) == 0 {
		return map[string]float64{}, nil
	}
	u := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd",
		f.BaseURL, url.QueryEscape(strings.Join(assetIDs, ",")))

	var raw map[string]struct {
		USD float64 `json:"usd"`
	}
	if err := f.get(ctx, u, &raw); err != nil {
		return nil, err
	}

	prices := make(map[string]float64, len(raw))
	for id, p := range raw {
		prices[id] = p.USD
	}
	return prices, nil
}

// FetchBTCDominance reads BTC's market cap percentage from the global
// endpoint.
func (f *CoinGeckoFetcher) FetchBTCDominance(ctx context.Context) (float64, error) {
	var raw struct {
		Data struct {
			MarketCapPercentage map[string]float64 `json:"market_cap_percentage"`
		} `json:"data"`
	}
	if err := f.get(ctx, f.BaseURL+"/global", &raw); err != nil {
		return 0, err
	}
	dom, ok := raw.Data.MarketCapPercentage["btc"]
	if !ok {
		return 0, fmt.Errorf("btc dominance missing: %w", ErrUpstream)
	}
	return dom, nil
}

// FetchFearGreed reads the latest Fear & Greed index value. The API returns
// the value as a string.
func (f *CoinGeckoFetcher) FetchFearGreed(ctx context.Context) (float64, error) {
	var raw struct {
		Data []struct {
			Value string `json:"value"`
		} `json:"data"`
	}
	if err := f.get(ctx, f.FearGreedURL, &raw); err != nil {
		return 0, err
	}
	if len(raw.Data) == 0 {
		return 0, fmt.Errorf("fear & greed empty: %w", ErrUpstream)
	}
	v, err := strconv.ParseFloat(raw.Data[0].Value, 64)
	if err != nil {
		return 0, fmt.Errorf("fear & greed value %q: %w", raw.Data[0].Value, err)
	}
	return v, nil
}
