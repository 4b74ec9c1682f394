package collector

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"CycleSentinel/internal/indicator"
	"CycleSentinel/internal/model"
)

// ErrUpstream marks a data source failure as transient; the cycle retries
// next tick instead of treating it as a bug.
var ErrUpstream = errors.New("upstream data source error")

// ErrNoUsableData means not a single tracked asset produced a valid series.
var ErrNoUsableData = errors.New("no usable market data this cycle")

// CycleData is everything one analysis cycle collected. Sentiment fields
// are Metrics so a failed sentiment endpoint degrades that field instead of
// the whole cycle.
type CycleData struct {
	Sentiment model.MarketSentiment
	Series    map[string]*model.PriceSeries
	Snapshots map[string]*model.IndicatorSnapshot
	Prices    map[string]float64
	FetchedAt time.Time
}

// Collector fetches market data for the tracked assets and computes their
// indicator snapshots.
type Collector struct {
	fetcher Fetcher
	assets  []string // asset IDs, BTC and ETH first by convention
	days    int
	params  indicator.Params
	log     *logrus.Logger
}

// New creates a Collector. days controls the daily series depth; the long
// Pi Cycle average needs at least 350 bars to resolve.
func New(fetcher Fetcher, assets []string, days int, params indicator.Params, log *logrus.Logger) *Collector {
	return &Collector{fetcher: fetcher, assets: assets, days: days, params: params, log: log}
}

// Collect runs one fetch pass. Sentiment pieces and individual assets fail
// soft; the error return fires only when every asset came back unusable.
func (c *Collector) Collect(ctx context.Context) (*CycleData, error) {
	data := &CycleData{
		Series:    make(map[string]*model.PriceSeries, len(c.assets)),
		Snapshots: make(map[string]*model.IndicatorSnapshot, len(c.assets)),
		FetchedAt: time.Now(),
	}

	data.Sentiment = c.collectSentiment(ctx)

	prices, err := c.fetcher.FetchPrices(ctx, c.assets)
	if err != nil {
		c.log.WithError(err).Warn("current prices unavailable, falling back to last closes")
		prices = map[string]float64{}
	}
	data.Prices = prices

	if btc, eth := prices["bitcoin"], prices["ethereum"]; btc > 0 && eth > 0 {
		data.Sentiment.ETHBTCRatio = model.Some(eth / btc)
	}

	for _, id := range c.assets {
		series, err := c.fetcher.FetchDailySeries(ctx, id, c.days)
		if err != nil {
			c.log.WithError(err).WithField("asset", id).Warn("series fetch failed, asset skipped")
			continue
		}
		if p, ok := prices[id]; ok && p > 0 {
			series.CurrentPrice = p
		}
		snap, err := indicator.Snapshot(series, c.params)
		if err != nil {
			c.log.WithError(err).WithField("asset", id).Warn("series rejected, asset skipped")
			continue
		}
		data.Series[id] = series
		data.Snapshots[id] = snap
	}

	if len(data.Snapshots) == 0 {
		return nil, ErrNoUsableData
	}
	return data, nil
}

func (c *Collector) collectSentiment(ctx context.Context) model.MarketSentiment {
	var s model.MarketSentiment

	if fg, err := c.fetcher.FetchFearGreed(ctx); err != nil {
		c.log.WithError(err).Warn("fear & greed unavailable")
	} else {
		s.FearGreed = model.Some(fg)
	}

	if dom, err := c.fetcher.FetchBTCDominance(ctx); err != nil {
		c.log.WithError(err).Warn("btc dominance unavailable")
	} else {
		s.BTCDominance = model.Some(dom)
	}

	return s
}
