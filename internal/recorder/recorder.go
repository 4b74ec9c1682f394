package recorder

import (
	"time"

	"CycleSentinel/internal/model"
)

// CycleRecord is one analysis cycle's persisted outcome: the BTC snapshot
// highlights, the risk result and the altseason score.
type CycleRecord struct {
	GeneratedAt    time.Time
	BTCPrice       float64
	RSI            model.Metric
	PiCycleRatio   model.Metric
	RiskScore      int
	RiskLevel      model.RiskLevel
	AltseasonScore model.Metric
	Factors        []model.RiskFactor
}

// SentimentRecord is the raw sentiment snapshot, kept so the next cycle can
// compute ETH/BTC momentum against it.
type SentimentRecord struct {
	FetchedAt    time.Time
	FearGreed    model.Metric
	BTCDominance model.Metric
	ETHBTCRatio  model.Metric
}

// Recorder persists cycle history and serves the previous sentiment
// snapshot back to the engine.
type Recorder interface {
	RecordCycle(rec *CycleRecord) error
	RecordSentiment(rec *SentimentRecord) error
	// PreviousSentiment returns the most recent stored sentiment snapshot,
	// or nil when none exists yet.
	PreviousSentiment() (*SentimentRecord, error)
	// PreviousRisk returns the most recent stored risk score, or -1 when
	// none exists yet.
	PreviousRisk() (int, error)
	Close() error
}
