package model

// CrossSignal is the tri-state result of moving-average crossover detection.
type CrossSignal string

const (
	GoldenCross CrossSignal = "GOLDEN_CROSS"
	DeathCross  CrossSignal = "DEATH_CROSS"
	NoCross     CrossSignal = "NONE"
)

// RCITriple holds the three rank-correlation values, each in [-100,100].
type RCITriple struct {
	Short  Metric
	Medium Metric
	Long   Metric
}

// IndicatorSnapshot is an immutable record of the computed indicator values
// for one asset at one point in time. Every field may be absent when the
// series is too short for it; absent fields are excluded from scoring.
type IndicatorSnapshot struct {
	AssetID      string
	CurrentPrice float64

	RSI Metric

	MACD          Metric
	MACDSignal    Metric
	MACDHistogram Metric

	MAShort Metric
	MALong  Metric
	MACross CrossSignal

	// Pi Cycle Top: MA(111) / (2 × MA(350)). PiCycleCrossed reports a cross
	// from below 1 to at-or-above 1 on the last two points.
	PiCycleRatio   Metric
	PiCycleCrossed bool

	RCI RCITriple

	BollingerUpper  Metric
	BollingerMiddle Metric
	BollingerLower  Metric

	StochK Metric
	StochD Metric
}

// MarketSentiment is the per-cycle sentiment snapshot. Fields are metrics so
// a single missing value degrades only the classifiers that need it.
type MarketSentiment struct {
	FearGreed    Metric // 0–100
	BTCDominance Metric // percent, 0–100
	ETHBTCRatio  Metric // positive
}
