package strategy

// RiskWeights are the points each cycle-top factor contributes when its
// trigger condition holds. Tiers within one factor are mutually exclusive;
// only the highest applicable tier counts.
type RiskWeights struct {
	PiCycleTriggered   int
	PiCycleApproaching int
	RSIExtreme         int
	RSIOverbought      int
	RCIExhaustion      int
	RCIWeakening       int
	AltseasonPeak      int
	FearGreedExtreme   int
	FearGreedHigh      int
}

// RiskThresholds are the trigger conditions for the factors above.
type RiskThresholds struct {
	PiCycleApproach  float64 // ratio at-or-above this (and below 1) = approaching
	RSIExtreme       float64
	RSIOverbought    float64
	RCIExhaustLong   float64 // long-term RCI still at least this...
	RCIExhaustShort  float64 // ...while short-term RCI at most this = exhaustion
	RCIWeakenShort   float64 // partial divergence bound
	FearGreedExtreme float64
	FearGreedHigh    float64
}

// AltseasonConfig tunes the dominance/momentum combination of the
// altseason detector.
type AltseasonConfig struct {
	DominanceExtremeLow  float64 // dominance at-or-below this scores 100
	DominanceExtremeHigh float64 // dominance at-or-above this scores 0

	MomentumVeryStrong float64 // ETH/BTC % change magnitudes
	MomentumStrong     float64
	MomentumWeak       float64

	DominanceWeight float64
	MomentumWeight  float64

	LowerBand int // below: BTC_DOMINANCE
	UpperBand int // above: ALTSEASON (and the risk scorer's "peak")
}

// ExitConfig tunes the partial-exit advisor.
type ExitConfig struct {
	Band10 int // local score at-or-above: sell 10%
	Band25 int
	Band50 int

	// SuppressLossSales drops a losing holding's recommendation one band
	// unless global risk is CRITICAL. A policy choice, not a law; see config
	// documentation.
	SuppressLossSales bool
}

// RatioConfig holds the historical ETH/BTC ratio reference points for swap
// guidance.
type RatioConfig struct {
	Low         float64
	High        float64
	ExtremeHigh float64
}

// Config bundles every engine threshold. All values have working defaults;
// the config loader overrides them from YAML.
type Config struct {
	Weights    RiskWeights
	Thresholds RiskThresholds
	Altseason  AltseasonConfig
	Exit       ExitConfig
	Ratio      RatioConfig
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Weights: RiskWeights{
			PiCycleTriggered:   30,
			PiCycleApproaching: 15,
			RSIExtreme:         25,
			RSIOverbought:      15,
			RCIExhaustion:      20,
			RCIWeakening:       10,
			AltseasonPeak:      15,
			FearGreedExtreme:   20,
			FearGreedHigh:      10,
		},
		Thresholds: RiskThresholds{
			PiCycleApproach:  0.9,
			RSIExtreme:       80,
			RSIOverbought:    70,
			RCIExhaustLong:   50,
			RCIExhaustShort:  0,
			RCIWeakenShort:   30,
			FearGreedExtreme: 80,
			FearGreedHigh:    70,
		},
		Altseason: AltseasonConfig{
			DominanceExtremeLow:  40,
			DominanceExtremeHigh: 60,
			MomentumVeryStrong:   5,
			MomentumStrong:       2,
			MomentumWeak:         0.5,
			DominanceWeight:      0.6,
			MomentumWeight:       0.4,
			LowerBand:            33,
			UpperBand:            66,
		},
		Exit: ExitConfig{
			Band10:            60,
			Band25:            75,
			Band50:            85,
			SuppressLossSales: true,
		},
		Ratio: RatioConfig{
			Low:         0.04,
			High:        0.08,
			ExtremeHigh: 0.10,
		},
	}
}
