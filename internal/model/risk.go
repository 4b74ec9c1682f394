package model

// RiskLevel is the categorical band of a cycle-top risk score.
type RiskLevel string

const (
	RiskMinimal  RiskLevel = "MINIMAL"  // 0–20
	RiskLow      RiskLevel = "LOW"      // 21–40
	RiskModerate RiskLevel = "MODERATE" // 41–60
	RiskHigh     RiskLevel = "HIGH"     // 61–80
	RiskCritical RiskLevel = "CRITICAL" // 81–100
)

// LevelForScore maps a 0–100 score to its band.
func LevelForScore(score int) RiskLevel {
	switch {
	case score <= 20:
		return RiskMinimal
	case score <= 40:
		return RiskLow
	case score <= 60:
		return RiskModerate
	case score <= 80:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// RiskFactor is one triggered contribution to the total risk score.
type RiskFactor struct {
	Name   string
	Points int
	Detail string
}

// RiskScore is the aggregated cycle-top risk: clamped to [0,100], with the
// list of factors that actually fired.
type RiskScore struct {
	Score   int
	Level   RiskLevel
	Factors []RiskFactor
}
