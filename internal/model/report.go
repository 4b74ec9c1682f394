package model

import "time"

// SectionKind identifies a report section. Order in the report is fixed by
// the aggregator, not by the consumer.
type SectionKind string

const (
	SectionPortfolio   SectionKind = "PORTFOLIO"
	SectionMarketPhase SectionKind = "MARKET_PHASE"
	SectionCycleRisk   SectionKind = "CYCLE_RISK"
	SectionAltseason   SectionKind = "ALTSEASON"
	SectionRatio       SectionKind = "BTC_ETH_RATIO"
	SectionExits       SectionKind = "PARTIAL_EXITS"
)

// Action is a closed vocabulary of recommended actions. The engine emits
// enum values only; mapping to display text is the presentation layer's job.
type Action string

const (
	// Shared degradation marker: upstream data was unavailable for the
	// section, which is reported rather than omitted.
	ActionInsufficientData Action = "INSUFFICIENT_DATA"

	// Market-phase actions.
	ActionAggressiveAccumulation Action = "AGGRESSIVE_ACCUMULATION"
	ActionGradualAccumulation    Action = "GRADUAL_ACCUMULATION"
	ActionReduceRiskNow          Action = "REDUCE_RISK_NOW"
	ActionTakeProfits            Action = "TAKE_PROFITS"
	ActionRotateAltExits         Action = "ROTATE_ALT_EXITS"
	ActionCautiousAccumulation   Action = "CAUTIOUS_ACCUMULATION"
	ActionTrimIntoStrength       Action = "TRIM_INTO_STRENGTH"
	ActionHold                   Action = "HOLD"

	// Cycle-risk actions, one per risk band.
	ActionAccumulateAggressively Action = "ACCUMULATE_AGGRESSIVELY"
	ActionAccumulate             Action = "ACCUMULATE"
	ActionPrepareExits           Action = "PREPARE_PARTIAL_EXITS"
	ActionSellPartial            Action = "SELL_PARTIAL"
	ActionSellMajor              Action = "SELL_MAJOR"

	// Portfolio actions.
	ActionGoalAchievable   Action = "GOAL_ACHIEVABLE"
	ActionNearGoal         Action = "NEAR_GOAL"
	ActionKeepAccumulating Action = "KEEP_ACCUMULATING"

	// Altseason actions.
	ActionFocusBTC     Action = "FOCUS_BTC_ETH"
	ActionAwaitSignals Action = "AWAIT_SIGNALS"
	ActionMonitorExits Action = "MONITOR_ALT_EXITS"

	// BTC/ETH ratio actions.
	ActionSwapBTCToETH Action = "SWAP_BTC_TO_ETH"
	ActionSwapETHToBTC Action = "SWAP_ETH_TO_BTC"
	ActionFavorETH     Action = "FAVOR_ETH"
	ActionFavorBTC     Action = "FAVOR_BTC"
	ActionHoldRatio    Action = "HOLD_RATIO"
)

// ExitAdvice is the per-holding liquidation recommendation.
type ExitAdvice struct {
	Symbol       string
	SellPercent  int // 0, 10, 25, or 50
	LocalScore   int
	PnLPercent   Metric
	Suppressed   bool // loss suppression lowered the band
	Reason       string
}

// Section pairs a terse analysis statement with one recommended action.
type Section struct {
	Kind     SectionKind
	Analysis string
	Action   Action
	Exits    []ExitAdvice // populated for SectionExits only
}

// AdvisoryReport is the ordered decision report for one analysis cycle.
// Immutable once built.
type AdvisoryReport struct {
	GeneratedAt time.Time
	Sections    []Section
	Risk        RiskScore
}
