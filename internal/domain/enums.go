// internal/domain/enums.go
package domain

import "strings"

// RiskTier classifies an inventory item against its safety stock.
// Tiers are mutually exclusive and collectively exhaustive.
type RiskTier string

const (
	TierCritical RiskTier = "critical"
	TierWarning  RiskTier = "warning"
	TierNormal   RiskTier = "normal"
)

// Severity ranks an alert or risk-list entry for display ordering.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

var severityRanks = map[Severity]int{
	SeverityHigh:   3,
	SeverityMedium: 2,
	SeverityLow:    1,
}

// SeverityRank returns the sort weight for a severity (higher sorts
// first). Unknown severities rank below low.
func SeverityRank(s Severity) int {
	return severityRanks[s]
}

// Timeframe selects the trend bucketing granularity.
type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

// ParseTimeframe maps a query-string value to a Timeframe,
// defaulting to week for anything unrecognized.
func ParseTimeframe(value string) Timeframe {
	switch Timeframe(strings.ToLower(strings.TrimSpace(value))) {
	case TimeframeMonth:
		return TimeframeMonth
	case TimeframeYear:
		return TimeframeYear
	default:
		return TimeframeWeek
	}
}
