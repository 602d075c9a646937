// internal/analytics/analyzer.go
package analytics

// Thresholds holds the business cut points used by the analyzer. The
// defaults are long-standing policy values, not algorithmic necessities,
// which is why they are configurable rather than baked in.
type Thresholds struct {
	// ABCAShare and ABCBShare are the cumulative value-share boundaries
	// (inclusive) for the A and B buckets.
	ABCAShare float64
	ABCBShare float64

	// WarningMultiplier widens the critical band into a warning band:
	// items at or below safety stock x multiplier are warnings.
	WarningMultiplier float64

	// InactivityDays is the trailing window after which an item with no
	// recorded update counts as inactive.
	InactivityDays int

	// SLAImminentDays marks shipments due within this many days as
	// medium-risk.
	SLAImminentDays int

	// BacklogAlertMin and BacklogHighMin are the pending-order counts at
	// which a backlog alert is emitted / escalated to high severity.
	BacklogAlertMin int
	BacklogHighMin  int
}

// DefaultThresholds returns the historical policy values.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ABCAShare:         0.80,
		ABCBShare:         0.95,
		WarningMultiplier: 1.2,
		InactivityDays:    90,
		SLAImminentDays:   3,
		BacklogAlertMin:   10,
		BacklogHighMin:    20,
	}
}

// Analyzer computes the dashboard's derived inventory metrics. Every
// method is a pure function of its inputs and the caller-supplied clock;
// the struct only carries thresholds, so a single Analyzer is safe to
// share across goroutines.
type Analyzer struct {
	thresholds Thresholds
}

// NewAnalyzer creates an analyzer, falling back to the default for any
// threshold left at its zero value.
func NewAnalyzer(t Thresholds) *Analyzer {
	defaults := DefaultThresholds()
	if t.ABCAShare <= 0 {
		t.ABCAShare = defaults.ABCAShare
	}
	if t.ABCBShare <= 0 {
		t.ABCBShare = defaults.ABCBShare
	}
	if t.WarningMultiplier <= 0 {
		t.WarningMultiplier = defaults.WarningMultiplier
	}
	if t.InactivityDays <= 0 {
		t.InactivityDays = defaults.InactivityDays
	}
	if t.SLAImminentDays <= 0 {
		t.SLAImminentDays = defaults.SLAImminentDays
	}
	if t.BacklogAlertMin <= 0 {
		t.BacklogAlertMin = defaults.BacklogAlertMin
	}
	if t.BacklogHighMin <= 0 {
		t.BacklogHighMin = defaults.BacklogHighMin
	}

	return &Analyzer{thresholds: t}
}
