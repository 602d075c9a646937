// internal/analytics/inactivity.go
package analytics

import (
	"time"

	"opsdash/internal/domain"
)

// DetectInactivity counts items with no recorded update within the
// trailing inactivity window ending at now. The boundary is inclusive:
// an item last updated exactly the window length ago is inactive.
//
// Items with an unparseable timestamp are conservatively excluded from
// the inactive count rather than failing the scan. The percentage is
// left unrounded; the display layer owns formatting.
func (a *Analyzer) DetectInactivity(items []domain.InventoryItem, now time.Time) domain.InactivityStats {
	cutoff := now.Add(-time.Duration(a.thresholds.InactivityDays) * 24 * time.Hour)

	stats := domain.InactivityStats{Total: len(items)}
	for _, item := range items {
		updatedAt, ok := parseTimestamp(item.LastUpdatedAt)
		if !ok {
			continue
		}
		if !updatedAt.After(cutoff) {
			stats.InactiveCount++
		}
	}

	if stats.Total > 0 {
		stats.InactivePercentage = 100 * float64(stats.InactiveCount) / float64(stats.Total)
	}

	return stats
}
