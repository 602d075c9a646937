// internal/analytics/sla.go
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"opsdash/internal/domain"
)

// Alert types routing the dashboard card to its detail view.
const (
	AlertTypeOutbound = "outbound"
	AlertTypeRequest  = "request"
)

// Card labels for the alert classes.
const (
	labelOverdueOutbound  = "납기 지연 출고"
	labelImminentOutbound = "납기 임박 출고"
	labelRequestBacklog   = "대량 미처리 요청"
)

// GenerateSLAAlerts derives the severity-ranked alert list from shipment
// due dates and the pending-order backlog.
//
// Shipments with a parseable expected date are bucketed by whole days
// until due (ceiling): already past due is high risk, due within the
// imminence window is medium. Dateless shipments are skipped entirely.
// A backlog alert is added once pending orders reach the alert minimum,
// escalating to high severity at the high-water mark.
//
// The list is sorted by descending severity rank with emission order
// preserved on ties. An empty list is the expected no-risk result.
func (a *Analyzer) GenerateSLAAlerts(shipments []domain.ShipmentEvent, pendingTotal int, now time.Time) []domain.SLARiskAlert {
	var overdue, imminent int
	for _, shipment := range shipments {
		due, ok := parseTimestamp(shipment.ExpectedShipDate)
		if !ok {
			continue
		}

		daysUntilDue := int(math.Ceil(due.Sub(now).Hours() / 24))
		if daysUntilDue < 0 {
			overdue++
		} else if daysUntilDue <= a.thresholds.SLAImminentDays {
			imminent++
		}
	}

	alerts := make([]domain.SLARiskAlert, 0, 3)
	if overdue > 0 {
		alerts = append(alerts, domain.SLARiskAlert{
			Type:     AlertTypeOutbound,
			Label:    labelOverdueOutbound,
			Count:    overdue,
			Severity: domain.SeverityHigh,
			Detail:   fmt.Sprintf("출고 예정일이 지난 건이 %d건 있습니다.", overdue),
		})
	}
	if imminent > 0 {
		alerts = append(alerts, domain.SLARiskAlert{
			Type:     AlertTypeOutbound,
			Label:    labelImminentOutbound,
			Count:    imminent,
			Severity: domain.SeverityMedium,
			Detail:   fmt.Sprintf("출고 예정일이 %d일 이내인 건이 %d건 있습니다.", a.thresholds.SLAImminentDays, imminent),
		})
	}

	if pendingTotal >= a.thresholds.BacklogAlertMin {
		severity := domain.SeverityMedium
		if pendingTotal >= a.thresholds.BacklogHighMin {
			severity = domain.SeverityHigh
		}
		alerts = append(alerts, domain.SLARiskAlert{
			Type:     AlertTypeRequest,
			Label:    labelRequestBacklog,
			Count:    pendingTotal,
			Severity: severity,
			Detail:   fmt.Sprintf("미처리 요청이 %d건 누적되어 있습니다.", pendingTotal),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return domain.SeverityRank(alerts[i].Severity) > domain.SeverityRank(alerts[j].Severity)
	})

	return alerts
}
