// internal/analytics/trend.go
package analytics

import (
	"fmt"
	"time"

	"opsdash/internal/domain"
)

// Fixed series lengths per timeframe. Zero-count buckets still appear,
// so a series is always complete regardless of data sparsity.
const (
	weekBucketCount  = 7
	monthBucketCount = 6
	yearBucketCount  = 12
)

type trendBucket struct {
	label string
	start time.Time
	end   time.Time
}

// BuildTimeframeSeries buckets the three event collections into the
// selected timeframe's fixed calendar windows, anchored to the midnight
// of now:
//
//   - week: 7 daily buckets covering [today-6, today], oldest first
//   - month: 6 weekly buckets of 7 days, the most recent starting at the
//     current week's Monday
//   - year: 12 calendar months ending with the current month
//
// Each event contributes one date via its collection's fallback chain,
// normalized to midnight; unparseable dates are dropped silently.
// Counting uses half-open [start, end) intervals so adjacent buckets
// never double-count.
func (a *Analyzer) BuildTimeframeSeries(
	timeframe domain.Timeframe,
	pending []domain.OrderEvent,
	processed []domain.OrderEvent,
	outbound []domain.ShipmentEvent,
	now time.Time,
) domain.TimeframeSeries {
	today := startOfDay(now)
	buckets := buildBuckets(timeframe, today)

	pendingDates := orderEventDates(pending)
	processedDates := orderEventDates(processed)
	outboundDates := shipmentEventDates(outbound)

	points := make([]domain.TrendPoint, 0, len(buckets))
	for _, bucket := range buckets {
		points = append(points, domain.TrendPoint{
			Label:     bucket.label,
			Start:     bucket.start,
			End:       bucket.end,
			Pending:   countInRange(pendingDates, bucket.start, bucket.end),
			Processed: countInRange(processedDates, bucket.start, bucket.end),
			Outbound:  countInRange(outboundDates, bucket.start, bucket.end),
		})
	}

	return domain.TimeframeSeries{
		Timeframe: timeframe,
		Points:    points,
		Summary: domain.TrendSummary{
			PrimaryLabel: primaryLabel(timeframe),
			RangeLabel:   fmt.Sprintf("%s ~ %s", buckets[0].label, buckets[len(buckets)-1].label),
		},
	}
}

// SummarizeTrend computes the derived display stats over a built series:
// per-category totals, the processed/(processed+pending) completion rate
// (zero-guarded, rounded percent) and the outbound delta between the two
// most recent buckets.
func SummarizeTrend(series domain.TimeframeSeries) domain.TrendStats {
	var stats domain.TrendStats
	for _, point := range series.Points {
		stats.TotalPending += point.Pending
		stats.TotalProcessed += point.Processed
		stats.TotalOutbound += point.Outbound
	}

	stats.CompletionRate = sharePercent(
		float64(stats.TotalProcessed),
		float64(stats.TotalProcessed+stats.TotalPending),
	)

	if n := len(series.Points); n >= 2 {
		stats.OutboundDelta = series.Points[n-1].Outbound - series.Points[n-2].Outbound
	}

	return stats
}

func buildBuckets(timeframe domain.Timeframe, today time.Time) []trendBucket {
	switch timeframe {
	case domain.TimeframeMonth:
		buckets := make([]trendBucket, 0, monthBucketCount)
		monday := today.AddDate(0, 0, -mondayOffset(today))
		for i := monthBucketCount - 1; i >= 0; i-- {
			start := monday.AddDate(0, 0, -7*i)
			buckets = append(buckets, trendBucket{
				label: dayLabel(start),
				start: start,
				end:   start.AddDate(0, 0, 7),
			})
		}
		return buckets

	case domain.TimeframeYear:
		buckets := make([]trendBucket, 0, yearBucketCount)
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).
			AddDate(0, -(yearBucketCount - 1), 0)
		for i := 0; i < yearBucketCount; i++ {
			start := first.AddDate(0, i, 0)
			buckets = append(buckets, trendBucket{
				label: monthLabel(start),
				start: start,
				end:   start.AddDate(0, 1, 0),
			})
		}
		return buckets

	default:
		buckets := make([]trendBucket, 0, weekBucketCount)
		for i := weekBucketCount - 1; i >= 0; i-- {
			start := today.AddDate(0, 0, -i)
			buckets = append(buckets, trendBucket{
				label: dayLabel(start),
				start: start,
				end:   start.AddDate(0, 0, 1),
			})
		}
		return buckets
	}
}

// mondayOffset is the number of days back from t to its week's Monday.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func dayLabel(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%d.%02d", t.Year(), int(t.Month()))
}

func primaryLabel(timeframe domain.Timeframe) string {
	switch timeframe {
	case domain.TimeframeMonth:
		return "최근 6주"
	case domain.TimeframeYear:
		return "최근 12개월"
	default:
		return "최근 7일"
	}
}

func orderEventDates(events []domain.OrderEvent) []time.Time {
	dates := make([]time.Time, 0, len(events))
	for _, event := range events {
		if t, ok := parseTimestamp(event.OccurredAt); ok {
			dates = append(dates, startOfDay(t))
		}
	}
	return dates
}

func shipmentEventDates(events []domain.ShipmentEvent) []time.Time {
	dates := make([]time.Time, 0, len(events))
	for _, event := range events {
		for _, candidate := range []string{event.ExpectedShipDate, event.CompletedAt, event.RequestedAt} {
			if t, ok := parseTimestamp(candidate); ok {
				dates = append(dates, startOfDay(t))
				break
			}
		}
	}
	return dates
}

func countInRange(dates []time.Time, start, end time.Time) int {
	count := 0
	for _, d := range dates {
		if !d.Before(start) && d.Before(end) {
			count++
		}
	}
	return count
}
