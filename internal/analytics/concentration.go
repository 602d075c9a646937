// internal/analytics/concentration.go
package analytics

import (
	"sort"

	"opsdash/internal/domain"
)

// topValueCount is the slice of the value-sorted sequence whose share of
// total value is reported as the concentration percentage.
const topValueCount = 10

// ClassifyValueConcentration performs ABC classification over the valued
// inventory and reports per-bucket item counts plus the top-10 value
// share percentage.
//
// Items are walked in stable descending value order, accumulating each
// item's share of total value. An item is bucket A while the cumulative
// share through it stays at or below the A boundary. The first item is
// always A so a dominant single item cannot skip its own bucket. Past A
// the same inclusive test places items in B, and everything beyond the
// B boundary is C.
func (a *Analyzer) ClassifyValueConcentration(items []domain.ValuedItem) domain.ValueConcentration {
	values := make([]float64, 0, len(items))
	total := 0.0
	for _, item := range items {
		value := nonNegative(item.UnitPrice) * nonNegative(item.Quantity)
		values = append(values, value)
		total += value
	}

	if total <= 0 {
		return domain.ValueConcentration{}
	}

	sort.SliceStable(values, func(i, j int) bool {
		return values[i] > values[j]
	})

	var result domain.ValueConcentration
	cumulative := 0.0
	for _, value := range values {
		cumulative += value / total
		switch {
		case cumulative <= a.thresholds.ABCAShare || result.A == 0:
			result.A++
		case cumulative <= a.thresholds.ABCBShare:
			result.B++
		default:
			result.C++
		}
	}

	topValue := 0.0
	for i := 0; i < len(values) && i < topValueCount; i++ {
		topValue += values[i]
	}
	result.Top10Share = sharePercent(topValue, total)

	return result
}
