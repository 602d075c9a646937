// internal/analytics/risk.go
package analytics

import (
	"sort"
	"strings"

	"opsdash/internal/domain"
)

// unknownWarehouse groups items whose record carries no warehouse code.
const unknownWarehouse = "UNKNOWN"

// AssessStockRisk tiers every inventory item against its safety stock
// and aggregates the result per warehouse and globally.
//
// The per-item rule has no cross-item dependency: at or below safety
// stock is critical, at or below safety stock x the warning multiplier
// is warning, everything else is normal. Items with zero safety stock
// can only be critical when on-hand is also zero.
//
// Every critical/warning item lands in RiskItems with its rounded
// current/safety ratio, sorted ascending by ratio (stable, so ties keep
// snapshot order). Warehouse summaries keep first-seen order.
func (a *Analyzer) AssessStockRisk(items []domain.InventoryItem) domain.StockRiskAssessment {
	result := domain.StockRiskAssessment{
		WarehouseSummary: make([]domain.WarehouseRiskSummary, 0),
		RiskItems:        make([]domain.RiskListItem, 0),
	}
	warehouseIndex := make(map[string]int)

	for _, item := range items {
		current := nonNegative(item.OnHandQty)
		safety := nonNegative(item.SafetyStockQty)

		var tier domain.RiskTier
		switch {
		case current <= safety:
			tier = domain.TierCritical
		case current <= safety*a.thresholds.WarningMultiplier:
			tier = domain.TierWarning
		default:
			tier = domain.TierNormal
		}

		warehouse := strings.TrimSpace(item.WarehouseCode)
		if warehouse == "" {
			warehouse = unknownWarehouse
		}

		idx, ok := warehouseIndex[warehouse]
		if !ok {
			idx = len(result.WarehouseSummary)
			warehouseIndex[warehouse] = idx
			result.WarehouseSummary = append(result.WarehouseSummary, domain.WarehouseRiskSummary{
				WarehouseCode: warehouse,
			})
		}
		summary := &result.WarehouseSummary[idx]
		summary.Total++

		switch tier {
		case domain.TierCritical:
			summary.Critical++
			result.TotalCritical++
		case domain.TierWarning:
			summary.Warning++
			result.TotalWarning++
		default:
			summary.Normal++
			result.TotalNormal++
		}

		if tier == domain.TierNormal {
			continue
		}

		severity := domain.SeverityHigh
		if tier == domain.TierWarning {
			severity = domain.SeverityMedium
		}

		result.RiskItems = append(result.RiskItems, domain.RiskListItem{
			WarehouseCode: warehouse,
			PartCode:      resolvePartCode(item.PartCode, item.PartName),
			PartName:      resolvePartName(item.PartCode, item.PartName),
			CurrentQty:    current,
			SafetyQty:     safety,
			Ratio:         ratioPercent(current, safety),
			Severity:      severity,
		})
	}

	sort.SliceStable(result.RiskItems, func(i, j int) bool {
		return result.RiskItems[i].Ratio < result.RiskItems[j].Ratio
	})

	return result
}
