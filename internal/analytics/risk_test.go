package analytics

import (
	"math"
	"testing"

	"opsdash/internal/domain"
)

func TestAssessStockRisk_TierRule(t *testing.T) {
	analyzer := NewAnalyzer(DefaultThresholds())

	tests := []struct {
		name   string
		onHand float64
		safety float64
		tier   domain.RiskTier
		ratio  int
	}{
		{"at safety stock is critical", 10, 10, domain.TierCritical, 100},
		{"below safety stock is critical", 4, 10, domain.TierCritical, 40},
		{"inside warning band", 11, 10, domain.TierWarning, 110},
		{"at warning boundary", 12, 10, domain.TierWarning, 120},
		{"above warning band", 13, 10, domain.TierNormal, 130},
		{"zero safety zero on hand is critical", 0, 0, domain.TierCritical, 0},
		{"zero safety with stock is normal", 5, 0, domain.TierNormal, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzer.AssessStockRisk([]domain.InventoryItem{{
				WarehouseCode:  "WH1",
				PartCode:       "P-1",
				OnHandQty:      tt.onHand,
				SafetyStockQty: tt.safety,
			}})

			var got domain.RiskTier
			switch {
			case result.TotalCritical == 1:
				got = domain.TierCritical
			case result.TotalWarning == 1:
				got = domain.TierWarning
			default:
				got = domain.TierNormal
			}
			if got != tt.tier {
				t.Fatalf("expected tier %s, got %s", tt.tier, got)
			}

			if tt.tier != domain.TierNormal {
				if len(result.RiskItems) != 1 {
					t.Fatalf("expected 1 risk item, got %d", len(result.RiskItems))
				}
				if result.RiskItems[0].Ratio != tt.ratio {
					t.Errorf("expected ratio %d, got %d", tt.ratio, result.RiskItems[0].Ratio)
				}
			} else if len(result.RiskItems) != 0 {
				t.Errorf("normal items must not appear in the risk list")
			}
		})
	}
}

func TestAssessStockRisk_Exhaustiveness(t *testing.T) {
	analyzer := NewAnalyzer(DefaultThresholds())

	items := []domain.InventoryItem{
		{WarehouseCode: "WH1", PartCode: "A", OnHandQty: 0, SafetyStockQty: 5},
		{WarehouseCode: "WH1", PartCode: "B", OnHandQty: 5.5, SafetyStockQty: 5},
		{WarehouseCode: "WH1", PartCode: "C", OnHandQty: 50, SafetyStockQty: 5},
		{WarehouseCode: "WH2", PartCode: "D", OnHandQty: 3, SafetyStockQty: 10},
		{WarehouseCode: "WH2", PartCode: "E", OnHandQty: 100, SafetyStockQty: 10},
	}

	result := analyzer.AssessStockRisk(items)

	if got := result.TotalCritical + result.TotalWarning + result.TotalNormal; got != len(items) {
		t.Fatalf("global tier counts must sum to item count: %d != %d", got, len(items))
	}

	for _, summary := range result.WarehouseSummary {
		if got := summary.Critical + summary.Warning + summary.Normal; got != summary.Total {
			t.Errorf("warehouse %s: tier counts %d != total %d", summary.WarehouseCode, got, summary.Total)
		}
	}

	if len(result.WarehouseSummary) != 2 {
		t.Fatalf("expected 2 warehouses, got %d", len(result.WarehouseSummary))
	}
	// Grouping preserves first-seen order.
	if result.WarehouseSummary[0].WarehouseCode != "WH1" || result.WarehouseSummary[1].WarehouseCode != "WH2" {
		t.Errorf("unexpected warehouse order: %+v", result.WarehouseSummary)
	}
	if result.WarehouseSummary[0].Total != 3 || result.WarehouseSummary[1].Total != 2 {
		t.Errorf("unexpected warehouse totals: %+v", result.WarehouseSummary)
	}
}

func TestAssessStockRisk_RiskListOrdering(t *testing.T) {
	analyzer := NewAnalyzer(DefaultThresholds())

	items := []domain.InventoryItem{
		{WarehouseCode: "WH1", PartCode: "high", OnHandQty: 11, SafetyStockQty: 10},
		{WarehouseCode: "WH1", PartCode: "low", OnHandQty: 1, SafetyStockQty: 10},
		{WarehouseCode: "WH1", PartCode: "mid-first", OnHandQty: 5, SafetyStockQty: 10},
		{WarehouseCode: "WH1", PartCode: "mid-second", OnHandQty: 50, SafetyStockQty: 100},
	}

	result := analyzer.AssessStockRisk(items)
	if len(result.RiskItems) != 4 {
		t.Fatalf("expected 4 risk items, got %d", len(result.RiskItems))
	}

	for i := 1; i < len(result.RiskItems); i++ {
		if result.RiskItems[i-1].Ratio > result.RiskItems[i].Ratio {
			t.Fatalf("risk list not sorted ascending by ratio: %+v", result.RiskItems)
		}
	}

	// Ties keep snapshot order (stable sort).
	if result.RiskItems[1].PartCode != "mid-first" || result.RiskItems[2].PartCode != "mid-second" {
		t.Errorf("tied ratios must keep original order: %+v", result.RiskItems)
	}

	if result.RiskItems[0].Severity != domain.SeverityHigh {
		t.Errorf("critical item must map to high severity")
	}
	if result.RiskItems[3].Severity != domain.SeverityMedium {
		t.Errorf("warning item must map to medium severity")
	}
}

func TestAssessStockRisk_NameAndWarehouseFallbacks(t *testing.T) {
	analyzer := NewAnalyzer(DefaultThresholds())

	items := []domain.InventoryItem{
		{PartCode: "", PartName: "육각 볼트", OnHandQty: 0, SafetyStockQty: 1},
		{PartCode: "BOLT-01", PartName: "", OnHandQty: 0, SafetyStockQty: 1},
		{PartCode: "", PartName: "", OnHandQty: 0, SafetyStockQty: 1},
	}

	result := analyzer.AssessStockRisk(items)
	if len(result.RiskItems) != 3 {
		t.Fatalf("expected 3 risk items, got %d", len(result.RiskItems))
	}

	byName := result.RiskItems
	if byName[0].PartCode != "육각 볼트" || byName[0].PartName != "육각 볼트" {
		t.Errorf("missing code must fall back to name: %+v", byName[0])
	}
	if byName[1].PartCode != "BOLT-01" || byName[1].PartName != "BOLT-01" {
		t.Errorf("missing name must fall back to code: %+v", byName[1])
	}
	if byName[2].PartCode != "-" || byName[2].PartName != "미지정 부품" {
		t.Errorf("empty code and name must use placeholders: %+v", byName[2])
	}

	for _, item := range result.RiskItems {
		if item.WarehouseCode != "UNKNOWN" {
			t.Errorf("missing warehouse code must default to UNKNOWN, got %q", item.WarehouseCode)
		}
	}
}

func TestAssessStockRisk_MalformedQuantities(t *testing.T) {
	analyzer := NewAnalyzer(DefaultThresholds())

	items := []domain.InventoryItem{
		{WarehouseCode: "WH1", PartCode: "A", OnHandQty: math.NaN(), SafetyStockQty: 10},
		{WarehouseCode: "WH1", PartCode: "B", OnHandQty: -3, SafetyStockQty: 10},
	}

	result := analyzer.AssessStockRisk(items)

	// Both coerce to on-hand 0 and classify critical with ratio 0.
	if result.TotalCritical != 2 {
		t.Fatalf("coerced quantities must classify, got %+v", result)
	}
	for _, item := range result.RiskItems {
		if item.CurrentQty != 0 || item.Ratio != 0 {
			t.Errorf("malformed quantity must coerce to 0, got %+v", item)
		}
	}
}

func TestAssessStockRisk_Empty(t *testing.T) {
	analyzer := NewAnalyzer(DefaultThresholds())

	result := analyzer.AssessStockRisk(nil)
	if len(result.WarehouseSummary) != 0 || len(result.RiskItems) != 0 {
		t.Errorf("empty input must produce empty (non-nil) slices: %+v", result)
	}
	if result.WarehouseSummary == nil || result.RiskItems == nil {
		t.Errorf("result slices must be allocated, not nil")
	}
}
