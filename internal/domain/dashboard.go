// internal/domain/dashboard.go
package domain

import "time"

// ValueConcentration summarizes ABC classification over the valued
// inventory: per-bucket item counts plus the rounded percentage of total
// value held by the ten highest-value items.
type ValueConcentration struct {
	A          int `json:"a"`
	B          int `json:"b"`
	C          int `json:"c"`
	Top10Share int `json:"top10_share"`
}

// WarehouseRiskSummary aggregates risk tier counts for one warehouse.
// Critical + Warning + Normal always equals Total.
type WarehouseRiskSummary struct {
	WarehouseCode string `json:"warehouse_code"`
	Critical      int    `json:"critical"`
	Warning       int    `json:"warning"`
	Normal        int    `json:"normal"`
	Total         int    `json:"total"`
}

// RiskListItem is a flattened projection of a critical/warning item for
// the "top offenders" card. Ratio is the rounded current/safety stock
// percentage; the list is sorted ascending by it (most at-risk first).
type RiskListItem struct {
	WarehouseCode string   `json:"warehouse_code"`
	PartCode      string   `json:"part_code"`
	PartName      string   `json:"part_name"`
	CurrentQty    float64  `json:"current_qty"`
	SafetyQty     float64  `json:"safety_qty"`
	Ratio         int      `json:"ratio"`
	Severity      Severity `json:"severity"`
}

// StockRiskAssessment is the full safety-stock tiering result.
// RiskItems carries every critical/warning item; callers truncate to
// their display top-N.
type StockRiskAssessment struct {
	WarehouseSummary []WarehouseRiskSummary `json:"warehouse_summary"`
	RiskItems        []RiskListItem         `json:"risk_items"`
	TotalCritical    int                    `json:"total_critical"`
	TotalWarning     int                    `json:"total_warning"`
	TotalNormal      int                    `json:"total_normal"`
}

// InactivityStats counts items with no recorded update inside the
// trailing inactivity window. InactivePercentage is unrounded; the
// display layer rounds it.
type InactivityStats struct {
	Total              int     `json:"total"`
	InactiveCount      int     `json:"inactive_count"`
	InactivePercentage float64 `json:"inactive_percentage"`
}

// SLARiskAlert is one severity-ranked dashboard alert. Alerts are not
// tied 1:1 to input records; each alert class aggregates independently.
type SLARiskAlert struct {
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Count    int      `json:"count"`
	Severity Severity `json:"severity"`
	Detail   string   `json:"detail"`
}

// TrendPoint is one fixed calendar bucket with per-category event
// counts. Buckets are half-open [Start, End).
type TrendPoint struct {
	Label     string    `json:"label"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Pending   int       `json:"pending"`
	Processed int       `json:"processed"`
	Outbound  int       `json:"outbound"`
}

// TrendSummary describes the covered span in the active granularity's
// display convention.
type TrendSummary struct {
	PrimaryLabel string `json:"primary_label"`
	RangeLabel   string `json:"range_label"`
}

// TimeframeSeries is an ordered, fixed-length trend series
// (7 daily / 6 weekly / 12 monthly points), oldest first.
type TimeframeSeries struct {
	Timeframe Timeframe    `json:"timeframe"`
	Points    []TrendPoint `json:"points"`
	Summary   TrendSummary `json:"summary"`
}

// TrendStats holds display stats derived from a built series:
// per-category totals, the zero-guarded completion rate percentage and
// the outbound delta between the two most recent buckets.
type TrendStats struct {
	TotalPending   int `json:"total_pending"`
	TotalProcessed int `json:"total_processed"`
	TotalOutbound  int `json:"total_outbound"`
	CompletionRate int `json:"completion_rate"`
	OutboundDelta  int `json:"outbound_delta"`
}

// DashboardSnapshot bundles every card's data for one refresh cycle.
type DashboardSnapshot struct {
	StockRisk     StockRiskAssessment `json:"stock_risk"`
	Concentration ValueConcentration  `json:"concentration"`
	Inactivity    InactivityStats     `json:"inactivity"`
	Alerts        []SLARiskAlert      `json:"alerts"`
	Trend         TimeframeSeries     `json:"trend"`
	TrendStats    TrendStats          `json:"trend_stats"`
	GeneratedAt   time.Time           `json:"generated_at"`
}
