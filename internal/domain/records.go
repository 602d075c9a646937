// internal/domain/records.go
package domain

// InventoryItem is a single row of the warehouse on-hand snapshot as
// delivered by the inventory service. Quantities and prices are already
// coerced to numbers upstream; timestamps arrive as strings and are
// parsed (leniently) by the analytics layer.
type InventoryItem struct {
	WarehouseCode  string  `json:"warehouse_code"`
	PartCode       string  `json:"part_code"`
	PartName       string  `json:"part_name"`
	OnHandQty      float64 `json:"on_hand_qty"`
	SafetyStockQty float64 `json:"safety_stock_qty"`
	UnitPrice      float64 `json:"unit_price"`
	LastUpdatedAt  string  `json:"last_updated_at"`
}

// ValuedItem is the price/quantity projection used for value
// concentration analysis. Value (price x quantity) is always derived,
// never stored.
type ValuedItem struct {
	UnitPrice float64 `json:"unit_price"`
	Quantity  float64 `json:"quantity"`
}

// OrderEvent is a dated sample from the order service. OccurredAt is the
// request date for pending orders and the processed date for processed
// ones; it may be empty.
type OrderEvent struct {
	OccurredAt string `json:"occurred_at"`
}

// ShipmentEvent is a dated sample from the outbound shipment service.
// ExpectedShipDate drives SLA lateness; CompletedAt and RequestedAt are
// fallback date sources for trend bucketing.
type ShipmentEvent struct {
	ExpectedShipDate string `json:"expected_ship_date"`
	CompletedAt      string `json:"completed_at"`
	RequestedAt      string `json:"requested_at"`
}
