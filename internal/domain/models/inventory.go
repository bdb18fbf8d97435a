package models

import "time"

// MovementType distinguishes stock entries from withdrawals.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// Valid reports whether the movement type is one of the two known values.
func (t MovementType) Valid() bool {
	return t == MovementIn || t == MovementOut
}

// InventoryItem is a tracked catalog entry with its current on-hand count.
type InventoryItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	MinStock    int       `json:"min_stock"`
	Unit        string    `json:"unit"`
	Location    string    `json:"location"`
	LastUpdated time.Time `json:"last_updated"`
}

// IsLowStock reports whether the item sits at or below its alert threshold.
// Always computed from current fields, never cached.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinStock
}

// StockMovement is an immutable snapshot of a single stock change. The item
// name is denormalized on purpose: it is a point-in-time audit record and
// must not change retroactively when the catalog entry is renamed.
type StockMovement struct {
	ID           string       `json:"id"`
	ItemID       string       `json:"item_id"`
	ItemName     string       `json:"item_name"`
	Type         MovementType `json:"type"`
	Quantity     int          `json:"quantity"`
	Date         time.Time    `json:"date"`
	EmployeeName string       `json:"employee_name,omitempty"`
}
