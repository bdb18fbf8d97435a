package models

import "time"

// FinancialRecord is one purchase-invoice line item. TotalPrice is computed
// once at creation (quantity times unit price) and stored as-is; it is never
// re-derived afterwards. The item name is a denormalized snapshot, same as
// on StockMovement.
type FinancialRecord struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	Supplier      string    `json:"supplier"`
	Date          time.Time `json:"date"`
	ItemID        string    `json:"item_id"`
	ItemName      string    `json:"item_name"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	TotalPrice    float64   `json:"total_price"`
}
