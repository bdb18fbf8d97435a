package models

// LoginRequest opens a new session. The gate is cosmetic: any non-empty
// identity is accepted.
type LoginRequest struct {
	Name string `json:"name" binding:"required"`
	Unit string `json:"unit" binding:"required"`
	City string `json:"city" binding:"required"`
}

// ProfileUpdateRequest edits the session profile after login.
type ProfileUpdateRequest struct {
	UserName string `json:"user_name" binding:"required"`
	UnitName string `json:"unit_name" binding:"required"`
	City     string `json:"city" binding:"required"`
}

// ProductRequest registers a new catalog item or fully replaces an existing one.
type ProductRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Quantity int    `json:"quantity" binding:"min=0"`
	MinStock int    `json:"min_stock" binding:"min=0"`
	Unit     string `json:"unit" binding:"required"`
	Location string `json:"location"`
}

// MovementRequest records a manual stock entry or withdrawal.
type MovementRequest struct {
	ItemID       string       `json:"item_id" binding:"required"`
	Type         MovementType `json:"type" binding:"required,oneof=IN OUT"`
	Quantity     int          `json:"quantity" binding:"required,gt=0"`
	EmployeeName string       `json:"employee_name"`
}

// InvoiceRequest registers a purchase invoice line against a catalog item.
type InvoiceRequest struct {
	InvoiceNumber string  `json:"invoice_number" binding:"required"`
	Supplier      string  `json:"supplier" binding:"required"`
	Date          string  `json:"date"`
	ItemID        string  `json:"item_id" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice     float64 `json:"unit_price" binding:"required,gt=0"`
}

// ChatRequest carries one user message to the warehouse assistant.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatReply is the assistant's markdown-formatted answer or a fallback string.
type ChatReply struct {
	Reply string `json:"reply"`
}
