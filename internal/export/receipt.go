package export

import (
	"time"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
)

// Receipt is the printable withdrawal-declaration view of one OUT movement.
// Everything here is a read-only snapshot handed to the rendering layer.
type Receipt struct {
	UnitName     string    `json:"unit_name"`
	City         string    `json:"city"`
	MovementID   string    `json:"movement_id"`
	Date         time.Time `json:"date"`
	ItemName     string    `json:"item_name"`
	Category     string    `json:"category"`
	Unit         string    `json:"unit"`
	Quantity     int       `json:"quantity"`
	EmployeeName string    `json:"employee_name"`
	IssuedBy     string    `json:"issued_by"`
}

// BuildReceipt assembles the receipt for a movement. The item snapshot comes
// from the movement itself where possible so renamed catalog entries do not
// rewrite old receipts; category and unit fall back to the current catalog
// entry when available.
func BuildReceipt(profile models.Profile, movement models.StockMovement, item *models.InventoryItem) Receipt {
	r := Receipt{
		UnitName:     profile.UnitName,
		City:         profile.City,
		MovementID:   movement.ID,
		Date:         movement.Date,
		ItemName:     movement.ItemName,
		Quantity:     movement.Quantity,
		EmployeeName: movement.EmployeeName,
		IssuedBy:     profile.UserName,
	}
	if item != nil {
		r.Category = item.Category
		r.Unit = item.Unit
	}
	return r
}
