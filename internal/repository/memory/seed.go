package memory

import (
	"time"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
)

// seedCatalog returns a fresh copy of the demo inventory every session
// starts from. Quantities below min_stock are intentional so the low-stock
// panel has something to show on first login.
func seedCatalog(now time.Time) []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "1", Name: "Calçado de Segurança (Botina)", Category: "EPI - Pés", Quantity: 12, MinStock: 15, Unit: "par", Location: "A-10", LastUpdated: now},
		{ID: "2", Name: "Capacete com Jugular", Category: "EPI - Cabeça", Quantity: 45, MinStock: 10, Unit: "un", Location: "B-04", LastUpdated: now},
		{ID: "3", Name: "Luva de Vaqueta", Category: "EPI - Mãos", Quantity: 8, MinStock: 20, Unit: "par", Location: "A-12", LastUpdated: now},
		{ID: "4", Name: "Protetor Auditivo Plug", Category: "EPI - Audição", Quantity: 150, MinStock: 50, Unit: "par", Location: "C-01", LastUpdated: now},
		{ID: "5", Name: "Camisa Uniforme G", Category: "Uniforme", Quantity: 30, MinStock: 10, Unit: "un", Location: "D-22", LastUpdated: now},
		{ID: "6", Name: "Óculos de Proteção Incolor", Category: "EPI - Olhos", Quantity: 18, MinStock: 15, Unit: "un", Location: "A-05", LastUpdated: now},
		{ID: "7", Name: "Cinto de Segurança PQD", Category: "EPI - Altura", Quantity: 5, MinStock: 3, Unit: "un", Location: "E-08", LastUpdated: now},
	}
}

// seedFinancial returns the demo purchase history.
func seedFinancial() []models.FinancialRecord {
	return []models.FinancialRecord{
		{ID: "f1", InvoiceNumber: "001234", Supplier: "Safety Brasil Ltda", Date: date(2025, 1, 15), ItemID: "1", ItemName: "Calçado de Segurança (Botina)", Quantity: 10, UnitPrice: 85.50, TotalPrice: 855.00},
		{ID: "f2", InvoiceNumber: "001299", Supplier: "Protege Tudo SA", Date: date(2025, 2, 10), ItemID: "3", ItemName: "Luva de Vaqueta", Quantity: 20, UnitPrice: 12.00, TotalPrice: 240.00},
		{ID: "f3", InvoiceNumber: "001299", Supplier: "Protege Tudo SA", Date: date(2025, 2, 10), ItemID: "4", ItemName: "Protetor Auditivo Plug", Quantity: 100, UnitPrice: 1.50, TotalPrice: 150.00},
		{ID: "f4", InvoiceNumber: "002010", Supplier: "Uniformix Confecções", Date: date(2025, 3, 5), ItemID: "5", ItemName: "Camisa Uniforme G", Quantity: 30, UnitPrice: 45.00, TotalPrice: 1350.00},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
