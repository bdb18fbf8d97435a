package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
)

const (
	movementsSheet = "Movimentações"
	catalogSheet   = "Estoque"
	dateLayout     = "02/01/2006 15:04"
)

// WriteMovementsWorkbook renders the movement ledger and a catalog snapshot
// into an xlsx workbook. Read-only over its inputs; purely a presentation
// sink.
func WriteMovementsWorkbook(w io.Writer, items []models.InventoryItem, movements []models.StockMovement) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(movementsSheet)
	if err != nil {
		return fmt.Errorf("create movements sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []any{"Data", "Item", "Tipo", "Quantidade", "Responsável"}
	if err := f.SetSheetRow(movementsSheet, "A1", &headers); err != nil {
		return fmt.Errorf("write movements header: %w", err)
	}

	for i, m := range movements {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("movement row %d: %w", i, err)
		}
		row := []any{m.Date.Format(dateLayout), m.ItemName, string(m.Type), m.Quantity, m.EmployeeName}
		if err := f.SetSheetRow(movementsSheet, cell, &row); err != nil {
			return fmt.Errorf("write movement row %d: %w", i, err)
		}
	}

	if _, err := f.NewSheet(catalogSheet); err != nil {
		return fmt.Errorf("create catalog sheet: %w", err)
	}

	catalogHeaders := []any{"Item", "Categoria", "Quantidade", "Estoque Mínimo", "Unidade", "Local", "Estoque Baixo"}
	if err := f.SetSheetRow(catalogSheet, "A1", &catalogHeaders); err != nil {
		return fmt.Errorf("write catalog header: %w", err)
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("catalog row %d: %w", i, err)
		}
		low := "Não"
		if item.IsLowStock() {
			low = "Sim"
		}
		row := []any{item.Name, item.Category, item.Quantity, item.MinStock, item.Unit, item.Location, low}
		if err := f.SetSheetRow(catalogSheet, cell, &row); err != nil {
			return fmt.Errorf("write catalog row %d: %w", i, err)
		}
	}

	// Drop the default sheet so the workbook opens on the movement ledger.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
