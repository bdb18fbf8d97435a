package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
)

func TestWriteMovementsWorkbook(t *testing.T) {
	items := []models.InventoryItem{
		{ID: "1", Name: "Luva de Vaqueta", Category: "EPI - Mãos", Quantity: 8, MinStock: 20, Unit: "par", Location: "A-12"},
		{ID: "2", Name: "Capacete", Category: "EPI - Cabeça", Quantity: 45, MinStock: 10, Unit: "un", Location: "B-04"},
	}
	movements := []models.StockMovement{
		{ID: "m1", ItemID: "1", ItemName: "Luva de Vaqueta", Type: models.MovementOut, Quantity: 3, Date: time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC), EmployeeName: "João Pereira"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMovementsWorkbook(&buf, items, movements))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Movimentações", "Estoque"}, f.GetSheetList())

	rows, err := f.GetRows("Movimentações")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Data", "Item", "Tipo", "Quantidade", "Responsável"}, rows[0])
	assert.Equal(t, []string{"01/04/2025 09:30", "Luva de Vaqueta", "OUT", "3", "João Pereira"}, rows[1])

	catalog, err := f.GetRows("Estoque")
	require.NoError(t, err)
	require.Len(t, catalog, 3)
	assert.Equal(t, "Sim", catalog[1][6], "luva is below its threshold")
	assert.Equal(t, "Não", catalog[2][6])
}

func TestWriteMovementsWorkbookEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMovementsWorkbook(&buf, nil, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Movimentações")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}

func TestBuildReceipt(t *testing.T) {
	profile := models.Profile{UserName: "Maria Souza", UnitName: "Fábrica Norte", City: "Manaus"}
	movement := models.StockMovement{
		ID:           "m1",
		ItemID:       "1",
		ItemName:     "Luva de Vaqueta",
		Type:         models.MovementOut,
		Quantity:     3,
		Date:         time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC),
		EmployeeName: "João Pereira",
	}
	item := models.InventoryItem{ID: "1", Name: "Luva de Vaqueta (novo nome)", Category: "EPI - Mãos", Unit: "par"}

	r := BuildReceipt(profile, movement, &item)

	assert.Equal(t, "Fábrica Norte", r.UnitName)
	assert.Equal(t, "Manaus", r.City)
	assert.Equal(t, "Luva de Vaqueta", r.ItemName, "receipt keeps the snapshot name, not the current one")
	assert.Equal(t, "EPI - Mãos", r.Category)
	assert.Equal(t, "par", r.Unit)
	assert.Equal(t, "João Pereira", r.EmployeeName)
	assert.Equal(t, "Maria Souza", r.IssuedBy)
}

func TestBuildReceiptWithoutCatalogEntry(t *testing.T) {
	r := BuildReceipt(models.Profile{}, models.StockMovement{ID: "m1", ItemName: "Item removido"}, nil)
	assert.Equal(t, "Item removido", r.ItemName)
	assert.Empty(t, r.Category)
	assert.Empty(t, r.Unit)
}
