package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/repository/memory"
)

func TestDashboardSeedData(t *testing.T) {
	store := memory.NewStore()
	state := store.Create(models.Profile{UserName: "Ana"})
	svc := NewService(nil)

	summary := svc.Dashboard(state)

	// Seed quantities: 12+45+8+150+30+18+5.
	assert.Equal(t, 268, summary.TotalUnits)
	assert.Equal(t, 7, summary.DistinctProducts)

	// Seeded low-stock items: botina (12<=15) and luva (8<=20).
	assert.Equal(t, 2, summary.LowStockCount)
	require.Len(t, summary.LowStockItems, 2)
	for _, item := range summary.LowStockItems {
		assert.True(t, item.IsLowStock())
	}
}

func TestDashboardTracksMutations(t *testing.T) {
	store := memory.NewStore()
	state := store.Create(models.Profile{UserName: "Ana"})
	svc := NewService(nil)

	before := svc.Dashboard(state)

	// Push item "6" (18/15) under its threshold; low stock must be
	// recomputed live on the next call.
	state.Update(func(c *memory.Collections) {
		for i := range c.Catalog {
			if c.Catalog[i].ID == "6" {
				c.Catalog[i].Quantity = 15
			}
		}
	})

	after := svc.Dashboard(state)
	assert.Equal(t, before.LowStockCount+1, after.LowStockCount)
	assert.Equal(t, before.TotalUnits-3, after.TotalUnits)
}

func TestFinancialSummary(t *testing.T) {
	store := memory.NewStore()
	state := store.Create(models.Profile{UserName: "Ana"})
	svc := NewService(nil)

	summary := svc.Financial(state)

	// Seed records: 855 + 240 + 150 + 1350 over 10+20+100+30 units.
	assert.InDelta(t, 2595.00, summary.TotalSpent, 0.001)
	assert.Equal(t, 160, summary.TotalUnitsPurchased)
	assert.InDelta(t, 16.22, summary.AverageUnitCost, 0.001)

	// Seed months: 2025-01, 2025-02 (two records), 2025-03.
	require.Len(t, summary.MonthlySpend, 3)
	assert.Equal(t, "2025-01", summary.MonthlySpend[0].Month)
	assert.InDelta(t, 855.00, summary.MonthlySpend[0].Total, 0.001)
	assert.Equal(t, "2025-02", summary.MonthlySpend[1].Month)
	assert.InDelta(t, 390.00, summary.MonthlySpend[1].Total, 0.001)
	assert.Equal(t, "2025-03", summary.MonthlySpend[2].Month)
	assert.InDelta(t, 1350.00, summary.MonthlySpend[2].Total, 0.001)
}

func TestFinancialSummaryEmptyLedger(t *testing.T) {
	store := memory.NewStore()
	state := store.Create(models.Profile{UserName: "Ana"})
	state.Update(func(c *memory.Collections) {
		c.Financial = []models.FinancialRecord{}
	})

	summary := NewService(nil).Financial(state)
	assert.Zero(t, summary.TotalSpent)
	assert.Zero(t, summary.AverageUnitCost)
	assert.Empty(t, summary.MonthlySpend)
}

func TestFinancialSummaryGroupsByMonth(t *testing.T) {
	store := memory.NewStore()
	state := store.Create(models.Profile{UserName: "Ana"})
	state.Update(func(c *memory.Collections) {
		c.Financial = []models.FinancialRecord{
			{ID: "x1", Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Quantity: 1, UnitPrice: 10, TotalPrice: 10},
			{ID: "x2", Date: time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC), Quantity: 1, UnitPrice: 30, TotalPrice: 30},
		}
	})

	summary := NewService(nil).Financial(state)
	require.Len(t, summary.MonthlySpend, 1)
	assert.Equal(t, "2025-06", summary.MonthlySpend[0].Month)
	assert.InDelta(t, 40.0, summary.MonthlySpend[0].Total, 0.001)
}
