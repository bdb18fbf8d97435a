package reporting

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/domain/models"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/repository/memory"
)

const monthLayout = "2006-01"

// Service exposes read-only aggregations over a session's collections for
// the dashboard screens. It never mutates state.
type Service struct {
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// DashboardSummary mirrors the control-panel cards: total units on hand,
// distinct products, and the live low-stock picture.
type DashboardSummary struct {
	TotalUnits       int                    `json:"total_units"`
	DistinctProducts int                    `json:"distinct_products"`
	LowStockCount    int                    `json:"low_stock_count"`
	LowStockItems    []models.InventoryItem `json:"low_stock_items"`
}

// MonthlySpend is the purchase total of one calendar month.
type MonthlySpend struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// FinancialSummary aggregates the financial ledger for the purchases screen.
type FinancialSummary struct {
	TotalSpent          float64        `json:"total_spent"`
	TotalUnitsPurchased int            `json:"total_units_purchased"`
	AverageUnitCost     float64        `json:"average_unit_cost"`
	MonthlySpend        []MonthlySpend `json:"monthly_spend"`
}

// Dashboard computes the inventory summary. Low stock is recomputed from
// the current quantities on every call, never cached.
func (s *Service) Dashboard(state *memory.State) DashboardSummary {
	summary := DashboardSummary{LowStockItems: []models.InventoryItem{}}

	state.View(func(c memory.Collections) {
		summary.DistinctProducts = len(c.Catalog)
		for _, item := range c.Catalog {
			summary.TotalUnits += item.Quantity
			if item.IsLowStock() {
				summary.LowStockItems = append(summary.LowStockItems, item)
			}
		}
	})

	summary.LowStockCount = len(summary.LowStockItems)
	return summary
}

// Financial computes ledger totals and the per-month spend series, oldest
// month first.
func (s *Service) Financial(state *memory.State) FinancialSummary {
	summary := FinancialSummary{MonthlySpend: []MonthlySpend{}}
	byMonth := make(map[string]float64)

	state.View(func(c memory.Collections) {
		for _, r := range c.Financial {
			summary.TotalSpent += r.TotalPrice
			summary.TotalUnitsPurchased += r.Quantity
			byMonth[r.Date.Format(monthLayout)] += r.TotalPrice
		}
	})

	if summary.TotalUnitsPurchased > 0 {
		avg := summary.TotalSpent / float64(summary.TotalUnitsPurchased)
		summary.AverageUnitCost = math.Round(avg*100) / 100
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	for _, m := range months {
		summary.MonthlySpend = append(summary.MonthlySpend, MonthlySpend{Month: m, Total: byMonth[m]})
	}

	return summary
}
