package domain_test

import (
	"testing"
	"time"

	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProducts() []domain.Product {
	return []domain.Product{
		laptop(),
		mouse(),
		{ID: "3", Name: "Teclado Mecánico", Description: "Teclado RGB", Price: 1200, Cost: 900, Stock: 25,
			Category: domain.CategoryAccessories, MinStock: 8},
		{ID: "4", Name: `Monitor Samsung 24"`, Description: "Monitor Full HD", Price: 3500, Cost: 2800, Stock: 8,
			Category: domain.CategoryElectronics, MinStock: 5},
		{ID: "5", Name: "Webcam Logitech C920", Description: "Cámara web", Price: 1500, Cost: 1200, Stock: 12,
			Category: domain.CategoryAccessories, MinStock: 6},
	}
}

func TestSalesByDay(t *testing.T) {
	t.Run("Seed", func(t *testing.T) {
		got := domain.SalesByDay(seedSales(), time.UTC)
		assert.Equal(t, []domain.DaySummary{
			{Day: "20 ene", Sales: 1, Revenue: 16600},
			{Day: "21 ene", Sales: 1, Revenue: 3600},
			{Day: "22 ene", Sales: 1, Revenue: 5000},
		}, got)
	})

	t.Run("UnsortedMergesInFirstSeenOrder", func(t *testing.T) {
		s := seedSales()
		again := s[0]
		again.ID = "4"
		again.Date = again.Date.Add(5 * time.Hour)

		got := domain.SalesByDay([]domain.Sale{s[2], s[0], s[1], again}, time.UTC)
		assert.Equal(t, []domain.DaySummary{
			{Day: "22 ene", Sales: 1, Revenue: 5000},
			{Day: "20 ene", Sales: 2, Revenue: 33200},
			{Day: "21 ene", Sales: 1, Revenue: 3600},
		}, got)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, domain.SalesByDay(nil, time.UTC))
	})
}

func TestRevenueByCategory(t *testing.T) {
	got := domain.RevenueByCategory(seedProducts(), seedSales())
	assert.Equal(t, []domain.CategoryRevenue{
		{Category: domain.CategoryElectronics, Revenue: 18500},
		{Category: domain.CategoryAccessories, Revenue: 6700},
	}, got)

	t.Run("UnknownProductsIgnored", func(t *testing.T) {
		sales := []domain.Sale{{ID: "x", Lines: []domain.SaleLine{
			{ProductID: "99", Quantity: 1, UnitPrice: 100},
		}, Total: 100}}
		got := domain.RevenueByCategory(seedProducts(), sales)
		for _, c := range got {
			assert.Zero(t, c.Revenue)
		}
	})
}

func TestInventoryValue(t *testing.T) {
	ps := seedProducts()
	assert.Equal(t, 15000.0*15+800*3+1200*25+3500*8+1500*12, domain.InventoryValue(ps))
	assert.Equal(t, 12000.0*15+600*3+900*25+2800*8+1200*12, domain.InventoryCost(ps))
	assert.Zero(t, domain.InventoryValue(nil))
}

func TestTopSellers(t *testing.T) {
	got := domain.TopSellers(seedProducts(), seedSales(), 3)
	require.Len(t, got, 3)
	assert.Equal(t, "3", got[0].Product.ID)
	assert.Equal(t, 3, got[0].Units)
	assert.Equal(t, "2", got[1].Product.ID)
	assert.Equal(t, 1600.0, got[1].Revenue)
	assert.Equal(t, "1", got[2].Product.ID)
}

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2025, time.January, 22, 18, 0, 0, 0, time.UTC)
	d := domain.BuildDashboard(seedProducts(), seedSales(), now, time.UTC)

	assert.Equal(t, 5, d.TotalProducts)
	assert.Equal(t, 3, d.TotalSales)
	assert.Equal(t, 1, d.SalesToday)
	assert.Equal(t, 25200.0, d.TotalRevenue)
	require.Len(t, d.LowStock, 1)
	assert.Equal(t, "2", d.LowStock[0].ID)
	assert.Len(t, d.SalesByDay, 3)
	assert.Len(t, d.SalesByCategory, 2)
	assert.Len(t, d.TopSellers, 5)
}
