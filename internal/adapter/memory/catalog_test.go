package memory

import (
	"testing"
	"time"

	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Laptop HP Pavilion", Description: "Laptop Intel i5",
			Price: 15000, Cost: 12000, Stock: 15,
			Category: domain.CategoryElectronics, MinStock: 5},
		{ID: "2", Name: "Mouse Logitech MX", Description: "Mouse inalámbrico",
			Price: 800, Cost: 600, Stock: 3,
			Category: domain.CategoryAccessories, MinStock: 10},
	}
}

func testDraft(name string) domain.ProductDraft {
	return domain.ProductDraft{
		Name: name, Description: "desc", Price: 10, Cost: 5, Stock: 1,
		Category: domain.CategoryOther, MinStock: 0,
	}
}

func TestCatalogStoreAdd(t *testing.T) {
	t.Run("SequentialIDs", func(t *testing.T) {
		s := NewCatalogStore(testProducts())

		p, err := s.Add(testDraft("Grapadora"))
		require.NoError(t, err)
		assert.Equal(t, "3", p.ID)

		s.Remove("3")
		p, err = s.Add(testDraft("Cuaderno"))
		require.NoError(t, err)
		assert.Equal(t, "4", p.ID)

		all := s.All()
		require.Len(t, all, 3)
		assert.Equal(t, "Cuaderno", all[2].Name)
	})

	t.Run("EmptySeed", func(t *testing.T) {
		s := NewCatalogStore(nil)
		p, err := s.Add(testDraft("Grapadora"))
		require.NoError(t, err)
		assert.Equal(t, "1", p.ID)
	})

	t.Run("InvalidDraft", func(t *testing.T) {
		s := NewCatalogStore(testProducts())
		_, err := s.Add(domain.ProductDraft{})
		require.ErrorIs(t, err, domain.ErrInvalidProduct)
		assert.Len(t, s.All(), 2)

		p, err := s.Add(testDraft("Grapadora"))
		require.NoError(t, err)
		assert.Equal(t, "3", p.ID)
	})
}

func TestCatalogStoreEdit(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		s := NewCatalogStore(testProducts())

		edited := testProducts()[0]
		edited.Price = 14500
		edited.Stock = 2
		require.NoError(t, s.Edit(edited))

		all := s.Search("")
		require.Len(t, all, 2)
		assert.Equal(t, edited, all[0])
		assert.Equal(t, testProducts()[1], all[1])
	})

	t.Run("UnknownIDNoop", func(t *testing.T) {
		s := NewCatalogStore(testProducts())
		ghost := testProducts()[0]
		ghost.ID = "99"

		require.NoError(t, s.Edit(ghost))
		assert.Equal(t, testProducts(), s.All())
	})

	t.Run("Invalid", func(t *testing.T) {
		s := NewCatalogStore(testProducts())
		bad := testProducts()[0]
		bad.Stock = -1

		require.ErrorIs(t, s.Edit(bad), domain.ErrInvalidProduct)
		assert.Equal(t, testProducts(), s.All())
	})
}

func TestCatalogStoreRemove(t *testing.T) {
	s := NewCatalogStore(testProducts())
	s.Remove("99")
	assert.Len(t, s.All(), 2)

	s.Remove("1")
	_, ok := s.Get("1")
	assert.False(t, ok)
	assert.Len(t, s.All(), 1)
}

func TestCatalogStoreAdjustStock(t *testing.T) {
	s := NewCatalogStore(testProducts())

	s.AdjustStock("1", -4)
	p, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, 11, p.Stock)

	s.AdjustStock("2", -10)
	p, _ = s.Get("2")
	assert.Zero(t, p.Stock)

	s.AdjustStock("99", 5)
	assert.Len(t, s.All(), 2)
}

func TestCatalogStoreLowStock(t *testing.T) {
	s := NewCatalogStore(testProducts())
	low := s.LowStock()
	require.Len(t, low, 1)
	assert.Equal(t, "2", low[0].ID)
}

func TestCatalogStoreSeedIsCopied(t *testing.T) {
	seed := testProducts()
	s := NewCatalogStore(seed)
	seed[0].Name = "changed"

	p, _ := s.Get("1")
	assert.Equal(t, "Laptop HP Pavilion", p.Name)
}

func TestSaleLedger(t *testing.T) {
	at := time.Date(2025, time.February, 1, 10, 0, 0, 0, time.UTC)
	lines := []domain.SaleLine{
		{ProductID: "1", Name: "Laptop HP Pavilion", Quantity: 2, UnitPrice: 15000},
	}

	t.Run("RecordAppends", func(t *testing.T) {
		l := NewSaleLedger(nil)
		s, err := l.Record(at, lines)
		require.NoError(t, err)

		assert.Equal(t, "1", s.ID)
		assert.Equal(t, at, s.Date)
		assert.Equal(t, 30000.0, s.Total)
		assert.Equal(t, 1, l.Len())
	})

	t.Run("EmptyRejected", func(t *testing.T) {
		l := NewSaleLedger(nil)
		_, err := l.Record(at, nil)
		require.ErrorIs(t, err, domain.ErrEmptyCart)
		assert.Zero(t, l.Len())
	})

	t.Run("IDsContinueAfterSeedAndClear", func(t *testing.T) {
		l := NewSaleLedger([]domain.Sale{{ID: "3", Lines: lines, Total: 30000}})
		s, err := l.Record(at, lines)
		require.NoError(t, err)
		assert.Equal(t, "4", s.ID)

		l.Clear()
		assert.Zero(t, l.Len())

		s, err = l.Record(at, lines)
		require.NoError(t, err)
		assert.Equal(t, "5", s.ID)
	})

	t.Run("ReturnedSalesAreCopies", func(t *testing.T) {
		l := NewSaleLedger(nil)
		_, err := l.Record(at, lines)
		require.NoError(t, err)

		all := l.All()
		all[0].Lines[0].Quantity = 99
		assert.Equal(t, 2, l.All()[0].Lines[0].Quantity)
	})
}
