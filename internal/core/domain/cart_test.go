package domain_test

import (
	"testing"

	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func laptop() domain.Product {
	return domain.Product{
		ID: "1", Name: "Laptop HP Pavilion", Description: "Laptop Intel i5", Price: 15000, Cost: 12000,
		Stock: 15, Category: domain.CategoryElectronics, MinStock: 5,
	}
}

func mouse() domain.Product {
	return domain.Product{
		ID: "2", Name: "Mouse Logitech MX", Description: "Mouse inalámbrico", Price: 800, Cost: 600,
		Stock: 3, Category: domain.CategoryAccessories, MinStock: 10,
	}
}

func recompute(items []domain.CartItem) (subtotal float64, count int) {
	for _, it := range items {
		subtotal += it.Product.Price * float64(it.Quantity)
		count += it.Quantity
	}
	return
}

func TestCartAdd(t *testing.T) {
	t.Run("RepeatedAddKeepsOneItem", func(t *testing.T) {
		c := domain.NewCart(domain.StockPolicyClamp)
		p := laptop()
		for range 7 {
			require.NoError(t, c.Add(p))
		}

		assert.Equal(t, 7, c.ItemCount())
		require.Len(t, c.Items(), 1)
		assert.Equal(t, "1", c.Items()[0].Product.ID)
	})

	t.Run("ZeroStockRejected", func(t *testing.T) {
		for _, policy := range []domain.StockPolicy{
			domain.StockPolicyClamp, domain.StockPolicyOversell,
		} {
			c := domain.NewCart(policy)
			p := mouse()
			p.Stock = 0

			err := c.Add(p)
			require.ErrorIs(t, err, domain.ErrOutOfStock)
			assert.True(t, c.IsEmpty())
		}
	})

	t.Run("ClampStopsAtStock", func(t *testing.T) {
		c := domain.NewCart(domain.StockPolicyClamp)
		p := mouse()
		for range 3 {
			require.NoError(t, c.Add(p))
		}

		err := c.Add(p)
		require.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.Equal(t, 3, c.ItemCount())
	})

	t.Run("OversellIgnoresStock", func(t *testing.T) {
		c := domain.NewCart(domain.StockPolicyOversell)
		p := mouse()
		for range 5 {
			require.NoError(t, c.Add(p))
		}
		assert.Equal(t, 5, c.ItemCount())
	})

	t.Run("KeepsInsertionOrder", func(t *testing.T) {
		c := domain.NewCart(domain.StockPolicyClamp)
		require.NoError(t, c.Add(mouse()))
		require.NoError(t, c.Add(laptop()))
		require.NoError(t, c.Add(mouse()))

		items := c.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "2", items[0].Product.ID)
		assert.Equal(t, "1", items[1].Product.ID)
	})
}

func TestCartSetQuantity(t *testing.T) {
	t.Run("NonPositiveRemoves", func(t *testing.T) {
		for _, q := range []int{0, -1, -50} {
			withSet := domain.NewCart(domain.StockPolicyClamp)
			withRemove := domain.NewCart(domain.StockPolicyClamp)
			for _, c := range []*domain.Cart{withSet, withRemove} {
				require.NoError(t, c.Add(laptop()))
				require.NoError(t, c.Add(mouse()))
			}

			kept := withSet.SetQuantity("1", q)
			withRemove.Remove("1")

			assert.Zero(t, kept)
			assert.Equal(t, withRemove.Items(), withSet.Items())
			assert.Equal(t, withRemove.ItemCount(), withSet.ItemCount())
			assert.Equal(t, withRemove.Subtotal(), withSet.Subtotal())
		}
	})

	t.Run("ReplacesQuantity", func(t *testing.T) {
		c := domain.NewCart(domain.StockPolicyClamp)
		require.NoError(t, c.Add(laptop()))

		kept := c.SetQuantity("1", 4)
		assert.Equal(t, 4, kept)
		assert.Equal(t, 4, c.ItemCount())
	})

	t.Run("ClampToStock", func(t *testing.T) {
		c := domain.NewCart(domain.StockPolicyClamp)
		require.NoError(t, c.Add(mouse()))

		kept := c.SetQuantity("2", 10)
		assert.Equal(t, 3, kept)
		assert.Equal(t, 3, c.ItemCount())
	})

	t.Run("ClampToRestockedStock", func(t *testing.T) {
		c := domain.NewCart(domain.StockPolicyClamp)
		require.NoError(t, c.Add(laptop()))

		c.Restock("1", 2)
		kept := c.SetQuantity("1", 10)
		assert.Equal(t, 2, kept)
		assert.Equal(t, 15000.0*2, c.Subtotal())
	})

	t.Run("AddRefreshesStock", func(t *testing.T) {
		c := domain.NewCart(domain.StockPolicyClamp)
		require.NoError(t, c.Add(laptop()))

		p := laptop()
		p.Stock = 1
		require.ErrorIs(t, c.Add(p), domain.ErrInsufficientStock)

		kept := c.SetQuantity("1", 5)
		assert.Equal(t, 1, kept)
	})

	t.Run("OversellKeepsQuantity", func(t *testing.T) {
		c := domain.NewCart(domain.StockPolicyOversell)
		require.NoError(t, c.Add(mouse()))

		kept := c.SetQuantity("2", 10)
		assert.Equal(t, 10, kept)
	})

	t.Run("AbsentItemNoop", func(t *testing.T) {
		c := domain.NewCart(domain.StockPolicyClamp)
		require.NoError(t, c.Add(laptop()))

		kept := c.SetQuantity("42", 3)
		assert.Zero(t, kept)
		assert.Equal(t, 1, c.ItemCount())
	})
}

func TestCartRemoveAndClear(t *testing.T) {
	c := domain.NewCart(domain.StockPolicyClamp)
	require.NoError(t, c.Add(laptop()))
	require.NoError(t, c.Add(mouse()))

	c.Remove("42")
	assert.Equal(t, 2, c.Len())

	c.Remove("1")
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "2", c.Items()[0].Product.ID)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.ItemCount())
	assert.Zero(t, c.Subtotal())
}

func TestCartTotalsMatchRecompute(t *testing.T) {
	c := domain.NewCart(domain.StockPolicyOversell)
	p1, p2 := laptop(), mouse()

	steps := []func(){
		func() { _ = c.Add(p1) },
		func() { _ = c.Add(p2) },
		func() { c.SetQuantity("1", 3) },
		func() { _ = c.Add(p2) },
		func() { c.SetQuantity("2", 0) },
		func() { _ = c.Add(p2) },
		func() { c.Remove("1") },
		func() { _ = c.Add(p1) },
	}

	for i, step := range steps {
		step()
		subtotal, count := recompute(c.Items())
		assert.InDelta(t, subtotal, c.Subtotal(), 1e-9, "step %d", i)
		assert.Equal(t, count, c.ItemCount(), "step %d", i)
	}
}

func TestCartLines(t *testing.T) {
	c := domain.NewCart(domain.StockPolicyClamp)
	require.NoError(t, c.Add(laptop()))
	require.NoError(t, c.Add(laptop()))
	require.NoError(t, c.Add(mouse()))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, domain.SaleLine{
		ProductID: "1", Name: "Laptop HP Pavilion", Quantity: 2, UnitPrice: 15000,
	}, lines[0])
	assert.Equal(t, domain.SaleLine{
		ProductID: "2", Name: "Mouse Logitech MX", Quantity: 1, UnitPrice: 800,
	}, lines[1])
}

func TestParseStockPolicy(t *testing.T) {
	p, err := domain.ParseStockPolicy("")
	require.NoError(t, err)
	assert.Equal(t, domain.StockPolicyClamp, p)

	p, err = domain.ParseStockPolicy("oversell")
	require.NoError(t, err)
	assert.Equal(t, domain.StockPolicyOversell, p)

	_, err = domain.ParseStockPolicy("strict")
	require.Error(t, err)
}
