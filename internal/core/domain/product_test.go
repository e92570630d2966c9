package domain_test

import (
	"testing"

	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() domain.ProductDraft {
	return domain.ProductDraft{
		Name:        "Silla Ergonómica",
		Description: "Silla de oficina con soporte lumbar",
		Price:       4200,
		Cost:        3100,
		Stock:       6,
		Category:    domain.CategoryFurniture,
		MinStock:    2,
	}
}

func TestProductDraftBuild(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p, err := validDraft().Build("6")
		require.NoError(t, err)
		assert.Equal(t, "6", p.ID)
		assert.Equal(t, validDraft(), p.Draft())
	})

	t.Run("ZeroValuesAllowed", func(t *testing.T) {
		d := validDraft()
		d.Price, d.Cost, d.Stock, d.MinStock = 0, 0, 0, 0
		_, err := d.Build("6")
		require.NoError(t, err)
	})

	invalid := map[string]func(*domain.ProductDraft){
		"EmptyName":        func(d *domain.ProductDraft) { d.Name = "  " },
		"EmptyDescription": func(d *domain.ProductDraft) { d.Description = "" },
		"NegativePrice":    func(d *domain.ProductDraft) { d.Price = -1 },
		"NegativeCost":     func(d *domain.ProductDraft) { d.Cost = -0.5 },
		"NegativeStock":    func(d *domain.ProductDraft) { d.Stock = -3 },
		"NegativeMinStock": func(d *domain.ProductDraft) { d.MinStock = -1 },
		"UnknownCategory":  func(d *domain.ProductDraft) { d.Category = "Juguetes" },
	}

	for name, mutate := range invalid {
		t.Run(name, func(t *testing.T) {
			d := validDraft()
			mutate(&d)
			_, err := d.Build("6")
			require.ErrorIs(t, err, domain.ErrInvalidProduct)
		})
	}
}

func TestSearchProducts(t *testing.T) {
	ps := []domain.Product{laptop(), mouse(), {
		ID: "3", Name: "Teclado Mecánico", Category: domain.CategoryAccessories,
	}}

	assert.Len(t, domain.SearchProducts(ps, ""), 3)

	got := domain.SearchProducts(ps, "ACCES")
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	got = domain.SearchProducts(ps, "pavilion")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	assert.Empty(t, domain.SearchProducts(ps, "sofa"))
}

func TestLowStock(t *testing.T) {
	atThreshold := laptop()
	atThreshold.ID = "9"
	atThreshold.Stock = atThreshold.MinStock

	got := domain.LowStock([]domain.Product{laptop(), mouse(), atThreshold})
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "9", got[1].ID)
}

func TestCategories(t *testing.T) {
	cs := domain.Categories()
	require.Len(t, cs, 5)
	for _, c := range cs {
		assert.True(t, c.Valid())
	}

	cs[0] = "mutated"
	assert.Equal(t, domain.CategoryElectronics, domain.Categories()[0])
}
