package seed_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/niksmo/inventory-pos/internal/adapter/seed"
	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	snap, err := seed.Default()
	require.NoError(t, err)

	require.Len(t, snap.Products, 5)
	require.Len(t, snap.Sales, 3)

	assert.Equal(t, `Monitor Samsung 24"`, snap.Products[3].Name)
	assert.Equal(t, domain.CategoryElectronics, snap.Products[0].Category)

	assert.Equal(t, 16600.0, snap.Sales[0].Total)
	assert.Equal(t, 3600.0, snap.Sales[1].Total)
	assert.Equal(t, 5000.0, snap.Sales[2].Total)
	assert.True(t, snap.Sales[2].Date.Equal(
		time.Date(2025, time.January, 22, 0, 0, 0, 0, time.UTC),
	))

	low := domain.LowStock(snap.Products)
	require.Len(t, low, 1)
	assert.Equal(t, "2", low[0].ID)
}

func TestLoad(t *testing.T) {
	t.Run("EmptyPathIsDefault", func(t *testing.T) {
		snap, err := seed.Load("")
		require.NoError(t, err)
		assert.Len(t, snap.Products, 5)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		data := []byte(`
products:
  - id: "10"
    name: Silla
    description: Silla de oficina
    price: 2500
    cost: 1800
    stock: 4
    category: Muebles
    min_stock: 2
sales:
  - id: "1"
    date: "2025-02-01T10:00:00Z"
    lines:
      - {product_id: "10", name: Silla, quantity: 2, unit_price: 2500}
`)
		require.NoError(t, os.WriteFile(path, data, 0o600))

		snap, err := seed.Load(path)
		require.NoError(t, err)
		require.Len(t, snap.Products, 1)
		assert.Equal(t, domain.CategoryFurniture, snap.Products[0].Category)
		require.Len(t, snap.Sales, 1)
		assert.Equal(t, 5000.0, snap.Sales[0].Total)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := seed.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"UnknownKey", "products:\n  - id: \"1\"\n    colour: red\n"},
		{"InvalidCategory", `
products:
  - {id: "1", name: X, description: Y, price: 1, cost: 1, stock: 1, category: Juguetes, min_stock: 0}
`},
		{"BadDate", `
sales:
  - id: "1"
    date: yesterday
    lines:
      - {product_id: "1", name: X, quantity: 1, unit_price: 1}
`},
		{"EmptySale", "sales:\n  - {id: \"1\", date: \"2025-01-01\"}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Parse([]byte(tt.data))
			require.Error(t, err)
		})
	}
}
