package domain_test

import (
	"testing"
	"time"

	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedSales() []domain.Sale {
	return []domain.Sale{
		{
			ID:   "1",
			Date: date(2025, time.January, 20),
			Lines: []domain.SaleLine{
				{ProductID: "1", Name: "Laptop HP Pavilion", Quantity: 1, UnitPrice: 15000},
				{ProductID: "2", Name: "Mouse Logitech MX", Quantity: 2, UnitPrice: 800},
			},
			Total: 16600,
		},
		{
			ID:   "2",
			Date: date(2025, time.January, 21),
			Lines: []domain.SaleLine{
				{ProductID: "3", Name: "Teclado Mecánico", Quantity: 3, UnitPrice: 1200},
			},
			Total: 3600,
		},
		{
			ID:   "3",
			Date: date(2025, time.January, 22),
			Lines: []domain.SaleLine{
				{ProductID: "4", Name: `Monitor Samsung 24"`, Quantity: 1, UnitPrice: 3500},
				{ProductID: "5", Name: "Webcam Logitech C920", Quantity: 1, UnitPrice: 1500},
			},
			Total: 5000,
		},
	}
}

func ids(sales []domain.Sale) []string {
	res := make([]string, len(sales))
	for i, s := range sales {
		res[i] = s.ID
	}
	return res
}

func TestNewSale(t *testing.T) {
	t.Run("EmptyLines", func(t *testing.T) {
		_, err := domain.NewSale("1", time.Now(), nil)
		require.ErrorIs(t, err, domain.ErrEmptyCart)
	})

	t.Run("TotalFromLines", func(t *testing.T) {
		lines := []domain.SaleLine{
			{ProductID: "1", Name: "A", Quantity: 2, UnitPrice: 15000},
			{ProductID: "2", Name: "B", Quantity: 1, UnitPrice: 800},
		}
		s, err := domain.NewSale("7", date(2025, time.March, 1), lines)
		require.NoError(t, err)

		assert.Equal(t, "7", s.ID)
		assert.Equal(t, 30800.0, s.Total)
		assert.Equal(t, 3, s.Units())

		lines[0].Quantity = 100
		assert.Equal(t, 2, s.Lines[0].Quantity)
	})
}

func TestSearchSales(t *testing.T) {
	sales := seedSales()
	sales[0].ID = "V-A"
	sales[1].ID = "V-B"
	sales[2].ID = "V-C"

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"Empty", "", []string{"V-A", "V-B", "V-C"}},
		{"ByID", "v-b", []string{"V-B"}},
		{"ByLineName", "LOGITECH", []string{"V-A", "V-C"}},
		{"ByLongDate", "21 de enero", []string{"V-B"}},
		{"ByMonth", "enero de 2025", []string{"V-A", "V-B", "V-C"}},
		{"NoMatch", "impresora", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.SearchSales(sales, tt.term, time.UTC)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSortByDateDesc(t *testing.T) {
	sales := seedSales()
	tie := sales[0]
	tie.ID = "1b"
	input := []domain.Sale{sales[0], sales[2], tie, sales[1]}

	got := domain.SortByDateDesc(input)

	assert.Equal(t, []string{"3", "2", "1", "1b"}, ids(got))
	assert.Equal(t, []string{"1", "3", "1b", "2"}, ids(input))
}

func TestComputeStats(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, domain.SaleStats{}, domain.ComputeStats(nil))
		assert.Equal(t, domain.SaleStats{}, domain.ComputeStats([]domain.Sale{}))
	})

	t.Run("Seed", func(t *testing.T) {
		st := domain.ComputeStats(seedSales())
		assert.Equal(t, 3, st.Count)
		assert.Equal(t, 25200.0, st.TotalRevenue)
		assert.Equal(t, 8400.0, st.AverageSale)
		assert.Equal(t, 8, st.TotalUnits)
	})
}

func TestDateFormatting(t *testing.T) {
	d := date(2025, time.September, 3)
	assert.Equal(t, "3 de septiembre de 2025", domain.FormatDate(d, time.UTC))
	assert.Equal(t, "3 sept", domain.DayLabel(d, time.UTC))

	late := time.Date(2025, time.January, 20, 23, 30, 0, 0, time.UTC)
	mexico := time.FixedZone("CST", -6*60*60)
	assert.Equal(t, "20 ene", domain.DayLabel(late, mexico))
	assert.Equal(t, "21 ene", domain.DayLabel(late, time.FixedZone("CET", 60*60)))
	assert.Equal(t, "20 de enero de 2025", domain.FormatDate(late, nil))
}
