package domain

import (
	"slices"
	"time"
)

type DaySummary struct {
	Day     string
	Sales   int
	Revenue float64
}

type CategoryRevenue struct {
	Category Category
	Revenue  float64
}

type ProductSales struct {
	Product Product
	Units   int
	Revenue float64
}

type Dashboard struct {
	TotalProducts   int
	TotalSales      int
	SalesToday      int
	TotalRevenue    float64
	InventoryValue  float64
	InventoryCost   float64
	LowStock        []Product
	SalesByDay      []DaySummary
	SalesByCategory []CategoryRevenue
	TopSellers      []ProductSales
}

const dashboardTopSellers = 5

// SalesByDay groups sales by their short day label. Groups appear in the
// order their label is first seen, so an unsorted input merges equal labels
// without reordering.
func SalesByDay(sales []Sale, loc *time.Location) []DaySummary {
	res := make([]DaySummary, 0)
	idx := make(map[string]int)
	for _, s := range sales {
		day := DayLabel(s.Date, loc)
		i, ok := idx[day]
		if !ok {
			i = len(res)
			idx[day] = i
			res = append(res, DaySummary{Day: day})
		}
		res[i].Sales++
		res[i].Revenue += s.Total
	}
	return res
}

// RevenueByCategory sums sale line extensions per catalog category.
// Categories follow the order they first appear in the catalog.
func RevenueByCategory(products []Product, sales []Sale) []CategoryRevenue {
	byProduct := lineRevenueByProduct(sales)

	res := make([]CategoryRevenue, 0)
	idx := make(map[Category]int)
	for _, p := range products {
		i, ok := idx[p.Category]
		if !ok {
			i = len(res)
			idx[p.Category] = i
			res = append(res, CategoryRevenue{Category: p.Category})
		}
		res[i].Revenue += byProduct[p.ID]
	}
	return res
}

func InventoryValue(products []Product) float64 {
	var sum float64
	for _, p := range products {
		sum += float64(p.Stock) * p.Price
	}
	return sum
}

func InventoryCost(products []Product) float64 {
	var sum float64
	for _, p := range products {
		sum += float64(p.Stock) * p.Cost
	}
	return sum
}

// SalesOn counts the sales made on the calendar day of day.
func SalesOn(sales []Sale, day time.Time, loc *time.Location) int {
	var n int
	for _, s := range sales {
		if SameDay(s.Date, day, loc) {
			n++
		}
	}
	return n
}

// TopSellers ranks catalog products by units sold. Ties keep catalog order.
// Products that never sold are left out.
func TopSellers(products []Product, sales []Sale, n int) []ProductSales {
	units := make(map[string]int)
	for _, s := range sales {
		for _, l := range s.Lines {
			units[l.ProductID] += l.Quantity
		}
	}
	revenue := lineRevenueByProduct(sales)

	res := make([]ProductSales, 0)
	for _, p := range products {
		if units[p.ID] == 0 {
			continue
		}
		res = append(res, ProductSales{
			Product: p,
			Units:   units[p.ID],
			Revenue: revenue[p.ID],
		})
	}
	slices.SortStableFunc(res, func(a, b ProductSales) int {
		return b.Units - a.Units
	})

	if n >= 0 && len(res) > n {
		res = res[:n]
	}
	return res
}

func TotalRevenue(sales []Sale) float64 {
	var sum float64
	for _, s := range sales {
		sum += s.Total
	}
	return sum
}

func BuildDashboard(
	products []Product, sales []Sale, now time.Time, loc *time.Location,
) Dashboard {
	return Dashboard{
		TotalProducts:   len(products),
		TotalSales:      len(sales),
		SalesToday:      SalesOn(sales, now, loc),
		TotalRevenue:    TotalRevenue(sales),
		InventoryValue:  InventoryValue(products),
		InventoryCost:   InventoryCost(products),
		LowStock:        LowStock(products),
		SalesByDay:      SalesByDay(sales, loc),
		SalesByCategory: RevenueByCategory(products, sales),
		TopSellers:      TopSellers(products, sales, dashboardTopSellers),
	}
}

func lineRevenueByProduct(sales []Sale) map[string]float64 {
	m := make(map[string]float64)
	for _, s := range sales {
		for _, l := range s.Lines {
			m[l.ProductID] += l.Extension()
		}
	}
	return m
}
