package httphandler

import (
	"time"

	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/niksmo/inventory-pos/internal/core/port"
)

type (
	Session struct {
		SessionID string `json:"session_id"`
	}

	Product struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Cost        float64 `json:"cost"`
		Stock       int     `json:"stock"`
		Category    string  `json:"category"`
		MinStock    int     `json:"min_stock"`
		LowStock    bool    `json:"low_stock"`
	}

	ProductDraft struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Cost        float64 `json:"cost"`
		Stock       int     `json:"stock"`
		Category    string  `json:"category"`
		MinStock    int     `json:"min_stock"`
	}
)

type (
	Cart struct {
		Items     []CartItem `json:"items"`
		Subtotal  float64    `json:"subtotal"`
		ItemCount int        `json:"item_count"`
	}

	CartItem struct {
		Product   Product `json:"product"`
		Quantity  int     `json:"quantity"`
		LineTotal float64 `json:"line_total"`
	}

	AddCartItem struct {
		ProductID string `json:"product_id"`
	}

	CartQuantity struct {
		Quantity int `json:"quantity"`
	}
)

type (
	Sale struct {
		ID        string     `json:"id"`
		Date      time.Time  `json:"date"`
		DateLabel string     `json:"date_label"`
		Lines     []SaleLine `json:"lines"`
		Total     float64    `json:"total"`
	}

	SaleLine struct {
		ProductID string  `json:"product_id"`
		Name      string  `json:"name"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unit_price"`
		Extension float64 `json:"extension"`
	}

	SaleStats struct {
		Count        int     `json:"count"`
		TotalRevenue float64 `json:"total_revenue"`
		AverageSale  float64 `json:"average_sale"`
		TotalUnits   int     `json:"total_units"`
	}

	SalesPage struct {
		Sales []Sale    `json:"sales"`
		Stats SaleStats `json:"stats"`
	}
)

type (
	Dashboard struct {
		TotalProducts   int               `json:"total_products"`
		TotalSales      int               `json:"total_sales"`
		SalesToday      int               `json:"sales_today"`
		TotalRevenue    float64           `json:"total_revenue"`
		InventoryValue  float64           `json:"inventory_value"`
		InventoryCost   float64           `json:"inventory_cost"`
		LowStock        []Product         `json:"low_stock"`
		SalesByDay      []DaySummary      `json:"sales_by_day"`
		SalesByCategory []CategoryRevenue `json:"sales_by_category"`
		TopSellers      []ProductSales    `json:"top_sellers"`
	}

	DaySummary struct {
		Day     string  `json:"day"`
		Sales   int     `json:"sales"`
		Revenue float64 `json:"revenue"`
	}

	CategoryRevenue struct {
		Category string  `json:"category"`
		Revenue  float64 `json:"revenue"`
	}

	ProductSales struct {
		Product Product `json:"product"`
		Units   int     `json:"units"`
		Revenue float64 `json:"revenue"`
	}
)

type (
	Settings struct {
		Business      BusinessProfile      `json:"business"`
		Notifications NotificationSettings `json:"notifications"`
		Appearance    AppearanceSettings   `json:"appearance"`
	}

	BusinessProfile struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		TaxID   string `json:"tax_id"`
	}

	NotificationSettings struct {
		LowStock bool `json:"low_stock"`
		Sales    bool `json:"sales"`
		Email    bool `json:"email"`
	}

	AppearanceSettings struct {
		Theme       string `json:"theme"`
		CompactView bool   `json:"compact_view"`
	}
)

type Error struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func productFromDomain(p domain.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		Category:    string(p.Category),
		MinStock:    p.MinStock,
		LowStock:    p.IsLowStock(),
	}
}

func productsFromDomain(ps []domain.Product) []Product {
	res := make([]Product, len(ps))
	for i, p := range ps {
		res[i] = productFromDomain(p)
	}
	return res
}

func (d ProductDraft) toDomain() domain.ProductDraft {
	return domain.ProductDraft{
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Cost:        d.Cost,
		Stock:       d.Stock,
		Category:    domain.Category(d.Category),
		MinStock:    d.MinStock,
	}
}

func cartFromPort(v port.CartView) Cart {
	c := Cart{
		Items:     make([]CartItem, len(v.Items)),
		Subtotal:  v.Subtotal,
		ItemCount: v.ItemCount,
	}
	for i, it := range v.Items {
		c.Items[i] = CartItem{
			Product:   productFromDomain(it.Product),
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal(),
		}
	}
	return c
}

func saleFromDomain(s domain.Sale, loc *time.Location) Sale {
	res := Sale{
		ID:        s.ID,
		Date:      s.Date,
		DateLabel: domain.FormatDate(s.Date, loc),
		Lines:     make([]SaleLine, len(s.Lines)),
		Total:     s.Total,
	}
	for i, l := range s.Lines {
		res.Lines[i] = SaleLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Extension: l.Extension(),
		}
	}
	return res
}

func statsFromDomain(st domain.SaleStats) SaleStats {
	return SaleStats{
		Count:        st.Count,
		TotalRevenue: st.TotalRevenue,
		AverageSale:  st.AverageSale,
		TotalUnits:   st.TotalUnits,
	}
}

func dashboardFromDomain(d domain.Dashboard) Dashboard {
	res := Dashboard{
		TotalProducts:   d.TotalProducts,
		TotalSales:      d.TotalSales,
		SalesToday:      d.SalesToday,
		TotalRevenue:    d.TotalRevenue,
		InventoryValue:  d.InventoryValue,
		InventoryCost:   d.InventoryCost,
		LowStock:        productsFromDomain(d.LowStock),
		SalesByDay:      make([]DaySummary, len(d.SalesByDay)),
		SalesByCategory: make([]CategoryRevenue, len(d.SalesByCategory)),
		TopSellers:      make([]ProductSales, len(d.TopSellers)),
	}
	for i, v := range d.SalesByDay {
		res.SalesByDay[i] = DaySummary{Day: v.Day, Sales: v.Sales, Revenue: v.Revenue}
	}
	for i, v := range d.SalesByCategory {
		res.SalesByCategory[i] = CategoryRevenue{
			Category: string(v.Category), Revenue: v.Revenue,
		}
	}
	for i, v := range d.TopSellers {
		res.TopSellers[i] = ProductSales{
			Product: productFromDomain(v.Product),
			Units:   v.Units,
			Revenue: v.Revenue,
		}
	}
	return res
}

func settingsFromDomain(s domain.Settings) Settings {
	return Settings{
		Business: BusinessProfile{
			Name:    s.Business.Name,
			Address: s.Business.Address,
			Phone:   s.Business.Phone,
			Email:   s.Business.Email,
			TaxID:   s.Business.TaxID,
		},
		Notifications: NotificationSettings{
			LowStock: s.Notifications.LowStock,
			Sales:    s.Notifications.Sales,
			Email:    s.Notifications.Email,
		},
		Appearance: AppearanceSettings{
			Theme:       string(s.Appearance.Theme),
			CompactView: s.Appearance.CompactView,
		},
	}
}

func (s Settings) toDomain() domain.Settings {
	return domain.Settings{
		Business: domain.BusinessProfile{
			Name:    s.Business.Name,
			Address: s.Business.Address,
			Phone:   s.Business.Phone,
			Email:   s.Business.Email,
			TaxID:   s.Business.TaxID,
		},
		Notifications: domain.NotificationSettings{
			LowStock: s.Notifications.LowStock,
			Sales:    s.Notifications.Sales,
			Email:    s.Notifications.Email,
		},
		Appearance: domain.AppearanceSettings{
			Theme:       domain.Theme(s.Appearance.Theme),
			CompactView: s.Appearance.CompactView,
		},
	}
}
