package adapter

import (
	"time"

	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/niksmo/inventory-pos/pkg/schema"
)

func ProductToSchemaV1(v domain.Product) (s schema.ProductV1) {
	s.ProductID = v.ID
	s.Name = v.Name
	s.Description = v.Description
	s.Price = v.Price
	s.Cost = v.Cost
	s.Stock = v.Stock
	s.MinStock = v.MinStock
	s.Category = string(v.Category)
	return
}

func ProductFromSchemaV1(s schema.ProductV1) (v domain.Product) {
	v.ID = s.ProductID
	v.Name = s.Name
	v.Description = s.Description
	v.Price = s.Price
	v.Cost = s.Cost
	v.Stock = s.Stock
	v.MinStock = s.MinStock
	v.Category = domain.Category(s.Category)
	return
}

func SaleToSchemaV1(v domain.Sale) (s schema.SaleV1) {
	s.SaleID = v.ID
	s.Date = v.Date
	s.Total = v.Total
	s.Lines = make([]schema.SaleLineV1, len(v.Lines))
	for i, l := range v.Lines {
		s.Lines[i] = schema.SaleLineV1{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
	}
	return
}

func SaleFromSchemaV1(s schema.SaleV1) (v domain.Sale) {
	v.ID = s.SaleID
	v.Date = s.Date
	v.Total = s.Total
	v.Lines = make([]domain.SaleLine, len(s.Lines))
	for i, l := range s.Lines {
		v.Lines[i] = domain.SaleLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
	}
	return
}

func LowStockToSchemaV1(
	at time.Time, ps []domain.Product,
) (s schema.LowStockAlertV1) {
	s.RaisedAt = at
	s.Products = make([]schema.ProductV1, len(ps))
	for i, p := range ps {
		s.Products[i] = ProductToSchemaV1(p)
	}
	return
}
