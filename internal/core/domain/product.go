package domain

import (
	"errors"
	"fmt"
	"strings"
)

type Category string

const (
	CategoryElectronics Category = "Electrónica"
	CategoryAccessories Category = "Accesorios"
	CategoryFurniture   Category = "Muebles"
	CategoryStationery  Category = "Papelería"
	CategoryOther       Category = "Otros"
)

var categories = []Category{
	CategoryElectronics,
	CategoryAccessories,
	CategoryFurniture,
	CategoryStationery,
	CategoryOther,
}

// Categories returns the fixed set of catalog categories in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

func (c Category) Valid() bool {
	for _, v := range categories {
		if c == v {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Cost        float64
	Stock       int
	Category    Category
	MinStock    int
}

// IsLowStock reports whether the stock is at or below the minimum threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// Matches reports whether term is a case-insensitive substring
// of the product name or category. Empty term matches everything.
func (p Product) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(string(p.Category)), term)
}

// A ProductDraft is unchecked product input coming from the outside.
//
// It becomes a [Product] only through [ProductDraft.Build].
type ProductDraft struct {
	Name        string
	Description string
	Price       float64
	Cost        float64
	Stock       int
	Category    Category
	MinStock    int
}

func (d ProductDraft) Validate() error {
	var errs []error

	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if strings.TrimSpace(d.Description) == "" {
		errs = append(errs, errors.New("description is required"))
	}
	if d.Price < 0 {
		errs = append(errs, errors.New("price must not be negative"))
	}
	if d.Cost < 0 {
		errs = append(errs, errors.New("cost must not be negative"))
	}
	if d.Stock < 0 {
		errs = append(errs, errors.New("stock must not be negative"))
	}
	if d.MinStock < 0 {
		errs = append(errs, errors.New("minimum stock must not be negative"))
	}
	if !d.Category.Valid() {
		errs = append(errs, fmt.Errorf("unknown category %q", d.Category))
	}

	if len(errs) != 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, errors.Join(errs...))
	}
	return nil
}

// Build validates the draft and returns the product with the given id.
func (d ProductDraft) Build(id string) (Product, error) {
	if err := d.Validate(); err != nil {
		return Product{}, err
	}
	return Product{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Cost:        d.Cost,
		Stock:       d.Stock,
		Category:    d.Category,
		MinStock:    d.MinStock,
	}, nil
}

// Draft returns the product fields without its identity.
func (p Product) Draft() ProductDraft {
	return ProductDraft{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		Category:    p.Category,
		MinStock:    p.MinStock,
	}
}

func SearchProducts(ps []Product, term string) []Product {
	res := make([]Product, 0, len(ps))
	for _, p := range ps {
		if p.Matches(term) {
			res = append(res, p)
		}
	}
	return res
}

func LowStock(ps []Product) []Product {
	res := make([]Product, 0)
	for _, p := range ps {
		if p.IsLowStock() {
			res = append(res, p)
		}
	}
	return res
}
