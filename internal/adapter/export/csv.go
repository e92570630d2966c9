package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/niksmo/inventory-pos/internal/core/domain"
)

var (
	productsHeader = []string{
		"id", "name", "description", "category",
		"price", "cost", "stock", "min_stock",
	}
	salesHeader = []string{
		"sale_id", "date", "product_id", "name",
		"quantity", "unit_price", "line_total", "sale_total",
	}
)

// WriteProductsCSV writes one row per product.
func WriteProductsCSV(w io.Writer, ps []domain.Product) error {
	const op = "export.WriteProductsCSV"

	cw := csv.NewWriter(w)
	if err := cw.Write(productsHeader); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, p := range ps {
		err := cw.Write([]string{
			p.ID,
			p.Name,
			p.Description,
			string(p.Category),
			formatAmount(p.Price),
			formatAmount(p.Cost),
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.MinStock),
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// WriteSalesCSV writes one row per sale line, dates in RFC 3339 at loc.
func WriteSalesCSV(w io.Writer, sales []domain.Sale, loc *time.Location) error {
	const op = "export.WriteSalesCSV"

	if loc == nil {
		loc = time.UTC
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(salesHeader); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, s := range sales {
		date := s.Date.In(loc).Format(time.RFC3339)
		for _, l := range s.Lines {
			err := cw.Write([]string{
				s.ID,
				date,
				l.ProductID,
				l.Name,
				strconv.Itoa(l.Quantity),
				formatAmount(l.UnitPrice),
				formatAmount(l.Extension()),
				formatAmount(s.Total),
			})
			if err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
