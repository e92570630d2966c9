// Package seed loads the data set every new session starts from.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/niksmo/inventory-pos/internal/core/domain"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type file struct {
	Products []product `yaml:"products"`
	Sales    []sale    `yaml:"sales"`
}

type product struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	Cost        float64 `yaml:"cost"`
	Stock       int     `yaml:"stock"`
	Category    string  `yaml:"category"`
	MinStock    int     `yaml:"min_stock"`
}

type sale struct {
	ID    string `yaml:"id"`
	Date  string `yaml:"date"`
	Lines []line `yaml:"lines"`
}

type line struct {
	ProductID string  `yaml:"product_id"`
	Name      string  `yaml:"name"`
	Quantity  int     `yaml:"quantity"`
	UnitPrice float64 `yaml:"unit_price"`
}

// Default returns the built-in data set.
func Default() (domain.Snapshot, error) {
	return Parse(defaultSeed)
}

// Load reads the data set from path. An empty path means [Default].
func Load(path string) (domain.Snapshot, error) {
	const op = "seed.Load"

	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	snap, err := Parse(data)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%s: %s: %w", op, path, err)
	}
	return snap, nil
}

// Parse decodes a YAML data set. Unknown keys are rejected and
// sale totals are computed from the lines.
func Parse(data []byte) (domain.Snapshot, error) {
	const op = "seed.Parse"

	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	var snap domain.Snapshot
	for _, p := range f.Products {
		snap.Products = append(snap.Products, domain.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Cost:        p.Cost,
			Stock:       p.Stock,
			Category:    domain.Category(p.Category),
			MinStock:    p.MinStock,
		})
	}

	for _, s := range f.Sales {
		at, err := parseDate(s.Date)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("%s: sale %q: %w", op, s.ID, err)
		}

		v := domain.Sale{ID: s.ID, Date: at}
		for _, l := range s.Lines {
			v.Lines = append(v.Lines, domain.SaleLine{
				ProductID: l.ProductID,
				Name:      l.Name,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
			})
		}
		snap.Sales = append(snap.Sales, v)
	}

	if err := snap.Validate(); err != nil {
		return domain.Snapshot{}, fmt.Errorf(
			"%s: %w: %w", op, domain.ErrInvalidSnapshot, err,
		)
	}
	return snap.Normalized(), nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
