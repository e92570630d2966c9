package domain

import (
	"errors"
	"fmt"
)

// A Snapshot is the whole data set of one session.
type Snapshot struct {
	Products []Product
	Sales    []Sale
}

func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Products: append([]Product(nil), s.Products...),
		Sales:    CloneSales(s.Sales),
	}
}

// Validate checks the invariants a store relies on: unique ids,
// valid product fields and non-empty sales.
func (s Snapshot) Validate() error {
	var errs []error

	productIDs := make(map[string]struct{}, len(s.Products))
	for _, p := range s.Products {
		if p.ID == "" {
			errs = append(errs, errors.New("product without id"))
			continue
		}
		if _, ok := productIDs[p.ID]; ok {
			errs = append(errs, fmt.Errorf("duplicate product id %q", p.ID))
		}
		productIDs[p.ID] = struct{}{}

		if err := p.Draft().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("product %q: %w", p.ID, err))
		}
	}

	saleIDs := make(map[string]struct{}, len(s.Sales))
	for _, sale := range s.Sales {
		if sale.ID == "" {
			errs = append(errs, errors.New("sale without id"))
			continue
		}
		if _, ok := saleIDs[sale.ID]; ok {
			errs = append(errs, fmt.Errorf("duplicate sale id %q", sale.ID))
		}
		saleIDs[sale.ID] = struct{}{}

		if len(sale.Lines) == 0 {
			errs = append(errs, fmt.Errorf("sale %q has no lines", sale.ID))
		}
	}

	return errors.Join(errs...)
}

// Normalized returns a copy whose sale totals are recomputed from the lines.
func (s Snapshot) Normalized() Snapshot {
	c := s.Clone()
	for i, sale := range c.Sales {
		var total float64
		for _, l := range sale.Lines {
			total += l.Extension()
		}
		c.Sales[i].Total = total
	}
	return c
}
