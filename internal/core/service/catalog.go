package service

import (
	"context"

	"github.com/niksmo/inventory-pos/internal/core/domain"
)

func (s *Service) AddProduct(
	ctx context.Context, sessionID string, d domain.ProductDraft,
) (p domain.Product, err error) {
	const op = "Service.AddProduct"

	err = s.withSession(ctx, op, sessionID, func(w *workspace) error {
		p, err = w.catalog.Add(d)
		return err
	})
	return p, err
}

// EditProduct replaces the product fields. An unknown product id is not
// an error and changes nothing.
func (s *Service) EditProduct(
	ctx context.Context, sessionID, productID string, d domain.ProductDraft,
) error {
	const op = "Service.EditProduct"

	return s.withSession(ctx, op, sessionID, func(w *workspace) error {
		p, err := d.Build(productID)
		if err != nil {
			return err
		}
		return w.catalog.Edit(p)
	})
}

func (s *Service) RemoveProduct(
	ctx context.Context, sessionID, productID string,
) error {
	const op = "Service.RemoveProduct"

	return s.withSession(ctx, op, sessionID, func(w *workspace) error {
		w.catalog.Remove(productID)
		return nil
	})
}

func (s *Service) SearchProducts(
	ctx context.Context, sessionID, term string,
) (ps []domain.Product, err error) {
	const op = "Service.SearchProducts"

	err = s.withSession(ctx, op, sessionID, func(w *workspace) error {
		ps = w.catalog.Search(term)
		return nil
	})
	return ps, err
}

func (s *Service) LowStock(
	ctx context.Context, sessionID string,
) (ps []domain.Product, err error) {
	const op = "Service.LowStock"

	err = s.withSession(ctx, op, sessionID, func(w *workspace) error {
		ps = w.catalog.LowStock()
		return nil
	})
	return ps, err
}
