package service

import (
	"context"
	"fmt"

	"github.com/niksmo/inventory-pos/internal/core/domain"
)

// SearchSales returns the matching sales newest first, together with
// the stats of the whole history.
func (s *Service) SearchSales(
	ctx context.Context, sessionID, term string,
) (sales []domain.Sale, stats domain.SaleStats, err error) {
	const op = "Service.SearchSales"

	err = s.withSession(ctx, op, sessionID, func(w *workspace) error {
		all := w.ledger.All()
		sales = domain.SortByDateDesc(domain.SearchSales(all, term, s.loc))
		stats = domain.ComputeStats(all)
		return nil
	})
	return sales, stats, err
}

func (s *Service) ClearHistory(ctx context.Context, sessionID string) error {
	const op = "Service.ClearHistory"

	return s.withSession(ctx, op, sessionID, func(w *workspace) error {
		w.ledger.Clear()
		return nil
	})
}

func (s *Service) Dashboard(
	ctx context.Context, sessionID string,
) (d domain.Dashboard, err error) {
	const op = "Service.Dashboard"

	err = s.withSession(ctx, op, sessionID, func(w *workspace) error {
		d = domain.BuildDashboard(
			w.catalog.All(), w.ledger.All(), s.clock.Now(), s.loc,
		)
		return nil
	})
	return d, err
}

func (s *Service) Settings(
	ctx context.Context, sessionID string,
) (st domain.Settings, err error) {
	const op = "Service.Settings"

	err = s.withSession(ctx, op, sessionID, func(w *workspace) error {
		st = w.settings
		return nil
	})
	return st, err
}

func (s *Service) UpdateSettings(
	ctx context.Context, sessionID string, st domain.Settings,
) error {
	const op = "Service.UpdateSettings"

	return s.withSession(ctx, op, sessionID, func(w *workspace) error {
		if err := st.Validate(); err != nil {
			return err
		}
		w.settings = st
		return nil
	})
}

func (s *Service) Snapshot(
	ctx context.Context, sessionID string,
) (snap domain.Snapshot, err error) {
	const op = "Service.Snapshot"

	err = s.withSession(ctx, op, sessionID, func(w *workspace) error {
		snap = domain.Snapshot{
			Products: w.catalog.All(),
			Sales:    w.ledger.All(),
		}
		return nil
	})
	return snap, err
}

// Restore replaces catalog and history with an imported data set and
// empties the cart. Settings are kept.
func (s *Service) Restore(
	ctx context.Context, sessionID string, snap domain.Snapshot,
) error {
	const op = "Service.Restore"

	if err := snap.Validate(); err != nil {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrInvalidSnapshot, err)
	}
	snap = snap.Normalized()

	return s.withSession(ctx, op, sessionID, func(w *workspace) error {
		w.catalog = s.factory.NewCatalogStore(snap.Products)
		w.ledger = s.factory.NewSaleLedger(snap.Sales)
		w.cart.Clear()
		return nil
	})
}
