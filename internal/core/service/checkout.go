package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/niksmo/inventory-pos/internal/core/port"
)

func (s *Service) Cart(
	ctx context.Context, sessionID string,
) (v port.CartView, err error) {
	const op = "Service.Cart"

	err = s.withSession(ctx, op, sessionID, func(w *workspace) error {
		v = cartView(w.cart)
		return nil
	})
	return v, err
}

// AddToCart puts one unit of the catalog product into the cart.
func (s *Service) AddToCart(
	ctx context.Context, sessionID, productID string,
) (v port.CartView, err error) {
	const op = "Service.AddToCart"

	err = s.withSession(ctx, op, sessionID, func(w *workspace) error {
		p, ok := w.catalog.Get(productID)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
		}
		if err := w.cart.Add(p); err != nil {
			return err
		}
		v = cartView(w.cart)
		return nil
	})
	return v, err
}

func (s *Service) SetCartQuantity(
	ctx context.Context, sessionID, productID string, quantity int,
) (v port.CartView, err error) {
	const op = "Service.SetCartQuantity"

	err = s.withSession(ctx, op, sessionID, func(w *workspace) error {
		if p, ok := w.catalog.Get(productID); ok {
			w.cart.Restock(productID, p.Stock)
		}
		w.cart.SetQuantity(productID, quantity)
		v = cartView(w.cart)
		return nil
	})
	return v, err
}

func (s *Service) RemoveFromCart(
	ctx context.Context, sessionID, productID string,
) (v port.CartView, err error) {
	const op = "Service.RemoveFromCart"

	err = s.withSession(ctx, op, sessionID, func(w *workspace) error {
		w.cart.Remove(productID)
		v = cartView(w.cart)
		return nil
	})
	return v, err
}

func (s *Service) ClearCart(
	ctx context.Context, sessionID string,
) (v port.CartView, err error) {
	const op = "Service.ClearCart"

	err = s.withSession(ctx, op, sessionID, func(w *workspace) error {
		w.cart.Clear()
		v = cartView(w.cart)
		return nil
	})
	return v, err
}

// CompleteSale records the cart as a sale and then empties the cart.
//
// Nothing changes when the cart is empty or the ledger refuses the sale.
// Notifications are sent in the background after the session is released,
// detached from ctx cancellation and bounded by the notify timeout.
// Their failures never undo or delay the sale. See [Service.Wait].
func (s *Service) CompleteSale(
	ctx context.Context, sessionID string,
) (domain.Sale, error) {
	const op = "Service.CompleteSale"

	var (
		sale     domain.Sale
		lowStock []domain.Product
		notify   domain.NotificationSettings
	)

	err := s.withSession(ctx, op, sessionID, func(w *workspace) error {
		if w.cart.IsEmpty() {
			return domain.ErrEmptyCart
		}

		var err error
		sale, err = w.ledger.Record(s.clock.Now(), w.cart.Lines())
		if err != nil {
			return err
		}
		w.cart.Clear()

		if s.decrementStock {
			for _, l := range sale.Lines {
				w.catalog.AdjustStock(l.ProductID, -l.Quantity)
			}
		}

		lowStock = soldLowStock(w.catalog, sale)
		notify = w.settings.Notifications
		return nil
	})
	if err != nil {
		return domain.Sale{}, err
	}

	slog.Info("sale completed",
		"op", op, "sessionID", sessionID,
		"saleID", sale.ID, "total", sale.Total, "nLines", len(sale.Lines),
	)

	if notify.Sales || (notify.LowStock && len(lowStock) != 0) {
		s.pending.Add(1)
		go func() {
			defer s.pending.Done()
			nctx, cancel := context.WithTimeout(
				context.WithoutCancel(ctx), s.notifyTimeout,
			)
			defer cancel()
			s.notify(nctx, notify, sale, lowStock)
		}()
	}
	return sale, nil
}

func (s *Service) notify(
	ctx context.Context,
	settings domain.NotificationSettings,
	sale domain.Sale,
	lowStock []domain.Product,
) {
	const op = "Service.notify"
	log := slog.With("op", op)

	if settings.Sales {
		if err := s.notifier.NotifySale(ctx, sale); err != nil {
			log.Warn("failed to notify sale", "saleID", sale.ID, "err", err)
		}
	}

	if settings.LowStock && len(lowStock) != 0 {
		if err := s.notifier.NotifyLowStock(ctx, lowStock); err != nil {
			log.Warn("failed to notify low stock",
				"nProducts", len(lowStock), "err", err,
			)
		}
	}
}

// soldLowStock returns the sold products that are at or below their
// minimum stock.
func soldLowStock(catalog port.CatalogStore, sale domain.Sale) []domain.Product {
	var res []domain.Product
	for _, l := range sale.Lines {
		p, ok := catalog.Get(l.ProductID)
		if ok && p.IsLowStock() {
			res = append(res, p)
		}
	}
	return res
}

func cartView(c *domain.Cart) port.CartView {
	return port.CartView{
		Items:     c.Items(),
		Subtotal:  c.Subtotal(),
		ItemCount: c.ItemCount(),
	}
}
