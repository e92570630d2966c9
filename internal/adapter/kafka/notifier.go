package kafka

import (
	"context"
	"time"

	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/niksmo/inventory-pos/internal/core/port"
)

var _ port.Notifier = (*Notifier)(nil)

// A Notifier publishes completed sales and low stock alerts
// to their own topics.
type Notifier struct {
	sales    SalesProducer
	lowStock LowStockProducer
	now      func() time.Time
}

func NewNotifier(sales SalesProducer, lowStock LowStockProducer) Notifier {
	return Notifier{sales: sales, lowStock: lowStock, now: time.Now}
}

func (n Notifier) NotifySale(ctx context.Context, s domain.Sale) error {
	return n.sales.ProduceSale(ctx, s)
}

func (n Notifier) NotifyLowStock(
	ctx context.Context, ps []domain.Product,
) error {
	return n.lowStock.ProduceLowStock(ctx, n.now(), ps)
}

func (n Notifier) Close() {
	n.sales.Close()
	n.lowStock.Close()
}
