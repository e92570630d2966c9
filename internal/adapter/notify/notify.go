package notify

import (
	"context"
	"log/slog"

	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/niksmo/inventory-pos/internal/core/port"
)

var _ port.Notifier = (*LogNotifier)(nil)

// A LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return LogNotifier{log: log}
}

func (n LogNotifier) NotifySale(ctx context.Context, s domain.Sale) error {
	const op = "LogNotifier.NotifySale"

	n.log.InfoContext(ctx, "new sale",
		"op", op,
		"saleID", s.ID,
		"total", s.Total,
		"units", s.Units(),
	)
	return nil
}

func (n LogNotifier) NotifyLowStock(
	ctx context.Context, ps []domain.Product,
) error {
	const op = "LogNotifier.NotifyLowStock"

	for _, p := range ps {
		n.log.WarnContext(ctx, "low stock",
			"op", op,
			"productID", p.ID,
			"name", p.Name,
			"stock", p.Stock,
			"minStock", p.MinStock,
		)
	}
	return nil
}
