package memory

import (
	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/niksmo/inventory-pos/internal/core/port"
)

var _ port.StoreFactory = Factory{}

// Factory builds fresh in-memory stores for every session.
type Factory struct{}

func (Factory) NewCatalogStore(seed []domain.Product) port.CatalogStore {
	return NewCatalogStore(seed)
}

func (Factory) NewSaleLedger(seed []domain.Sale) port.SaleLedger {
	return NewSaleLedger(seed)
}
