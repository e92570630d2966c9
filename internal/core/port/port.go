package port

import (
	"context"
	"time"

	"github.com/niksmo/inventory-pos/internal/core/domain"
)

// Inbound ports, implemented by the core service.

type SessionManager interface {
	OpenSession(context.Context) (string, error)
	CloseSession(ctx context.Context, sessionID string) error
	ResetSession(ctx context.Context, sessionID string) error
}

type Catalog interface {
	AddProduct(ctx context.Context, sessionID string, d domain.ProductDraft) (domain.Product, error)
	EditProduct(ctx context.Context, sessionID, productID string, d domain.ProductDraft) error
	RemoveProduct(ctx context.Context, sessionID, productID string) error
	SearchProducts(ctx context.Context, sessionID, term string) ([]domain.Product, error)
	LowStock(ctx context.Context, sessionID string) ([]domain.Product, error)
}

type CartView struct {
	Items     []domain.CartItem
	Subtotal  float64
	ItemCount int
}

type Checkout interface {
	Cart(ctx context.Context, sessionID string) (CartView, error)
	AddToCart(ctx context.Context, sessionID, productID string) (CartView, error)
	SetCartQuantity(ctx context.Context, sessionID, productID string, quantity int) (CartView, error)
	RemoveFromCart(ctx context.Context, sessionID, productID string) (CartView, error)
	ClearCart(ctx context.Context, sessionID string) (CartView, error)
	CompleteSale(ctx context.Context, sessionID string) (domain.Sale, error)
}

type SalesHistory interface {
	SearchSales(ctx context.Context, sessionID, term string) ([]domain.Sale, domain.SaleStats, error)
	ClearHistory(ctx context.Context, sessionID string) error
}

type Reporter interface {
	Dashboard(ctx context.Context, sessionID string) (domain.Dashboard, error)
}

type SettingsManager interface {
	Settings(ctx context.Context, sessionID string) (domain.Settings, error)
	UpdateSettings(ctx context.Context, sessionID string, s domain.Settings) error
}

type DataManager interface {
	Snapshot(ctx context.Context, sessionID string) (domain.Snapshot, error)
	Restore(ctx context.Context, sessionID string, s domain.Snapshot) error
}

// Inventory is the whole inbound surface of one service.
type Inventory interface {
	SessionManager
	Catalog
	Checkout
	SalesHistory
	Reporter
	SettingsManager
	DataManager
}

// Outbound ports, implemented by adapters.

// A CatalogStore owns the products of one session.
type CatalogStore interface {
	Add(domain.ProductDraft) (domain.Product, error)
	Edit(domain.Product) error
	Remove(id string)
	Get(id string) (domain.Product, bool)
	AdjustStock(id string, delta int)
	Search(term string) []domain.Product
	LowStock() []domain.Product
	All() []domain.Product
}

// A SaleLedger is the append-only record of the sales of one session.
type SaleLedger interface {
	Record(at time.Time, lines []domain.SaleLine) (domain.Sale, error)
	All() []domain.Sale
	Len() int
	Clear()
}

type StoreFactory interface {
	NewCatalogStore([]domain.Product) CatalogStore
	NewSaleLedger([]domain.Sale) SaleLedger
}

type Notifier interface {
	NotifySale(context.Context, domain.Sale) error
	NotifyLowStock(context.Context, []domain.Product) error
}

type Clock interface {
	Now() time.Time
}
