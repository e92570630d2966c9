package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/niksmo/inventory-pos/internal/core/port"
)

var (
	_ port.SessionManager  = (*Service)(nil)
	_ port.Catalog         = (*Service)(nil)
	_ port.Checkout        = (*Service)(nil)
	_ port.SalesHistory    = (*Service)(nil)
	_ port.Reporter        = (*Service)(nil)
	_ port.SettingsManager = (*Service)(nil)
	_ port.DataManager     = (*Service)(nil)
	_ port.Inventory       = (*Service)(nil)
)

// A workspace is the whole state of one session.
//
// Every operation on it runs under mu, so a session observes its
// operations one at a time in arrival order.
type workspace struct {
	mu       sync.Mutex
	catalog  port.CatalogStore
	ledger   port.SaleLedger
	cart     *domain.Cart
	settings domain.Settings
}

type Service struct {
	factory        port.StoreFactory
	seed           domain.Snapshot
	notifier       port.Notifier
	clock          port.Clock
	loc            *time.Location
	policy         domain.StockPolicy
	decrementStock bool
	notifyTimeout  time.Duration

	pending  sync.WaitGroup
	mu       sync.RWMutex
	sessions map[string]*workspace
}

const defaultNotifyTimeout = 5 * time.Second

type Opt func(*Service)

func NotifierOpt(n port.Notifier) Opt {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

func ClockOpt(c port.Clock) Opt {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

func LocationOpt(loc *time.Location) Opt {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func StockPolicyOpt(p domain.StockPolicy) Opt {
	return func(s *Service) {
		if p != "" {
			s.policy = p
		}
	}
}

// DecrementStockOpt controls whether a completed sale takes the sold
// quantities out of the catalog.
func DecrementStockOpt(on bool) Opt {
	return func(s *Service) {
		s.decrementStock = on
	}
}

// NotifyTimeoutOpt bounds the delivery of the notifications of one sale.
func NotifyTimeoutOpt(d time.Duration) Opt {
	return func(s *Service) {
		if d > 0 {
			s.notifyTimeout = d
		}
	}
}

func New(factory port.StoreFactory, seed domain.Snapshot, opts ...Opt) *Service {
	const op = "service.New"

	if factory == nil {
		panic(fmt.Errorf("%s: store factory is nil", op)) // develop mistake
	}

	s := &Service{
		factory:        factory,
		seed:           seed.Clone(),
		notifier:       nopNotifier{},
		clock:          systemClock{},
		loc:            time.UTC,
		policy:         domain.StockPolicyClamp,
		decrementStock: true,
		notifyTimeout:  defaultNotifyTimeout,
		sessions:       make(map[string]*workspace),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) OpenSession(ctx context.Context) (string, error) {
	const op = "Service.OpenSession"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	id := uuid.NewString()
	w := s.newWorkspace(s.seed.Clone())

	s.mu.Lock()
	s.sessions[id] = w
	n := len(s.sessions)
	s.mu.Unlock()

	slog.Debug("session opened", "op", op, "sessionID", id, "nSessions", n)
	return id, nil
}

func (s *Service) CloseSession(ctx context.Context, sessionID string) error {
	const op = "Service.CloseSession"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%s: %w", op, domain.ErrSessionNotFound)
	}

	slog.Debug("session closed", "op", op, "sessionID", sessionID)
	return nil
}

// ResetSession brings the session back to the seed data and default
// settings with an empty cart.
func (s *Service) ResetSession(ctx context.Context, sessionID string) error {
	const op = "Service.ResetSession"

	return s.withSession(ctx, op, sessionID, func(w *workspace) error {
		fresh := s.newWorkspace(s.seed.Clone())
		w.catalog = fresh.catalog
		w.ledger = fresh.ledger
		w.cart = fresh.cart
		w.settings = fresh.settings
		return nil
	})
}

func (s *Service) newWorkspace(data domain.Snapshot) *workspace {
	return &workspace{
		catalog:  s.factory.NewCatalogStore(data.Products),
		ledger:   s.factory.NewSaleLedger(data.Sales),
		cart:     domain.NewCart(s.policy),
		settings: domain.DefaultSettings(),
	}
}

func (s *Service) workspace(sessionID string) (*workspace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.sessions[sessionID]
	return w, ok
}

// withSession runs fn with the session workspace locked.
func (s *Service) withSession(
	ctx context.Context, op, sessionID string, fn func(*workspace) error,
) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	w, ok := s.workspace(sessionID)
	if !ok {
		return fmt.Errorf("%s: %w", op, domain.ErrSessionNotFound)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := fn(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

type nopNotifier struct{}

func (nopNotifier) NotifySale(context.Context, domain.Sale) error {
	return nil
}

func (nopNotifier) NotifyLowStock(context.Context, []domain.Product) error {
	return nil
}

// Wait blocks until the notifications of completed sales are delivered
// or given up, or until ctx is done.
func (s *Service) Wait(ctx context.Context) error {
	const op = "Service.Wait"

	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
}
