package memory

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/niksmo/inventory-pos/internal/core/port"
)

var _ port.CatalogStore = (*CatalogStore)(nil)

// A CatalogStore keeps products in insertion order.
//
// Ids are decimal strings taken from a counter that is never rewound,
// so a deleted id is not handed out again.
type CatalogStore struct {
	mu       sync.RWMutex
	products []domain.Product
	lastID   int
}

func NewCatalogStore(seed []domain.Product) *CatalogStore {
	s := &CatalogStore{products: append([]domain.Product(nil), seed...)}
	for _, p := range seed {
		if n, err := strconv.Atoi(p.ID); err == nil && n > s.lastID {
			s.lastID = n
		}
	}
	return s
}

func (s *CatalogStore) Add(d domain.ProductDraft) (domain.Product, error) {
	const op = "CatalogStore.Add"

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := d.Build(strconv.Itoa(s.lastID + 1))
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	s.lastID++
	s.products = append(s.products, p)
	return p, nil
}

// Edit replaces the product with the same id. Unknown ids are ignored.
func (s *CatalogStore) Edit(p domain.Product) error {
	const op = "CatalogStore.Edit"

	if err := p.Draft().Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		s.products[i] = p
	}
	return nil
}

func (s *CatalogStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.products = append(s.products[:i], s.products[i+1:]...)
	}
}

func (s *CatalogStore) Get(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.products[i], true
	}
	return domain.Product{}, false
}

// AdjustStock adds delta to the product stock, never going below zero.
func (s *CatalogStore) AdjustStock(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.products[i].Stock = max(s.products[i].Stock+delta, 0)
	}
}

func (s *CatalogStore) Search(term string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.SearchProducts(s.products, term)
}

func (s *CatalogStore) LowStock() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.LowStock(s.products)
}

func (s *CatalogStore) All() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...)
}

func (s *CatalogStore) indexOf(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}
