package memory

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/niksmo/inventory-pos/internal/core/domain"
	"github.com/niksmo/inventory-pos/internal/core/port"
)

var _ port.SaleLedger = (*SaleLedger)(nil)

// A SaleLedger only ever appends. Clear drops the whole history at once.
type SaleLedger struct {
	mu     sync.RWMutex
	sales  []domain.Sale
	lastID int
}

func NewSaleLedger(seed []domain.Sale) *SaleLedger {
	l := &SaleLedger{sales: domain.CloneSales(seed)}
	for _, s := range seed {
		if n, err := strconv.Atoi(s.ID); err == nil && n > l.lastID {
			l.lastID = n
		}
	}
	return l
}

func (l *SaleLedger) Record(
	at time.Time, lines []domain.SaleLine,
) (domain.Sale, error) {
	const op = "SaleLedger.Record"

	l.mu.Lock()
	defer l.mu.Unlock()

	s, err := domain.NewSale(strconv.Itoa(l.lastID+1), at, lines)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("%s: %w", op, err)
	}
	l.lastID++
	l.sales = append(l.sales, s)
	return domain.CloneSales([]domain.Sale{s})[0], nil
}

func (l *SaleLedger) All() []domain.Sale {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return domain.CloneSales(l.sales)
}

func (l *SaleLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sales)
}

// Clear drops all sales. Ids keep growing from where they were.
func (l *SaleLedger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sales = nil
}
