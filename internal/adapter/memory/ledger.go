package memory

import (
	"context"
	"sync"

	"github.com/askarbek-dev/burger-shop/internal/domain"
	"github.com/askarbek-dev/burger-shop/internal/interfaces"
)

// Ledger keeps both ledger views in process memory: an append-only slice
// for enumeration and an id-keyed map for point lookup. The two are only
// ever written together, under one lock.
type Ledger struct {
	mu    sync.RWMutex
	seq   []interfaces.LedgerEntry
	index map[uint32]domain.Order
}

func NewLedger() *Ledger {
	return &Ledger{
		index: make(map[uint32]domain.Order),
	}
}

func (l *Ledger) NextID(ctx context.Context) (uint32, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return uint32(len(l.seq)), nil
}

func (l *Ledger) Commit(ctx context.Context, id uint32, order *domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.index[id]; ok {
		return domain.ErrDuplicateOrder
	}

	// The ledger owns its copies; callers keep no mutable reference into
	// the stored sequence.
	stored := cloneOrder(*order)
	l.index[id] = stored
	l.seq = append(l.seq, interfaces.LedgerEntry{ID: id, Order: stored})
	return nil
}

func (l *Ledger) Get(ctx context.Context, id uint32) (*domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stored, ok := l.index[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	order := cloneOrder(stored)
	return &order, nil
}

func (l *Ledger) GetAll(ctx context.Context) ([]interfaces.LedgerEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.seq) == 0 {
		return nil, domain.ErrNoOrders
	}

	entries := make([]interfaces.LedgerEntry, len(l.seq))
	for i, e := range l.seq {
		entries[i] = interfaces.LedgerEntry{ID: e.ID, Order: cloneOrder(e.Order)}
	}
	return entries, nil
}

func cloneOrder(o domain.Order) domain.Order {
	lines := make([]domain.OrderLine, len(o.Lines))
	copy(lines, o.Lines)
	o.Lines = lines
	return o
}
