package interfaces

import (
	"context"

	"github.com/askarbek-dev/burger-shop/internal/domain"
)

// LedgerEntry is one committed (id, order) pair in insertion order.
type LedgerEntry struct {
	ID    uint32
	Order domain.Order
}

// OrderLedger owns the canonical collection of committed orders: an
// insertion-ordered sequence for full enumeration plus an id-keyed point
// index. Both views are updated together inside Commit.
type OrderLedger interface {
	// NextID returns the id the next commit will receive (the current
	// count of committed orders). Callers read it at most once per
	// invocation and keep the read inside the same critical section as
	// the eventual Commit.
	NextID(ctx context.Context) (uint32, error)

	// Commit inserts the order into both views, all or nothing.
	// Fails with domain.ErrDuplicateOrder if id is already present.
	Commit(ctx context.Context, id uint32, order *domain.Order) error

	// Get is the point lookup. Fails with domain.ErrOrderNotFound.
	Get(ctx context.Context, id uint32) (*domain.Order, error)

	// GetAll returns the full ordered sequence, or domain.ErrNoOrders
	// when nothing has ever been committed.
	GetAll(ctx context.Context) ([]LedgerEntry, error)
}
