package interfaces

import (
	"context"

	"github.com/askarbek-dev/burger-shop/internal/domain"
)

// Call carries what the execution environment exposes about the current
// invocation: who is calling and how much value they attached, in native
// transfer units.
type Call struct {
	Caller        domain.AccountID
	AttachedValue uint64
}

// Commands for the shop service.
type CreateOrderCommand struct {
	Call  Call
	Lines []OrderLineCommand
}

type OrderLineCommand struct {
	Item     string
	Quantity uint32
}

// ShopService is the externally callable surface of the shop.
type ShopService interface {
	CreateOrderAndPay(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error)
	GetSingleOrder(ctx context.Context, id uint32) (*domain.Order, error)
	GetAllOrders(ctx context.Context) ([]LedgerEntry, error)
}
