package interfaces

import (
	"context"

	"github.com/askarbek-dev/burger-shop/internal/domain"
)

// Bank is the external funds-transfer primitive. Amounts are in native
// transfer units. A transfer either fully succeeds or fails with no
// balance change; there is no partial settlement.
type Bank interface {
	Transfer(ctx context.Context, from, to domain.AccountID, amount uint64) error
}
