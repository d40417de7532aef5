package interfaces

import (
	"context"
	"time"

	"github.com/askarbek-dev/burger-shop/internal/domain"
)

// PaymentRecordedMessage is published after an order has been paid and
// committed. Amount is in price units.
type PaymentRecordedMessage struct {
	OrderID   uint32           `json:"order_id"`
	Customer  domain.AccountID `json:"customer"`
	ShopOwner domain.AccountID `json:"shop_owner"`
	Amount    uint64           `json:"amount"`
	PaidAt    time.Time        `json:"paid_at"`
}

// PaymentPublisher fans the payment-recorded notification out to whoever
// listens. Publishing happens after the ledger commit; a failure here does
// not undo the order.
type PaymentPublisher interface {
	PublishPaymentRecorded(ctx context.Context, msg PaymentRecordedMessage) error
}
