package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCaller   = errors.New("shop owner cannot place an order")
	ErrEmptyOrder      = errors.New("order must contain at least one line item")
	ErrEmptyLineItem   = errors.New("line item quantity must be greater than zero")
	ErrUnknownMenuItem = errors.New("unknown menu item")
	ErrPriceOverflow   = errors.New("price computation overflowed")
	ErrOrderNotFound   = errors.New("order not found")
	ErrNoOrders        = errors.New("no orders exist")
	ErrTransferFailed  = errors.New("payment transfer failed")
	ErrDuplicateOrder  = errors.New("order id already committed")
)

// IncorrectPaymentError is returned when the value attached to an invocation
// does not exactly match the order's total. Expected is in price units,
// Received in native transfer units.
type IncorrectPaymentError struct {
	Expected uint64
	Received uint64
}

func (e *IncorrectPaymentError) Error() string {
	return fmt.Sprintf("incorrect payment amount: please pay the complete amount, which is %d", e.Expected)
}
