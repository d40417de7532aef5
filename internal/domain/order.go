package domain

import "time"

// AccountID identifies a party that can hold funds: a customer or the shop owner.
type AccountID string

// OrderLine is one menu item and how many units of it the customer wants.
type OrderLine struct {
	Item     MenuItem
	Quantity uint32
}

// Order represents a customer's order entity. Apart from the single unpaid
// to paid transition it is immutable after creation: the total is computed
// once and never recomputed.
type Order struct {
	ID         uint32
	Lines      []OrderLine
	Customer   AccountID
	TotalPrice uint64
	Paid       bool
	CreatedAt  time.Time
}

// NewOrder builds an unpaid candidate order with business rules applied.
// The id is the one the ledger will commit it under.
func NewOrder(id uint32, customer AccountID, lines []OrderLine) (*Order, error) {
	if err := ValidateLines(lines); err != nil {
		return nil, err
	}

	total, err := OrderTotal(lines)
	if err != nil {
		return nil, err
	}

	return &Order{
		ID:         id,
		Lines:      lines,
		Customer:   customer,
		TotalPrice: total,
		Paid:       false,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// ValidateLines applies the order-content validation rules.
func ValidateLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrEmptyOrder
	}
	for _, line := range lines {
		if !line.Item.Valid() {
			return ErrUnknownMenuItem
		}
		if line.Quantity == 0 {
			return ErrEmptyLineItem
		}
	}
	return nil
}

// MarkPaid flips the paid flag. It is called exactly once, after the funds
// transfer succeeded and immediately before the ledger commit.
func (o *Order) MarkPaid() {
	o.Paid = true
}
