package wallet

import (
	"context"
	"errors"
	"math/bits"
	"sync"

	"github.com/google/uuid"

	"github.com/askarbek-dev/burger-shop/internal/domain"
)

var (
	ErrUnknownAccount    = errors.New("unknown account")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBalanceOverflow   = errors.New("balance overflow")
)

// Wallet is the in-process settlement backend: accounts with native-unit
// balances, debited and credited under one lock so a transfer is
// all-or-nothing.
type Wallet struct {
	mu       sync.Mutex
	balances map[domain.AccountID]uint64
}

func New() *Wallet {
	return &Wallet{
		balances: make(map[domain.AccountID]uint64),
	}
}

// OpenAccount creates a fresh account funded with the given balance and
// returns its id.
func (w *Wallet) OpenAccount(balance uint64) domain.AccountID {
	id := domain.AccountID(uuid.NewString())
	w.mu.Lock()
	w.balances[id] = balance
	w.mu.Unlock()
	return id
}

// Register adds an externally named account, such as the shop owner's
// configured identity. A zero starting balance is fine for the receiver.
func (w *Wallet) Register(id domain.AccountID, balance uint64) {
	w.mu.Lock()
	w.balances[id] = balance
	w.mu.Unlock()
}

// Balance returns the current balance of an account.
func (w *Wallet) Balance(id domain.AccountID) (uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	balance, ok := w.balances[id]
	if !ok {
		return 0, ErrUnknownAccount
	}
	return balance, nil
}

// Transfer moves amount from one account to another. Either both balances
// change or neither does.
func (w *Wallet) Transfer(ctx context.Context, from, to domain.AccountID, amount uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	src, ok := w.balances[from]
	if !ok {
		return ErrUnknownAccount
	}
	dst, ok := w.balances[to]
	if !ok {
		return ErrUnknownAccount
	}

	if src < amount {
		return ErrInsufficientFunds
	}
	sum, carry := bits.Add64(dst, amount, 0)
	if carry != 0 {
		return ErrBalanceOverflow
	}

	w.balances[from] = src - amount
	w.balances[to] = sum
	return nil
}
