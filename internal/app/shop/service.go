package shop

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/askarbek-dev/burger-shop/internal/adapter/logger"
	"github.com/askarbek-dev/burger-shop/internal/domain"
	"github.com/askarbek-dev/burger-shop/internal/interfaces"
)

// Service runs the order/payment workflow and answers ledger queries.
// The mutex serializes the id read, the funds transfer and the commit, so
// two concurrent invocations can never observe the same next id.
type Service struct {
	owner     domain.AccountID
	ledger    interfaces.OrderLedger
	bank      interfaces.Bank
	publisher interfaces.PaymentPublisher
	logger    logger.Logger

	mu sync.Mutex
}

func NewService(owner domain.AccountID, ledger interfaces.OrderLedger, bank interfaces.Bank, publisher interfaces.PaymentPublisher, logger logger.Logger) *Service {
	return &Service{
		owner:     owner,
		ledger:    ledger,
		bank:      bank,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateOrderAndPay validates the proposed order, prices it, verifies that
// the attached value matches the total exactly, moves the funds to the shop
// owner and commits the paid order. Every failure exit leaves the ledger
// untouched.
func (s *Service) CreateOrderAndPay(ctx context.Context, cmd interfaces.CreateOrderCommand) (*domain.Order, error) {
	// Proposed -> Validated
	if cmd.Call.Caller == s.owner {
		s.logger.Error("validation_failed", "Owner tried to order from own shop", "", nil, domain.ErrInvalidCaller)
		return nil, domain.ErrInvalidCaller
	}

	lines, err := linesFromCommand(cmd.Lines)
	if err != nil {
		s.logger.Error("validation_failed", "Order validation failed", "", nil, err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Validated -> Priced. The single id read for this invocation.
	id, err := s.ledger.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read next order id: %w", err)
	}

	order, err := domain.NewOrder(id, cmd.Call.Caller, lines)
	if err != nil {
		s.logger.Error("pricing_failed", "Failed to build candidate order", "", nil, err)
		return nil, err
	}

	// Priced -> PaymentVerified. Exact match only: no overpayment credit,
	// no underpayment tolerance.
	expected, err := domain.NativeValue(order.TotalPrice)
	if err != nil {
		return nil, err
	}
	if cmd.Call.AttachedValue != expected {
		s.logger.Debug("payment_rejected", "Attached value does not match order total", "", map[string]interface{}{
			"expected_price": order.TotalPrice,
			"received_value": cmd.Call.AttachedValue,
		})
		return nil, &domain.IncorrectPaymentError{
			Expected: order.TotalPrice,
			Received: cmd.Call.AttachedValue,
		}
	}

	// PaymentVerified -> Committed. Transfer first; the ledger is only
	// touched once the funds have actually moved.
	if err := s.bank.Transfer(ctx, cmd.Call.Caller, s.owner, cmd.Call.AttachedValue); err != nil {
		s.logger.Error("transfer_failed", "Funds transfer failed", "", map[string]interface{}{
			"order_id": id,
		}, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrTransferFailed, err)
	}

	order.MarkPaid()

	if err := s.ledger.Commit(ctx, id, order); err != nil {
		// The lock makes this unreachable short of a broken ledger
		// backend; surface it loudly rather than swallow it.
		s.logger.Error("commit_failed", "Ledger commit failed after transfer", "", map[string]interface{}{
			"order_id": id,
		}, err)
		return nil, fmt.Errorf("failed to commit order %d: %w", id, err)
	}

	s.logger.Info("order_paid", "Order paid and committed", "", map[string]interface{}{
		"order_id":    id,
		"total_price": order.TotalPrice,
		"customer":    string(order.Customer),
	})

	msg := interfaces.PaymentRecordedMessage{
		OrderID:   id,
		Customer:  order.Customer,
		ShopOwner: s.owner,
		Amount:    order.TotalPrice,
		PaidAt:    time.Now().UTC(),
	}
	if err := s.publisher.PublishPaymentRecorded(ctx, msg); err != nil {
		// The order is already durable; the notification is advisory.
		s.logger.Error("publish_failed", "Failed to publish payment notification", "", map[string]interface{}{
			"order_id": id,
		}, err)
	}

	return order, nil
}

// GetSingleOrder delegates to the ledger's point lookup.
func (s *Service) GetSingleOrder(ctx context.Context, id uint32) (*domain.Order, error) {
	return s.ledger.Get(ctx, id)
}

// GetAllOrders returns every committed order in insertion order.
func (s *Service) GetAllOrders(ctx context.Context) ([]interfaces.LedgerEntry, error) {
	return s.ledger.GetAll(ctx)
}

func linesFromCommand(cmds []interfaces.OrderLineCommand) ([]domain.OrderLine, error) {
	lines := make([]domain.OrderLine, len(cmds))
	for i, c := range cmds {
		lines[i] = domain.OrderLine{
			Item:     domain.MenuItem(c.Item),
			Quantity: c.Quantity,
		}
	}
	if err := domain.ValidateLines(lines); err != nil {
		return nil, err
	}
	return lines, nil
}
