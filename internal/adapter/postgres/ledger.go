package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/askarbek-dev/burger-shop/internal/domain"
	"github.com/askarbek-dev/burger-shop/internal/interfaces"
)

// ledger is the durable OrderLedger. The primary key is the point index;
// ordering by id reproduces the insertion-ordered sequence, since ids are
// assigned from the committed-order count.
type ledger struct {
	db DB
}

func NewLedger(db DB) interfaces.OrderLedger {
	return &ledger{db: db}
}

// Migrate creates the ledger tables if they do not exist yet.
func Migrate(ctx context.Context, db DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS burger_orders (
			id          INTEGER PRIMARY KEY,
			customer    TEXT NOT NULL,
			total_price BIGINT NOT NULL,
			paid        BOOLEAN NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS burger_order_lines (
			order_id INTEGER NOT NULL REFERENCES burger_orders(id),
			position INTEGER NOT NULL,
			item     TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			PRIMARY KEY (order_id, position)
		);
	`
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create ledger schema: %w", err)
	}
	return nil
}

func (l *ledger) NextID(ctx context.Context) (uint32, error) {
	var count int64
	err := l.db.QueryRow(ctx, `SELECT COUNT(*) FROM burger_orders`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return uint32(count), nil
}

func (l *ledger) Commit(ctx context.Context, id uint32, order *domain.Order) error {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO burger_orders (id, customer, total_price, paid, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`
	tag, err := tx.Exec(ctx, query,
		int64(id), string(order.Customer), int64(order.TotalPrice), order.Paid, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDuplicateOrder
	}

	for i, line := range order.Lines {
		lineQuery := `
			INSERT INTO burger_order_lines (order_id, position, item, quantity)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.Exec(ctx, lineQuery, int64(id), i, string(line.Item), int64(line.Quantity)); err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (l *ledger) Get(ctx context.Context, id uint32) (*domain.Order, error) {
	query := `
		SELECT id, customer, total_price, paid, created_at
		FROM burger_orders
		WHERE id = $1
	`

	var (
		order    domain.Order
		orderID  int64
		customer string
		total    int64
	)
	err := l.db.QueryRow(ctx, query, int64(id)).Scan(&orderID, &customer, &total, &order.Paid, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	order.ID = uint32(orderID)
	order.Customer = domain.AccountID(customer)
	order.TotalPrice = uint64(total)

	lines, err := l.loadLines(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	return &order, nil
}

func (l *ledger) GetAll(ctx context.Context) ([]interfaces.LedgerEntry, error) {
	query := `
		SELECT id, customer, total_price, paid, created_at
		FROM burger_orders
		ORDER BY id ASC
	`

	rows, err := l.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var entries []interfaces.LedgerEntry
	for rows.Next() {
		var (
			order    domain.Order
			orderID  int64
			customer string
			total    int64
		)
		if err := rows.Scan(&orderID, &customer, &total, &order.Paid, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		order.ID = uint32(orderID)
		order.Customer = domain.AccountID(customer)
		order.TotalPrice = uint64(total)
		entries = append(entries, interfaces.LedgerEntry{ID: order.ID, Order: order})
	}
	rows.Close()

	if len(entries) == 0 {
		return nil, domain.ErrNoOrders
	}

	for i := range entries {
		lines, err := l.loadLines(ctx, entries[i].ID)
		if err != nil {
			return nil, err
		}
		entries[i].Order.Lines = lines
	}

	return entries, nil
}

func (l *ledger) loadLines(ctx context.Context, orderID uint32) ([]domain.OrderLine, error) {
	query := `
		SELECT item, quantity
		FROM burger_order_lines
		WHERE order_id = $1
		ORDER BY position ASC
	`

	rows, err := l.db.Query(ctx, query, int64(orderID))
	if err != nil {
		return nil, fmt.Errorf("failed to load order lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var (
			item     string
			quantity int64
		)
		if err := rows.Scan(&item, &quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		lines = append(lines, domain.OrderLine{
			Item:     domain.MenuItem(item),
			Quantity: uint32(quantity),
		})
	}

	return lines, nil
}
