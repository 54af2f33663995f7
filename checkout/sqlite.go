package checkout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/logic"
)

// SQLiteOrders persists submitted orders into orders and order_items tables.
type SQLiteOrders struct {
	db *sql.DB
}

func NewSQLiteOrders(db *sql.DB) (*SQLiteOrders, error) {
	s := &SQLiteOrders{db: db}
	if err := s.initialize(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteOrders) initialize() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT,
		address TEXT,
		notes TEXT,
		total TEXT NOT NULL,
		item_count INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME NOT NULL
	);
	CREATE TABLE IF NOT EXISTS order_items (
		order_id TEXT NOT NULL REFERENCES orders(id),
		position INTEGER NOT NULL,
		product_id TEXT NOT NULL,
		name TEXT,
		price TEXT NOT NULL,
		image_url TEXT,
		quantity INTEGER NOT NULL,
		PRIMARY KEY (order_id, position)
	);
	CREATE INDEX IF NOT EXISTS idx_orders_email ON orders(customer_email);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create order tables: %w", err)
	}
	return nil
}

func (s *SQLiteOrders) Submit(ctx context.Context, order Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_name, customer_email, customer_phone, address, notes, total, item_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, order.ID, order.Customer.Name, order.Customer.Email, order.Customer.Phone,
		order.Customer.Address, order.Customer.Notes, order.Total.String(), order.ItemCount,
		order.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to insert order %s: %w", order.ID, err)
	}

	for i, item := range order.Items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, product_id, name, price, image_url, quantity)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, order.ID, i, item.ID, item.Name, item.Price.String(), item.ImageURL, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert item %s of order %s: %w", item.ID, order.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order %s: %w", order.ID, err)
	}
	return nil
}

// Get loads a stored order by id; sql.ErrNoRows is wrapped when it does not exist.
func (s *SQLiteOrders) Get(ctx context.Context, id string) (Order, error) {
	var (
		order     Order
		total     string
		createdAt string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, customer_name, customer_email, customer_phone, address, notes, total, item_count, created_at
		FROM orders WHERE id = ?
	`, id).Scan(&order.ID, &order.Customer.Name, &order.Customer.Email, &order.Customer.Phone,
		&order.Customer.Address, &order.Customer.Notes, &total, &order.ItemCount, &createdAt)
	if err != nil {
		return Order{}, fmt.Errorf("failed to load order %s: %w", id, err)
	}
	if order.Total, err = decimal.NewFromString(total); err != nil {
		return Order{}, fmt.Errorf("order %s has invalid total: %w", id, err)
	}
	if order.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return Order{}, fmt.Errorf("order %s has invalid created_at: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, name, price, image_url, quantity
		FROM order_items WHERE order_id = ? ORDER BY position
	`, id)
	if err != nil {
		return Order{}, fmt.Errorf("failed to load items of order %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item  logic.CartItem
			price string
		)
		if err := rows.Scan(&item.ID, &item.Name, &price, &item.ImageURL, &item.Quantity); err != nil {
			return Order{}, fmt.Errorf("failed to scan item of order %s: %w", id, err)
		}
		if item.Price, err = decimal.NewFromString(price); err != nil {
			return Order{}, fmt.Errorf("item %s of order %s has invalid price: %w", item.ID, id, err)
		}
		order.Items = append(order.Items, item)
	}
	return order, rows.Err()
}
