package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
	"github.com/ElisioMassango/chelevi-sub001/pkg/database"
	apperrors "github.com/ElisioMassango/chelevi-sub001/pkg/errors"
)

// OrderRepository implements repository.OrderRepository using PostgreSQL.
// Line items are stored as a JSONB snapshot since orders are immutable.
type OrderRepository struct {
	pool database.DBTX
}

// NewOrderRepository creates a PostgreSQL-backed order repository.
func NewOrderRepository(pool database.DBTX) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts a new order.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}

	query := `
		INSERT INTO orders (id, session_id, customer_name, customer_email, customer_phone, items, subtotal, discount, total, currency, payment_method, payment_ref, shipping_method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = r.pool.Exec(ctx, query,
		order.ID,
		order.SessionID,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		itemsJSON,
		order.Subtotal,
		order.Discount,
		order.Total,
		order.Currency,
		order.PaymentMethod,
		order.PaymentRef,
		order.ShippingMethod,
		order.Status,
		order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	return nil
}

// GetByID retrieves an order by its ID.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT id, session_id, customer_name, customer_email, customer_phone, items, subtotal, discount, total, currency, payment_method, payment_ref, shipping_method, status, created_at
		FROM orders
		WHERE id = $1`

	var order domain.Order
	var itemsJSON []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.SessionID,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&itemsJSON,
		&order.Subtotal,
		&order.Discount,
		&order.Total,
		&order.Currency,
		&order.PaymentMethod,
		&order.PaymentRef,
		&order.ShippingMethod,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("order", id)
		}
		return nil, fmt.Errorf("select order: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}

	return &order, nil
}
