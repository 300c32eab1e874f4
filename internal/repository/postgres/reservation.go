package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
	"github.com/ElisioMassango/chelevi-sub001/pkg/database"
	apperrors "github.com/ElisioMassango/chelevi-sub001/pkg/errors"
)

// ReservationRepository implements repository.ReservationRepository using
// PostgreSQL.
type ReservationRepository struct {
	pool database.DBTX
}

// NewReservationRepository creates a PostgreSQL-backed reservation repository.
func NewReservationRepository(pool database.DBTX) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// Create inserts a new reservation.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `
		INSERT INTO reservations (id, product_id, product_name, customer_name, customer_email, customer_phone, quantity, country, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		res.ID,
		res.ProductID,
		res.ProductName,
		res.CustomerName,
		res.CustomerEmail,
		res.CustomerPhone,
		res.Quantity,
		res.Country,
		res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

// GetByID retrieves a reservation by its ID.
func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `
		SELECT id, product_id, product_name, customer_name, customer_email, customer_phone, quantity, country, created_at
		FROM reservations
		WHERE id = $1`

	var res domain.Reservation
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&res.ID,
		&res.ProductID,
		&res.ProductName,
		&res.CustomerName,
		&res.CustomerEmail,
		&res.CustomerPhone,
		&res.Quantity,
		&res.Country,
		&res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("reservation", id)
		}
		return nil, fmt.Errorf("select reservation: %w", err)
	}

	return &res, nil
}
