// Package repository defines the persistence interfaces for the storefront.
package repository

import (
	"context"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
)

// CartRepository persists carts keyed by session ID.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	// SaveIfVersion persists the cart only when the stored version still
	// matches expectedVersion, incrementing the version on success. Returns
	// false when the cart was modified concurrently.
	SaveIfVersion(ctx context.Context, cart *domain.Cart, expectedVersion int) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}

// PreferenceRepository persists per-session storefront preferences.
type PreferenceRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.Preferences, error)
	Save(ctx context.Context, prefs *domain.Preferences) error
}

// ReservationRepository persists product reservations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
}

// OrderRepository persists completed orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
