// Package service implements the storefront use cases on top of the
// repositories, the commerce backend client, and the delivery gateways.
package service

import (
	"context"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
)

// CommerceClient is the subset of the commerce backend consumed by the
// services.
type CommerceClient interface {
	CartSummary(ctx context.Context, sessionID string) (*domain.CartSummary, error)
	Coupon(ctx context.Context, code string) (*domain.Coupon, error)
	ShippingMethods(ctx context.Context) ([]domain.ShippingMethod, error)
	SubscribeNewsletter(ctx context.Context, email string) error
}

// EventPublisher publishes storefront domain events.
type EventPublisher interface {
	CartUpdated(ctx context.Context, cart *domain.Cart) error
	CartCleared(ctx context.Context, sessionID string) error
	ReservationCreated(ctx context.Context, res *domain.Reservation) error
	OrderPlaced(ctx context.Context, order *domain.Order) error
	NewsletterSubscribed(ctx context.Context, email string) error
}
