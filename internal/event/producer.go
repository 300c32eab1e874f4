// Package event publishes storefront domain events to Kafka.
package event

import (
	"context"
	"fmt"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
	"github.com/ElisioMassango/chelevi-sub001/pkg/kafka"
)

const source = "storefront-api"

// Event types emitted by the storefront.
const (
	TypeCartUpdated          = "storefront.cart.updated"
	TypeCartCleared          = "storefront.cart.cleared"
	TypeReservationCreated   = "storefront.reservation.created"
	TypeOrderPlaced          = "storefront.order.placed"
	TypeNewsletterSubscribed = "storefront.newsletter.subscribed"
)

// Producer publishes storefront events. Callers decide whether a publish
// failure is fatal; most treat it as best-effort.
type Producer struct {
	producer *kafka.Producer
	topic    string
}

// NewProducer wraps a Kafka producer for the storefront event topic.
func NewProducer(producer *kafka.Producer, topic string) *Producer {
	return &Producer{producer: producer, topic: topic}
}

// CartUpdated publishes the current cart state keyed by session.
func (p *Producer) CartUpdated(ctx context.Context, cart *domain.Cart) error {
	return p.publish(ctx, TypeCartUpdated, cart.SessionID, "cart", map[string]any{
		"session_id": cart.SessionID,
		"item_count": cart.ItemCount(),
		"subtotal":   cart.Subtotal(),
		"currency":   cart.Currency,
		"version":    cart.Version,
	})
}

// CartCleared publishes a cart-cleared event.
func (p *Producer) CartCleared(ctx context.Context, sessionID string) error {
	return p.publish(ctx, TypeCartCleared, sessionID, "cart", map[string]any{
		"session_id": sessionID,
	})
}

// ReservationCreated publishes a new reservation keyed by its ID.
func (p *Producer) ReservationCreated(ctx context.Context, res *domain.Reservation) error {
	return p.publish(ctx, TypeReservationCreated, res.ID, "reservation", map[string]any{
		"reservation_id": res.ID,
		"product_id":     res.ProductID,
		"quantity":       res.Quantity,
		"country":        res.Country,
	})
}

// OrderPlaced publishes a paid order keyed by its ID.
func (p *Producer) OrderPlaced(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, TypeOrderPlaced, order.ID, "order", map[string]any{
		"order_id":       order.ID,
		"session_id":     order.SessionID,
		"total":          order.Total,
		"currency":       order.Currency,
		"payment_method": order.PaymentMethod,
		"item_count":     len(order.Items),
	})
}

// NewsletterSubscribed publishes a newsletter subscription keyed by email.
func (p *Producer) NewsletterSubscribed(ctx context.Context, email string) error {
	return p.publish(ctx, TypeNewsletterSubscribed, email, "newsletter", map[string]any{
		"email": email,
	})
}

func (p *Producer) publish(ctx context.Context, eventType, aggregateID, aggregateType string, data map[string]any) error {
	evt, err := kafka.NewEvent(eventType, aggregateID, aggregateType, source, data)
	if err != nil {
		return fmt.Errorf("build %s event: %w", eventType, err)
	}
	if err := p.producer.Publish(ctx, p.topic, evt); err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	return nil
}
