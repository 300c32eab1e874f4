package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
	"github.com/ElisioMassango/chelevi-sub001/internal/repository"
	apperrors "github.com/ElisioMassango/chelevi-sub001/pkg/errors"
)

// saveAttempts bounds the optimistic-lock retry loop on cart mutations.
const saveAttempts = 3

const cartTTL = 30 * 24 * time.Hour

// CartView is a cart together with its reconciled totals.
type CartView struct {
	Cart   *domain.Cart  `json:"cart"`
	Totals domain.Totals `json:"totals"`
}

// CartService owns the cart lifecycle: line-item mutations, coupon handling,
// and totals reconciliation against the commerce backend.
type CartService struct {
	carts    repository.CartRepository
	prefs    repository.PreferenceRepository
	commerce CommerceClient
	events   EventPublisher
	logger   *slog.Logger
}

// NewCartService creates a cart service.
func NewCartService(
	carts repository.CartRepository,
	prefs repository.PreferenceRepository,
	commerce CommerceClient,
	events EventPublisher,
	logger *slog.Logger,
) *CartService {
	return &CartService{
		carts:    carts,
		prefs:    prefs,
		commerce: commerce,
		events:   events,
		logger:   logger,
	}
}

// Get returns the session's cart with reconciled totals. A session without a
// cart gets an empty one rather than a 404. The backend summary is fetched
// best-effort; when it is unavailable the local calculation stands alone.
func (s *CartService) Get(ctx context.Context, sessionID string) (*CartView, error) {
	cart, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary := s.fetchSummary(ctx, sessionID)

	// The backend is the coupon source of truth on refresh: a coupon it no
	// longer reports as active is dropped from the local cart.
	if summary != nil {
		if summary.Coupon.Active() {
			cart.Coupon = summary.Coupon
		} else if cart.Coupon != nil {
			cart.Coupon = nil
		}
	}

	return &CartView{
		Cart:   cart,
		Totals: domain.ReconcileTotals(cart.Items, cart.Coupon, summary),
	}, nil
}

// AddItem adds a line item to the cart, merging quantity with an existing line
// for the same product and variant.
func (s *CartService) AddItem(ctx context.Context, sessionID string, item domain.CartItem) (*CartView, error) {
	if item.ProductID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if item.Quantity <= 0 {
		return nil, apperrors.InvalidInput("quantity must be positive")
	}
	if item.Price < 0 {
		return nil, apperrors.InvalidInput("price must not be negative")
	}

	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		if i := cart.FindItemIndex(item.ProductID, item.Variant); i >= 0 {
			cart.Items[i].Quantity += item.Quantity
		} else {
			cart.Items = append(cart.Items, item)
		}
		return nil
	})
}

// UpdateQuantity sets the quantity of a line item. Zero removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID, variant string, quantity int) (*CartView, error) {
	if quantity < 0 {
		return nil, apperrors.InvalidInput("quantity must not be negative")
	}

	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		i := cart.FindItemIndex(productID, variant)
		if i < 0 {
			return apperrors.NotFound("cart item", productID)
		}
		if quantity == 0 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			cart.Items[i].Quantity = quantity
		}
		return nil
	})
}

// RemoveItem removes a line item from the cart.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID, variant string) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		i := cart.FindItemIndex(productID, variant)
		if i < 0 {
			return apperrors.NotFound("cart item", productID)
		}
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		return nil
	})
}

// Clear deletes the session's cart entirely.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return err
	}
	if err := s.events.CartCleared(ctx, sessionID); err != nil {
		s.logger.WarnContext(ctx, "cart cleared event not published",
			slog.String("error", err.Error()))
	}
	return nil
}

// ApplyCoupon looks up a coupon code on the commerce backend and attaches it
// to the cart.
func (s *CartService) ApplyCoupon(ctx context.Context, sessionID, code string) (*CartView, error) {
	if code == "" {
		return nil, apperrors.InvalidInput("coupon code is required")
	}

	coupon, err := s.commerce.Coupon(ctx, code)
	if err != nil {
		return nil, err
	}
	if !coupon.Active() {
		return nil, apperrors.InvalidInput("coupon is not active")
	}

	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		cart.Coupon = coupon
		return nil
	})
}

// RemoveCoupon detaches any coupon from the cart.
func (s *CartService) RemoveCoupon(ctx context.Context, sessionID string) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		cart.Coupon = nil
		return nil
	})
}

// mutate applies fn to the cart under optimistic concurrency, retrying a
// bounded number of times on version conflicts.
func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(*domain.Cart) error) (*CartView, error) {
	for attempt := 0; attempt < saveAttempts; attempt++ {
		cart, err := s.loadOrCreate(ctx, sessionID)
		if err != nil {
			return nil, err
		}

		expected := cart.Version
		if err := fn(cart); err != nil {
			return nil, err
		}
		cart.UpdatedAt = time.Now().UTC()
		cart.ExpiresAt = cart.UpdatedAt.Add(cartTTL)

		saved, err := s.carts.SaveIfVersion(ctx, cart, expected)
		if err != nil {
			return nil, err
		}
		if !saved {
			continue
		}

		if err := s.events.CartUpdated(ctx, cart); err != nil {
			s.logger.WarnContext(ctx, "cart updated event not published",
				slog.String("error", err.Error()))
		}

		summary := s.fetchSummary(ctx, sessionID)
		return &CartView{
			Cart:   cart,
			Totals: domain.ReconcileTotals(cart.Items, cart.Coupon, summary),
		}, nil
	}

	return nil, apperrors.Conflict("cart was modified concurrently, retry the request")
}

func (s *CartService) loadOrCreate(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	currency := domain.CurrencyMZN
	if prefs, perr := s.prefs.Get(ctx, sessionID); perr == nil {
		currency = prefs.Currency
	}

	now := time.Now().UTC()
	return &domain.Cart{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Items:     []domain.CartItem{},
		Currency:  currency,
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(cartTTL),
	}, nil
}

// fetchSummary returns the backend summary or nil. Summary failures never
// fail the request.
func (s *CartService) fetchSummary(ctx context.Context, sessionID string) *domain.CartSummary {
	summary, err := s.commerce.CartSummary(ctx, sessionID)
	if err != nil {
		s.logger.DebugContext(ctx, "cart summary unavailable, using local totals",
			slog.String("error", err.Error()))
		return nil
	}
	return summary
}
