package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
	"github.com/ElisioMassango/chelevi-sub001/internal/gateway"
)

type mockCartRepo struct{ mock.Mock }

func (m *mockCartRepo) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	args := m.Called(ctx, sessionID)
	if cart := args.Get(0); cart != nil {
		return cart.(*domain.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartRepo) SaveIfVersion(ctx context.Context, cart *domain.Cart, expectedVersion int) (bool, error) {
	args := m.Called(ctx, cart, expectedVersion)
	return args.Bool(0), args.Error(1)
}

func (m *mockCartRepo) Delete(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type mockPrefRepo struct{ mock.Mock }

func (m *mockPrefRepo) Get(ctx context.Context, sessionID string) (*domain.Preferences, error) {
	args := m.Called(ctx, sessionID)
	if prefs := args.Get(0); prefs != nil {
		return prefs.(*domain.Preferences), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPrefRepo) Save(ctx context.Context, prefs *domain.Preferences) error {
	return m.Called(ctx, prefs).Error(0)
}

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	return m.Called(ctx, res).Error(0)
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*domain.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if order := args.Get(0); order != nil {
		return order.(*domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCommerce struct{ mock.Mock }

func (m *mockCommerce) CartSummary(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	args := m.Called(ctx, sessionID)
	if summary := args.Get(0); summary != nil {
		return summary.(*domain.CartSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommerce) Coupon(ctx context.Context, code string) (*domain.Coupon, error) {
	args := m.Called(ctx, code)
	if coupon := args.Get(0); coupon != nil {
		return coupon.(*domain.Coupon), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommerce) ShippingMethods(ctx context.Context) ([]domain.ShippingMethod, error) {
	args := m.Called(ctx)
	if methods := args.Get(0); methods != nil {
		return methods.([]domain.ShippingMethod), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommerce) SubscribeNewsletter(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type mockEvents struct{ mock.Mock }

func (m *mockEvents) CartUpdated(ctx context.Context, cart *domain.Cart) error {
	return m.Called(ctx, cart).Error(0)
}

func (m *mockEvents) CartCleared(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *mockEvents) ReservationCreated(ctx context.Context, res *domain.Reservation) error {
	return m.Called(ctx, res).Error(0)
}

func (m *mockEvents) OrderPlaced(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockEvents) NewsletterSubscribed(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type mockEmail struct{ mock.Mock }

func (m *mockEmail) Name() string { return "email" }

func (m *mockEmail) Send(ctx context.Context, msg gateway.EmailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type mockWhatsApp struct{ mock.Mock }

func (m *mockWhatsApp) Name() string { return "whatsapp" }

func (m *mockWhatsApp) Send(ctx context.Context, msg gateway.WhatsAppMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type mockCharger struct{ mock.Mock }

func (m *mockCharger) Name() string { return "mpesa" }

func (m *mockCharger) Charge(ctx context.Context, req gateway.PaymentRequest) error {
	return m.Called(ctx, req).Error(0)
}
