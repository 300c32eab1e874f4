package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
	"github.com/ElisioMassango/chelevi-sub001/internal/gateway"
	"github.com/ElisioMassango/chelevi-sub001/internal/notify"
	"github.com/ElisioMassango/chelevi-sub001/internal/phone"
	"github.com/ElisioMassango/chelevi-sub001/internal/repository"
	apperrors "github.com/ElisioMassango/chelevi-sub001/pkg/errors"
)

// CheckoutInput is the customer-supplied data for placing an order.
type CheckoutInput struct {
	Name           string
	Email          string
	Phone          string
	ShippingMethod string
	Language       string
}

// OwnerContacts are the store owner's notification endpoints.
type OwnerContacts struct {
	Email    string
	WhatsApp string
}

// CheckoutService turns a cart into a paid order: phone validation, totals
// reconciliation, the synchronous M-Pesa charge, persistence, and the
// post-payment notification fan-out.
type CheckoutService struct {
	carts      *CartService
	orders     repository.OrderRepository
	commerce   CommerceClient
	charger    gateway.PaymentCharger
	email      gateway.EmailSender
	whatsapp   gateway.WhatsAppSender
	dispatcher *notify.Dispatcher
	renderer   *notify.Renderer
	events     EventPublisher
	owner      OwnerContacts
	logger     *slog.Logger
}

// NewCheckoutService creates a checkout service.
func NewCheckoutService(
	carts *CartService,
	orders repository.OrderRepository,
	commerce CommerceClient,
	charger gateway.PaymentCharger,
	email gateway.EmailSender,
	whatsapp gateway.WhatsAppSender,
	dispatcher *notify.Dispatcher,
	renderer *notify.Renderer,
	events EventPublisher,
	owner OwnerContacts,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		carts:      carts,
		orders:     orders,
		commerce:   commerce,
		charger:    charger,
		email:      email,
		whatsapp:   whatsapp,
		dispatcher: dispatcher,
		renderer:   renderer,
		events:     events,
		owner:      owner,
		logger:     logger,
	}
}

// ShippingMethods returns the delivery options from the commerce backend.
func (s *CheckoutService) ShippingMethods(ctx context.Context) ([]domain.ShippingMethod, error) {
	return s.commerce.ShippingMethods(ctx)
}

// PlaceOrder charges the cart total over M-Pesa and, on success, persists the
// order, clears the cart, and fans out confirmations. The charge is the only
// step allowed to fail the request once input validation has passed; failures
// after a successful charge are logged and swallowed so the customer still
// gets their confirmation.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, input CheckoutInput) (*domain.Order, error) {
	if ok, msg := phone.ValidateMpesa(input.Phone, input.Language); !ok {
		return nil, apperrors.InvalidInput(msg)
	}

	view, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(view.Cart.Items) == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	order := &domain.Order{
		ID:             uuid.New().String(),
		SessionID:      sessionID,
		CustomerName:   input.Name,
		CustomerEmail:  input.Email,
		CustomerPhone:  phone.Normalize(input.Phone),
		Items:          view.Cart.Items,
		Subtotal:       view.Totals.Subtotal,
		Discount:       view.Totals.Discount,
		Total:          view.Totals.Total,
		Currency:       view.Cart.Currency,
		PaymentMethod:  domain.PaymentMethodMpesa,
		PaymentRef:     uuid.New().String(),
		ShippingMethod: input.ShippingMethod,
		Status:         domain.OrderStatusPaid,
		CreatedAt:      time.Now().UTC(),
	}

	charge := gateway.PaymentRequest{
		// The gateway wants bare digits with the country code, no plus.
		CustomerNumber: strings.TrimPrefix(order.CustomerPhone, "+"),
		Amount:         majorUnits(order.Total),
		Reference:      order.PaymentRef,
		Transaction:    order.ID,
	}

	if err := s.charger.Charge(ctx, charge); err != nil {
		order.Status = domain.OrderStatusFailed
		if perr := s.orders.Create(ctx, order); perr != nil {
			s.logger.ErrorContext(ctx, "failed order not persisted",
				slog.String("order_id", order.ID),
				slog.String("error", perr.Error()))
		}
		return nil, err
	}

	if err := s.orders.Create(ctx, order); err != nil {
		// The charge already went through; losing the record is bad but not a
		// reason to tell the customer their payment failed.
		s.logger.ErrorContext(ctx, "paid order not persisted",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()))
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logger.WarnContext(ctx, "cart not cleared after checkout",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))
	}

	s.notifyOrder(ctx, order)

	if err := s.events.OrderPlaced(ctx, order); err != nil {
		s.logger.WarnContext(ctx, "order placed event not published",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()))
	}

	return order, nil
}

// notifyOrder fans out the order confirmations. Every channel is attempted;
// render errors count as that channel's failure.
func (s *CheckoutService) notifyOrder(ctx context.Context, order *domain.Order) {
	s.dispatcher.Dispatch(ctx,
		notify.Task{Channel: "customer_email", Run: func(ctx context.Context) error {
			subject, body, err := s.renderer.OrderConfirmationEmail(order)
			if err != nil {
				return err
			}
			return s.email.Send(ctx, gateway.EmailMessage{
				To:      order.CustomerEmail,
				Subject: subject,
				HTML:    body,
				Type:    "order_confirmation",
			})
		}},
		notify.Task{Channel: "customer_whatsapp", Run: func(ctx context.Context) error {
			text, err := s.renderer.OrderConfirmationText(order)
			if err != nil {
				return err
			}
			return s.whatsapp.Send(ctx, gateway.WhatsAppMessage{
				Number: order.CustomerPhone,
				Text:   text,
			})
		}},
		notify.Task{Channel: "owner_email", Run: func(ctx context.Context) error {
			subject, body, err := s.renderer.OrderOwnerAlertEmail(order)
			if err != nil {
				return err
			}
			return s.email.Send(ctx, gateway.EmailMessage{
				To:      s.owner.Email,
				Subject: subject,
				HTML:    body,
				Type:    "order_owner_alert",
			})
		}},
	)
}

// majorUnits renders a minor-unit amount as the decimal string the payment
// gateway expects.
func majorUnits(minor int64) string {
	return strconv.FormatFloat(float64(minor)/100, 'f', 2, 64)
}
