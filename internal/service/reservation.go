package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
	"github.com/ElisioMassango/chelevi-sub001/internal/gateway"
	"github.com/ElisioMassango/chelevi-sub001/internal/notify"
	"github.com/ElisioMassango/chelevi-sub001/internal/phone"
	"github.com/ElisioMassango/chelevi-sub001/internal/repository"
	apperrors "github.com/ElisioMassango/chelevi-sub001/pkg/errors"
)

// ReservationInput is the customer-supplied data for holding a product.
type ReservationInput struct {
	ProductID   string
	ProductName string
	Name        string
	Email       string
	Phone       string
	Quantity    int
	Country     string
	Language    string
}

// ReservationService records product reservations and notifies both sides.
// Persistence is best-effort: the notifications are the product feature, the
// database row is the audit trail.
type ReservationService struct {
	reservations repository.ReservationRepository
	email        gateway.EmailSender
	whatsapp     gateway.WhatsAppSender
	dispatcher   *notify.Dispatcher
	renderer     *notify.Renderer
	events       EventPublisher
	owner        OwnerContacts
	logger       *slog.Logger
}

// NewReservationService creates a reservation service.
func NewReservationService(
	reservations repository.ReservationRepository,
	email gateway.EmailSender,
	whatsapp gateway.WhatsAppSender,
	dispatcher *notify.Dispatcher,
	renderer *notify.Renderer,
	events EventPublisher,
	owner OwnerContacts,
	logger *slog.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		email:        email,
		whatsapp:     whatsapp,
		dispatcher:   dispatcher,
		renderer:     renderer,
		events:       events,
		owner:        owner,
		logger:       logger,
	}
}

// Create validates and records a reservation, then fans out the
// acknowledgement to the customer and the alert to the owner.
func (s *ReservationService) Create(ctx context.Context, input ReservationInput) (*domain.Reservation, error) {
	if !domain.IsValidCountry(input.Country) {
		return nil, apperrors.InvalidInput("country must be one of: mz, pt")
	}
	if ok, msg := phone.ValidateForCountry(input.Phone, input.Country, input.Language); !ok {
		return nil, apperrors.InvalidInput(msg)
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	res := &domain.Reservation{
		ID:            uuid.New().String(),
		ProductID:     input.ProductID,
		ProductName:   input.ProductName,
		CustomerName:  input.Name,
		CustomerEmail: input.Email,
		CustomerPhone: phone.Normalize(input.Phone),
		Quantity:      input.Quantity,
		Country:       input.Country,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.reservations.Create(ctx, res); err != nil {
		s.logger.ErrorContext(ctx, "reservation not persisted",
			slog.String("reservation_id", res.ID),
			slog.String("error", err.Error()))
	}

	s.notifyReservation(ctx, res)

	if err := s.events.ReservationCreated(ctx, res); err != nil {
		s.logger.WarnContext(ctx, "reservation created event not published",
			slog.String("reservation_id", res.ID),
			slog.String("error", err.Error()))
	}

	return res, nil
}

func (s *ReservationService) notifyReservation(ctx context.Context, res *domain.Reservation) {
	s.dispatcher.Dispatch(ctx,
		notify.Task{Channel: "customer_email", Run: func(ctx context.Context) error {
			subject, body, err := s.renderer.ReservationReceivedEmail(res)
			if err != nil {
				return err
			}
			return s.email.Send(ctx, gateway.EmailMessage{
				To:      res.CustomerEmail,
				Subject: subject,
				HTML:    body,
				Type:    "reservation_received",
			})
		}},
		notify.Task{Channel: "owner_email", Run: func(ctx context.Context) error {
			subject, body, err := s.renderer.ReservationOwnerAlertEmail(res)
			if err != nil {
				return err
			}
			return s.email.Send(ctx, gateway.EmailMessage{
				To:      s.owner.Email,
				Subject: subject,
				HTML:    body,
				Type:    "reservation_owner_alert",
			})
		}},
		notify.Task{Channel: "owner_whatsapp", Run: func(ctx context.Context) error {
			text, err := s.renderer.ReservationOwnerAlertText(res)
			if err != nil {
				return err
			}
			return s.whatsapp.Send(ctx, gateway.WhatsAppMessage{
				Number: s.owner.WhatsApp,
				Text:   text,
			})
		}},
	)
}
