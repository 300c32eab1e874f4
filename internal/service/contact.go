package service

import (
	"context"

	"github.com/ElisioMassango/chelevi-sub001/internal/gateway"
	"github.com/ElisioMassango/chelevi-sub001/internal/i18n"
	"github.com/ElisioMassango/chelevi-sub001/internal/notify"
	"github.com/ElisioMassango/chelevi-sub001/internal/phone"
	apperrors "github.com/ElisioMassango/chelevi-sub001/pkg/errors"
)

// ContactInput is one contact-form submission.
type ContactInput struct {
	Name     string
	Email    string
	Phone    string
	Message  string
	Language string
}

// ContactService forwards contact-form submissions to the owner. Delivery is
// a fan-out to the owner email and WhatsApp channels; the submission succeeds
// even when every channel fails, with failures logged by the dispatcher.
type ContactService struct {
	email      gateway.EmailSender
	whatsapp   gateway.WhatsAppSender
	dispatcher *notify.Dispatcher
	renderer   *notify.Renderer
	owner      OwnerContacts
}

// NewContactService creates a contact service.
func NewContactService(
	email gateway.EmailSender,
	whatsapp gateway.WhatsAppSender,
	dispatcher *notify.Dispatcher,
	renderer *notify.Renderer,
	owner OwnerContacts,
) *ContactService {
	return &ContactService{
		email:      email,
		whatsapp:   whatsapp,
		dispatcher: dispatcher,
		renderer:   renderer,
		owner:      owner,
	}
}

// Submit validates the optional phone and fans the message out to the owner
// channels.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) error {
	normalized := ""
	if input.Phone != "" {
		if !phone.IsValid(input.Phone) {
			return apperrors.InvalidInput(i18n.T(input.Language, "phone.invalid"))
		}
		normalized = phone.Normalize(input.Phone)
	}

	s.dispatcher.Dispatch(ctx,
		notify.Task{Channel: "owner_email", Run: func(ctx context.Context) error {
			subject, body, err := s.renderer.ContactOwnerEmail(input.Name, input.Email, normalized, input.Message)
			if err != nil {
				return err
			}
			return s.email.Send(ctx, gateway.EmailMessage{
				To:      s.owner.Email,
				Subject: subject,
				HTML:    body,
				Type:    "contact",
			})
		}},
		notify.Task{Channel: "owner_whatsapp", Run: func(ctx context.Context) error {
			text, err := s.renderer.ContactOwnerText(input.Name, input.Email, normalized, input.Message)
			if err != nil {
				return err
			}
			return s.whatsapp.Send(ctx, gateway.WhatsAppMessage{
				Number: s.owner.WhatsApp,
				Text:   text,
			})
		}},
	)

	return nil
}
