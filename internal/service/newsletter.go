package service

import (
	"context"
	"log/slog"

	"github.com/ElisioMassango/chelevi-sub001/internal/gateway"
	"github.com/ElisioMassango/chelevi-sub001/internal/notify"
	"github.com/ElisioMassango/chelevi-sub001/internal/repository"
)

// NewsletterService handles newsletter subscriptions and popup dismissals.
type NewsletterService struct {
	prefs      repository.PreferenceRepository
	commerce   CommerceClient
	email      gateway.EmailSender
	whatsapp   gateway.WhatsAppSender
	dispatcher *notify.Dispatcher
	renderer   *notify.Renderer
	events     EventPublisher
	owner      OwnerContacts
	logger     *slog.Logger
}

// NewNewsletterService creates a newsletter service.
func NewNewsletterService(
	prefs repository.PreferenceRepository,
	commerce CommerceClient,
	email gateway.EmailSender,
	whatsapp gateway.WhatsAppSender,
	dispatcher *notify.Dispatcher,
	renderer *notify.Renderer,
	events EventPublisher,
	owner OwnerContacts,
	logger *slog.Logger,
) *NewsletterService {
	return &NewsletterService{
		prefs:      prefs,
		commerce:   commerce,
		email:      email,
		whatsapp:   whatsapp,
		dispatcher: dispatcher,
		renderer:   renderer,
		events:     events,
		owner:      owner,
		logger:     logger,
	}
}

// Subscribe registers the email with the commerce backend list, marks the
// session as subscribed, and fans out the welcome email and the owner alert.
// Only the backend registration can fail the request; the rest is best-effort.
func (s *NewsletterService) Subscribe(ctx context.Context, sessionID, email string) error {
	if err := s.commerce.SubscribeNewsletter(ctx, email); err != nil {
		return err
	}

	if prefs, err := s.prefs.Get(ctx, sessionID); err == nil {
		prefs.NewsletterSubscribed = true
		prefs.NewsletterDismissed = true
		if err := s.prefs.Save(ctx, prefs); err != nil {
			s.logger.WarnContext(ctx, "newsletter preference not saved",
				slog.String("error", err.Error()))
		}
	}

	s.dispatcher.Dispatch(ctx,
		notify.Task{Channel: "welcome_email", Run: func(ctx context.Context) error {
			subject, body, err := s.renderer.NewsletterWelcomeEmail(email)
			if err != nil {
				return err
			}
			return s.email.Send(ctx, gateway.EmailMessage{
				To:      email,
				Subject: subject,
				HTML:    body,
				Type:    "newsletter_welcome",
			})
		}},
		notify.Task{Channel: "owner_whatsapp", Run: func(ctx context.Context) error {
			text, err := s.renderer.NewsletterOwnerAlertText(email)
			if err != nil {
				return err
			}
			return s.whatsapp.Send(ctx, gateway.WhatsAppMessage{
				Number: s.owner.WhatsApp,
				Text:   text,
			})
		}},
	)

	if err := s.events.NewsletterSubscribed(ctx, email); err != nil {
		s.logger.WarnContext(ctx, "newsletter subscribed event not published",
			slog.String("error", err.Error()))
	}

	return nil
}

// Dismiss records that the session closed the newsletter popup so it is not
// shown again.
func (s *NewsletterService) Dismiss(ctx context.Context, sessionID string) error {
	prefs, err := s.prefs.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	prefs.NewsletterDismissed = true
	return s.prefs.Save(ctx, prefs)
}
