package service

import (
	"context"
	"time"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
	"github.com/ElisioMassango/chelevi-sub001/internal/repository"
	apperrors "github.com/ElisioMassango/chelevi-sub001/pkg/errors"
)

// PreferencesUpdate carries the fields a session may change. Nil fields are
// left untouched.
type PreferencesUpdate struct {
	Currency      *string
	Language      *string
	CookieConsent *string
}

// PreferenceService reads and writes per-session storefront preferences.
type PreferenceService struct {
	prefs repository.PreferenceRepository
}

// NewPreferenceService creates a preference service.
func NewPreferenceService(prefs repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

// Get returns the session's preferences, defaults included.
func (s *PreferenceService) Get(ctx context.Context, sessionID string) (*domain.Preferences, error) {
	return s.prefs.Get(ctx, sessionID)
}

// Update applies the given changes. Writes are last-write-wins per session.
func (s *PreferenceService) Update(ctx context.Context, sessionID string, update PreferencesUpdate) (*domain.Preferences, error) {
	prefs, err := s.prefs.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if update.Currency != nil {
		if !domain.IsValidCurrency(*update.Currency) {
			return nil, apperrors.InvalidInput("currency must be one of: MZN, EUR")
		}
		prefs.Currency = *update.Currency
	}
	if update.Language != nil {
		if !domain.IsValidLanguage(*update.Language) {
			return nil, apperrors.InvalidInput("language must be one of: pt, en")
		}
		prefs.Language = *update.Language
	}
	if update.CookieConsent != nil {
		if *update.CookieConsent != domain.ConsentAccepted && *update.CookieConsent != domain.ConsentRejected {
			return nil, apperrors.InvalidInput("cookie_consent must be accepted or rejected")
		}
		now := time.Now().UTC()
		prefs.CookieConsent = *update.CookieConsent
		prefs.CookieConsentAt = &now
	}

	if err := s.prefs.Save(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
