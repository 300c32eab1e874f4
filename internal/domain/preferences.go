package domain

import "time"

// Supported UI languages.
const (
	LanguagePortuguese = "pt"
	LanguageEnglish    = "en"
)

// Preferences is the per-session mirror of the browser-persisted storefront
// settings. A single session owns it at a time; writes are last-write-wins.
type Preferences struct {
	SessionID            string     `json:"session_id"`
	Currency             string     `json:"currency"`
	Language             string     `json:"language"`
	NewsletterDismissed  bool       `json:"newsletter_dismissed"`
	NewsletterSubscribed bool       `json:"newsletter_subscribed"`
	CookieConsent        string     `json:"cookie_consent,omitempty"`
	CookieConsentAt      *time.Time `json:"cookie_consent_at,omitempty"`
}

// Cookie consent decisions.
const (
	ConsentAccepted = "accepted"
	ConsentRejected = "rejected"
)

// DefaultPreferences returns the defaults applied before a session makes any
// explicit choice.
func DefaultPreferences(sessionID string) *Preferences {
	return &Preferences{
		SessionID: sessionID,
		Currency:  CurrencyMZN,
		Language:  LanguagePortuguese,
	}
}

// IsValidCurrency checks whether the given currency is supported.
func IsValidCurrency(currency string) bool {
	return currency == CurrencyMZN || currency == CurrencyEUR
}

// IsValidLanguage checks whether the given language is supported.
func IsValidLanguage(language string) bool {
	return language == LanguagePortuguese || language == LanguageEnglish
}
