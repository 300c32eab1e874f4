package http

import (
	"log/slog"
	"net/http"

	"github.com/ElisioMassango/chelevi-sub001/internal/service"
	"github.com/ElisioMassango/chelevi-sub001/pkg/httputil"
	"github.com/ElisioMassango/chelevi-sub001/pkg/validator"
)

// PreferencesHandler serves the per-session preferences endpoints.
type PreferencesHandler struct {
	prefs  *service.PreferenceService
	logger *slog.Logger
}

// NewPreferencesHandler creates a preferences handler.
func NewPreferencesHandler(prefs *service.PreferenceService, logger *slog.Logger) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs, logger: logger}
}

type updatePreferencesRequest struct {
	Currency      *string `json:"currency,omitempty" validate:"omitempty,oneof=MZN EUR"`
	Language      *string `json:"language,omitempty" validate:"omitempty,oneof=pt en"`
	CookieConsent *string `json:"cookie_consent,omitempty" validate:"omitempty,oneof=accepted rejected"`
}

// Get handles GET /api/v1/preferences.
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.prefs.Get(r.Context(), SessionID(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: prefs})
}

// Update handles PUT /api/v1/preferences.
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePreferencesRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	prefs, err := h.prefs.Update(r.Context(), SessionID(r), service.PreferencesUpdate{
		Currency:      req.Currency,
		Language:      req.Language,
		CookieConsent: req.CookieConsent,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: prefs})
}
