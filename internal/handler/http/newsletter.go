package http

import (
	"log/slog"
	"net/http"

	"github.com/ElisioMassango/chelevi-sub001/internal/service"
	"github.com/ElisioMassango/chelevi-sub001/pkg/httputil"
	"github.com/ElisioMassango/chelevi-sub001/pkg/validator"
)

// NewsletterHandler serves the newsletter endpoints.
type NewsletterHandler struct {
	newsletter *service.NewsletterService
	logger     *slog.Logger
}

// NewNewsletterHandler creates a newsletter handler.
func NewNewsletterHandler(newsletter *service.NewsletterService, logger *slog.Logger) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter, logger: logger}
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe handles POST /api/v1/newsletter/subscribe.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if err := h.newsletter.Subscribe(r.Context(), SessionID(r), req.Email); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: map[string]string{"status": "subscribed"}})
}

// Dismiss handles POST /api/v1/newsletter/dismiss.
func (h *NewsletterHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	if err := h.newsletter.Dismiss(r.Context(), SessionID(r)); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
