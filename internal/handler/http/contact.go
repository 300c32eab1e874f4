package http

import (
	"log/slog"
	"net/http"

	"github.com/ElisioMassango/chelevi-sub001/internal/service"
	"github.com/ElisioMassango/chelevi-sub001/pkg/httputil"
	"github.com/ElisioMassango/chelevi-sub001/pkg/validator"
)

// ContactHandler serves the contact form endpoint.
type ContactHandler struct {
	contact *service.ContactService
	logger  *slog.Logger
}

// NewContactHandler creates a contact handler.
func NewContactHandler(contact *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{contact: contact, logger: logger}
}

type contactRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Message  string `json:"message" validate:"required,min=5,max=4000"`
	Language string `json:"language,omitempty" validate:"omitempty,oneof=pt en"`
}

// Submit handles POST /api/v1/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	err := h.contact.Submit(r.Context(), service.ContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
		Language: req.Language,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, httputil.Response{Data: map[string]string{"status": "sent"}})
}
