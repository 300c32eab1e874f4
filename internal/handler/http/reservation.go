package http

import (
	"log/slog"
	"net/http"

	"github.com/ElisioMassango/chelevi-sub001/internal/service"
	"github.com/ElisioMassango/chelevi-sub001/pkg/httputil"
	"github.com/ElisioMassango/chelevi-sub001/pkg/validator"
)

// ReservationHandler serves the reservation endpoint.
type ReservationHandler struct {
	reservations *service.ReservationService
	logger       *slog.Logger
}

// NewReservationHandler creates a reservation handler.
func NewReservationHandler(reservations *service.ReservationService, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, logger: logger}
}

type reservationRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	ProductName string `json:"product_name" validate:"required"`
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Quantity    int    `json:"quantity,omitempty" validate:"omitempty,gte=1,lte=99"`
	Country     string `json:"country" validate:"required,oneof=mz pt"`
	Language    string `json:"language,omitempty" validate:"omitempty,oneof=pt en"`
}

// Create handles POST /api/v1/reservations.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	res, err := h.reservations.Create(r.Context(), service.ReservationInput{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Quantity:    req.Quantity,
		Country:     req.Country,
		Language:    req.Language,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: res})
}
