package http

import (
	"log/slog"
	"net/http"

	"github.com/ElisioMassango/chelevi-sub001/internal/service"
	"github.com/ElisioMassango/chelevi-sub001/pkg/httputil"
	"github.com/ElisioMassango/chelevi-sub001/pkg/validator"
)

// CheckoutHandler serves checkout and shipping endpoints.
type CheckoutHandler struct {
	checkout *service.CheckoutService
	logger   *slog.Logger
}

// NewCheckoutHandler creates a checkout handler.
func NewCheckoutHandler(checkout *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, logger: logger}
}

type checkoutRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=120"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	ShippingMethod string `json:"shipping_method,omitempty"`
	Language       string `json:"language,omitempty" validate:"omitempty,oneof=pt en"`
}

// PlaceOrder handles POST /api/v1/checkout.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	order, err := h.checkout.PlaceOrder(r.Context(), SessionID(r), service.CheckoutInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		ShippingMethod: req.ShippingMethod,
		Language:       req.Language,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: order})
}

// ShippingMethods handles GET /api/v1/shipping-methods.
func (h *CheckoutHandler) ShippingMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.checkout.ShippingMethods(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: methods})
}
