package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatusAndSentinel(t *testing.T) {
	tests := []struct {
		err      *AppError
		status   int
		sentinel error
	}{
		{NotFound("cart", "sess-1"), http.StatusNotFound, ErrNotFound},
		{InvalidInput("bad"), http.StatusBadRequest, ErrInvalidInput},
		{Conflict("concurrent"), http.StatusConflict, ErrConflict},
		{Internal(errors.New("x")), http.StatusInternalServerError, nil},
		{PaymentFailed("declined"), http.StatusUnprocessableEntity, ErrPaymentFailed},
		{GatewayUnavailable("mpesa"), http.StatusServiceUnavailable, ErrGatewayUnavail},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.Status)
		assert.Equal(t, tt.status, HTTPStatus(tt.err))
		if tt.sentinel != nil {
			assert.True(t, errors.Is(tt.err, tt.sentinel), tt.err.Code)
		}
	}
}

func TestHTTPStatusOnWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("loading cart: %w", NotFound("cart", "s"))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))

	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))

	sentinelOnly := fmt.Errorf("op: %w", ErrConflict)
	assert.Equal(t, http.StatusConflict, HTTPStatus(sentinelOnly))
}

func TestAppErrorMessage(t *testing.T) {
	err := NotFound("coupon", "SAVE10")
	assert.Contains(t, err.Error(), "NOT_FOUND")
	assert.Contains(t, err.Error(), "coupon SAVE10 not found")
}
