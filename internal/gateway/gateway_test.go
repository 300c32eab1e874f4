package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ElisioMassango/chelevi-sub001/pkg/errors"
	"github.com/ElisioMassango/chelevi-sub001/pkg/httpclient"
	"github.com/ElisioMassango/chelevi-sub001/pkg/logger"
)

func newBreakerClient(name string) *httpclient.CircuitBreakerClient {
	cfg := httpclient.DefaultConfig()
	cfg.MaxRetries = 0
	cfg.Timeout = 2 * time.Second
	return httpclient.NewCircuitBreakerClient(
		httpclient.New(cfg),
		httpclient.DefaultCircuitBreakerConfig(name),
		logger.New("test", "error"),
	)
}

func TestEmailClientSend(t *testing.T) {
	var got EmailMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewEmailClient(newBreakerClient("email-test-ok"), srv.URL, logger.New("test", "error"))
	err := c.Send(context.Background(), EmailMessage{
		To:      "ana@example.com",
		Subject: "Hello",
		HTML:    "<p>Hi</p>",
		Type:    "order_confirmation",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", got.To)
	assert.Equal(t, "order_confirmation", got.Type)
}

func TestEmailClientRejectsEmptyRecipient(t *testing.T) {
	c := NewEmailClient(newBreakerClient("email-test-empty"), "http://unused", logger.New("test", "error"))
	err := c.Send(context.Background(), EmailMessage{Subject: "x"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestEmailClientGatewayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewEmailClient(newBreakerClient("email-test-fail"), srv.URL, logger.New("test", "error"))
	err := c.Send(context.Background(), EmailMessage{To: "ana@example.com"})
	assert.Error(t, err)
}

func TestWhatsAppClientSend(t *testing.T) {
	var got WhatsAppMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewWhatsAppClient(newBreakerClient("wa-test-ok"), srv.URL, logger.New("test", "error"))
	err := c.Send(context.Background(), WhatsAppMessage{
		Number: "+258841234567",
		Text:   "Olá",
	})

	require.NoError(t, err)
	assert.Equal(t, "+258841234567", got.Number)
	assert.Equal(t, "Olá", got.Text)
}

func TestWhatsAppClientRequiresNormalizedNumber(t *testing.T) {
	c := NewWhatsAppClient(newBreakerClient("wa-test-raw"), "http://unused", logger.New("test", "error"))
	err := c.Send(context.Background(), WhatsAppMessage{Number: "841234567", Text: "x"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestMpesaClientCharge(t *testing.T) {
	var got PaymentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewMpesaClient(newBreakerClient("mpesa-test-ok"), srv.URL, logger.New("test", "error"))
	err := c.Charge(context.Background(), PaymentRequest{
		CustomerNumber: "258841234567",
		Amount:         "3870.00",
		Reference:      "ref-1",
		Transaction:    "ord-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "258841234567", got.CustomerNumber)
	assert.Equal(t, "3870.00", got.Amount)
}

func TestMpesaClientChargeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"insufficient funds"}`, http.StatusPaymentRequired)
	}))
	defer srv.Close()

	c := NewMpesaClient(newBreakerClient("mpesa-test-rejected"), srv.URL, logger.New("test", "error"))
	err := c.Charge(context.Background(), PaymentRequest{
		CustomerNumber: "258841234567",
		Amount:         "100.00",
	})

	assert.True(t, errors.Is(err, apperrors.ErrPaymentFailed))
}

func TestMpesaClientGatewayDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewMpesaClient(newBreakerClient("mpesa-test-down"), srv.URL, logger.New("test", "error"))
	err := c.Charge(context.Background(), PaymentRequest{
		CustomerNumber: "258841234567",
		Amount:         "100.00",
	})

	assert.True(t, errors.Is(err, apperrors.ErrPaymentFailed))
}

func TestMpesaClientValidatesInput(t *testing.T) {
	c := NewMpesaClient(newBreakerClient("mpesa-test-input"), "http://unused", logger.New("test", "error"))

	err := c.Charge(context.Background(), PaymentRequest{Amount: "10.00"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	err = c.Charge(context.Background(), PaymentRequest{CustomerNumber: "258841234567"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}
