package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	apperrors "github.com/ElisioMassango/chelevi-sub001/pkg/errors"
	"github.com/ElisioMassango/chelevi-sub001/pkg/httpclient"
)

// MpesaClient executes mobile-money charges through the M-Pesa gateway:
// POST {base}/payment with {customerNumber, amount, reference, transaction}.
type MpesaClient struct {
	http    *httpclient.CircuitBreakerClient
	baseURL string
	logger  *slog.Logger
}

// NewMpesaClient creates an M-Pesa gateway client.
func NewMpesaClient(http *httpclient.CircuitBreakerClient, baseURL string, logger *slog.Logger) *MpesaClient {
	return &MpesaClient{
		http:    http,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Name returns the gateway name.
func (c *MpesaClient) Name() string {
	return "mpesa"
}

// Charge executes one synchronous charge. Unlike the notification gateways a
// failure here propagates: the caller aborts the order on a failed payment.
func (c *MpesaClient) Charge(ctx context.Context, req PaymentRequest) error {
	if req.CustomerNumber == "" {
		return apperrors.InvalidInput("customer number is required")
	}
	if req.Amount == "" {
		return apperrors.InvalidInput("amount is required")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal payment payload: %w", err)
	}

	resp, err := c.http.Post(ctx, c.baseURL+"/payment", "application/json", bytes.NewReader(payload))
	if err != nil {
		if errors.Is(err, httpclient.ErrCircuitOpen) {
			return apperrors.GatewayUnavailable("mpesa")
		}
		return apperrors.PaymentFailed(fmt.Sprintf("mpesa charge failed: %v", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return apperrors.PaymentFailed(fmt.Sprintf("mpesa gateway returned status %d: %s", resp.StatusCode, string(body)))
	}

	c.logger.InfoContext(ctx, "mpesa charge accepted",
		slog.String("reference", req.Reference),
		slog.String("transaction", req.Transaction),
	)

	return nil
}
