// Package commerce is the REST client for the remote commerce backend. The
// backend owns its own contracts; this client consumes cart summaries,
// shipping methods, coupon lookups, and newsletter subscriptions.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
	apperrors "github.com/ElisioMassango/chelevi-sub001/pkg/errors"
	"github.com/ElisioMassango/chelevi-sub001/pkg/httpclient"
)

// Client talks to the commerce backend through a breaker-wrapped HTTP client.
type Client struct {
	http    *httpclient.CircuitBreakerClient
	baseURL string
	logger  *slog.Logger
}

// New creates a commerce backend client.
func New(http *httpclient.CircuitBreakerClient, baseURL string, logger *slog.Logger) *Client {
	return &Client{
		http:    http,
		baseURL: baseURL,
		logger:  logger,
	}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CartSummary fetches the backend-reported cart summary for a session. The
// caller cross-checks the reported totals; this method only transports them.
func (c *Client) CartSummary(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	u := fmt.Sprintf("%s/cart?session=%s", c.baseURL, url.QueryEscape(sessionID))

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("commerce cart summary: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NotFound("cart summary", sessionID)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("commerce backend returned status %d", resp.StatusCode)
	}

	var summary domain.CartSummary
	if err := decodeData(resp.Body, &summary); err != nil {
		return nil, fmt.Errorf("decode cart summary: %w", err)
	}

	return &summary, nil
}

// Coupon looks up a coupon by code.
func (c *Client) Coupon(ctx context.Context, code string) (*domain.Coupon, error) {
	u := fmt.Sprintf("%s/coupons/%s", c.baseURL, url.PathEscape(code))

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("commerce coupon lookup: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NotFound("coupon", code)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("commerce backend returned status %d", resp.StatusCode)
	}

	var coupon domain.Coupon
	if err := decodeData(resp.Body, &coupon); err != nil {
		return nil, fmt.Errorf("decode coupon: %w", err)
	}

	return &coupon, nil
}

// ShippingMethods fetches the available delivery options.
func (c *Client) ShippingMethods(ctx context.Context) ([]domain.ShippingMethod, error) {
	resp, err := c.http.Get(ctx, c.baseURL+"/shipping-methods")
	if err != nil {
		return nil, fmt.Errorf("commerce shipping methods: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("commerce backend returned status %d", resp.StatusCode)
	}

	var methods []domain.ShippingMethod
	if err := decodeData(resp.Body, &methods); err != nil {
		return nil, fmt.Errorf("decode shipping methods: %w", err)
	}

	return methods, nil
}

// SubscribeNewsletter registers an email address with the backend newsletter
// list.
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) error {
	payload, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return fmt.Errorf("marshal newsletter payload: %w", err)
	}

	resp, err := c.http.Post(ctx, c.baseURL+"/newsletter/subscribe", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("commerce newsletter subscribe: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusConflict {
		return apperrors.Conflict("email is already subscribed")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("commerce backend returned status %d", resp.StatusCode)
	}

	return nil
}

// decodeData unwraps the backend's {data: ...} envelope when present, falling
// back to decoding the body directly.
func decodeData(body io.Reader, target any) error {
	raw, err := io.ReadAll(io.LimitReader(body, 1<<20))
	if err != nil {
		return err
	}

	var env envelope
	if json.Unmarshal(raw, &env) == nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, target)
	}

	return json.Unmarshal(raw, target)
}
