package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	apperrors "github.com/ElisioMassango/chelevi-sub001/pkg/errors"
	"github.com/ElisioMassango/chelevi-sub001/pkg/httpclient"
)

// EmailClient sends HTML emails through the email gateway:
// POST {base}/send with {to, subject, html, type}.
type EmailClient struct {
	http    *httpclient.CircuitBreakerClient
	baseURL string
	logger  *slog.Logger
}

// NewEmailClient creates an email gateway client.
func NewEmailClient(http *httpclient.CircuitBreakerClient, baseURL string, logger *slog.Logger) *EmailClient {
	return &EmailClient{
		http:    http,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Name returns the gateway name.
func (c *EmailClient) Name() string {
	return "email"
}

// Send delivers one email. The response body is opaque; any 2xx status is
// success.
func (c *EmailClient) Send(ctx context.Context, msg EmailMessage) error {
	if msg.To == "" {
		return apperrors.InvalidInput("email recipient is required")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	resp, err := c.http.Post(ctx, c.baseURL+"/send", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("email gateway send: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	c.logger.DebugContext(ctx, "email sent",
		slog.String("to", msg.To),
		slog.String("type", msg.Type),
	)

	return nil
}
