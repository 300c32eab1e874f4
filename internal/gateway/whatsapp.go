package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	apperrors "github.com/ElisioMassango/chelevi-sub001/pkg/errors"
	"github.com/ElisioMassango/chelevi-sub001/pkg/httpclient"
)

// WhatsAppClient sends text messages through the WhatsApp gateway:
// POST {base}/send with {number, text, delay, linkPreview}.
type WhatsAppClient struct {
	http    *httpclient.CircuitBreakerClient
	baseURL string
	logger  *slog.Logger
}

// NewWhatsAppClient creates a WhatsApp gateway client.
func NewWhatsAppClient(http *httpclient.CircuitBreakerClient, baseURL string, logger *slog.Logger) *WhatsAppClient {
	return &WhatsAppClient{
		http:    http,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Name returns the gateway name.
func (c *WhatsAppClient) Name() string {
	return "whatsapp"
}

// Send delivers one WhatsApp message. The gateway requires the number in
// normalized international form.
func (c *WhatsAppClient) Send(ctx context.Context, msg WhatsAppMessage) error {
	if !strings.HasPrefix(msg.Number, "+") {
		return apperrors.InvalidInput("whatsapp number must be in +<countrycode><digits> form")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal whatsapp payload: %w", err)
	}

	resp, err := c.http.Post(ctx, c.baseURL+"/send", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("whatsapp gateway send: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("whatsapp gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	c.logger.DebugContext(ctx, "whatsapp message sent",
		slog.String("number", msg.Number),
	)

	return nil
}
