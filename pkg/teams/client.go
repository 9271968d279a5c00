package teams

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/angelmondragon/licensing-relay/internal/cards"
	"github.com/angelmondragon/licensing-relay/pkg/config"
	pkgerrors "github.com/angelmondragon/licensing-relay/pkg/errors"
	"github.com/angelmondragon/licensing-relay/pkg/logger"
)

var errWebhookURLRequired = errors.New("teams webhook url is required")

// Sender delivers one composed card. Satisfied by *Client.
type Sender interface {
	Send(ctx context.Context, card cards.Card) error
}

// Client posts MessageCards to a Teams incoming-webhook URL.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

// NewClient validates the destination once at startup.
func NewClient(ctx context.Context, cfg config.TeamsConfig, logg *logger.Logger) (*Client, error) {
	webhookURL := strings.TrimSpace(cfg.WebhookURL)
	if webhookURL == "" {
		return nil, errWebhookURLRequired
	}

	timeout := cfg.PostTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	if logg != nil {
		logg.Info(ctx, "teams client initialized")
	}

	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Send serializes the card into the Teams schema and posts it. Any transport
// failure or non-2xx response is a DEPENDENCY_ERROR; the caller decides how
// to acknowledge upstream.
func (c *Client) Send(ctx context.Context, card cards.Card) error {
	body, err := json.Marshal(FromCard(card))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode message card")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build teams request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "post message card")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("teams responded %d", resp.StatusCode)).
			WithDetails(map[string]any{"body": string(snippet)})
	}
	return nil
}
