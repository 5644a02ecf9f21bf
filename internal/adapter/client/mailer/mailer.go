package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/vitrineshop/vitrine/internal/adapter/config"
	"github.com/vitrineshop/vitrine/internal/core/domain"
	"github.com/vitrineshop/vitrine/internal/core/port"
)

// Client delivers order notifications through the transactional email API.
// Delivery is single-attempt; the caller decides whether a failure matters.
type Client struct {
	logger     *zap.Logger
	host       string
	apiKey     string
	from       string
	adminEmail string
	http       *http.Client
}

func New(cfg *config.Mailer, log *zap.Logger) (*Client, error) {
	return &Client{
		logger:     log,
		host:       cfg.HostString,
		apiKey:     cfg.APIKey,
		from:       cfg.From,
		adminEmail: cfg.AdminEmail,
		http:       &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (c *Client) Send(ctx context.Context, n port.Notification) error {
	message, err := c.compose(n)
	if err != nil {
		return err
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	requestStr := "http://" + c.host + "/api/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("mailer response %d for %s", resp.StatusCode, string(n.Kind))
	}
	return nil
}

func (c *Client) compose(n port.Notification) (*sendRequest, error) {
	order := n.Order
	switch n.Kind {
	case port.NotificationNewOrder:
		return &sendRequest{
			From:    c.from,
			To:      c.adminEmail,
			Subject: fmt.Sprintf("New order %s", order.Number),
			Text: fmt.Sprintf("Order %s from %s for %s received at %s.",
				order.Number, order.Customer.Name, order.TotalAmount,
				order.CreatedAt.Format(time.RFC3339)),
		}, nil
	case port.NotificationStatusUpdate:
		return &sendRequest{
			From:    c.from,
			To:      order.Customer.Email,
			Subject: fmt.Sprintf("Order %s update", order.Number),
			Text: fmt.Sprintf("Your order %s is now %s (payment %s).",
				order.Number, order.Status, order.PaymentStatus),
		}, nil
	default:
		return nil, fmt.Errorf("unknown notification kind %q: %w", n.Kind, domain.ErrBadRequest)
	}
}
