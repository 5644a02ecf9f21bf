package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/vitrineshop/vitrine/internal/adapter/config"
	"github.com/vitrineshop/vitrine/internal/core/domain"
	"github.com/vitrineshop/vitrine/internal/core/port"
)

const retryDelay = 3 * time.Second
const pollDelay = 5 * time.Second

// Client talks to the hosted payment gateway and drives background
// settlement polling for transactions waiting on the redirect round-trip.
type Client struct {
	logger     *zap.Logger
	host       string
	merchantID string
	apiKey     string
	http       *http.Client
	checkQueue chan string
}

func NewClient(cfg *config.Gateway, log *zap.Logger) (*Client, error) {
	return &Client{
		logger:     log,
		host:       cfg.HostString,
		merchantID: cfg.MerchantID,
		apiKey:     cfg.APIKey,
		http:       &http.Client{Timeout: 10 * time.Second},
		checkQueue: make(chan string, 2),
	}, nil
}

type createPaymentRequest struct {
	MerchantID            string `json:"merchantId"`
	MerchantTransactionID string `json:"merchantTransactionId"`
	MerchantUserID        string `json:"merchantUserId"`
	Amount                string `json:"amount"`
	MobileNumber          string `json:"mobileNumber"`
}

type createPaymentResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	RedirectURL string `json:"redirectUrl"`
}

func (c *Client) CreatePayment(ctx context.Context, req port.PaymentRequest) (*domain.PaymentRedirect, error) {
	body, err := json.Marshal(createPaymentRequest{
		MerchantID:            c.merchantID,
		MerchantTransactionID: req.TransactionID,
		MerchantUserID:        req.UserID,
		Amount:                req.Amount.String(),
		MobileNumber:          req.Customer.Phone,
	})
	if err != nil {
		return nil, err
	}

	requestStr := "http://" + c.host + "/api/v1/pay"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error on %s : %w", requestStr, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request error %s : %w", requestStr, domain.ErrGatewayUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode >= http.StatusInternalServerError ||
			resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("gateway status %d: %w", resp.StatusCode, domain.ErrGatewayUnavailable)
		}
		var rejected createPaymentResponse
		_ = json.NewDecoder(resp.Body).Decode(&rejected)
		return nil, fmt.Errorf("gateway rejected payment: %s: %w", rejected.Message, domain.ErrGatewayResponse)
	}

	var result createPaymentResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", domain.ErrGatewayResponse)
	}
	if !result.Success || result.RedirectURL == "" {
		return nil, fmt.Errorf("gateway response without redirect: %s: %w", result.Message, domain.ErrGatewayResponse)
	}

	return &domain.PaymentRedirect{
		TransactionID: req.TransactionID,
		RedirectURL:   result.RedirectURL,
	}, nil
}

type statusResponse struct {
	State string `json:"state"`
	Code  string `json:"code"`
}

func (c *Client) PaymentStatus(ctx context.Context, transactionID string) (*domain.Settlement, error) {
	requestStr := "http://" + c.host + "/api/v1/status/" + c.merchantID + "/" + transactionID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	c.logger.Debug("Fire request for payment status",
		zap.String("transaction", transactionID))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error %s : %w", requestStr, domain.ErrGatewayUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests {
			sec, err := strconv.Atoi(resp.Header.Get("Retry-After"))
			if err != nil {
				sec = 10
			}
			return nil, fmt.Errorf("too many requests, retry after %ds: %w", sec, domain.ErrGatewayUnavailable)
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("gateway status %d: %w", resp.StatusCode, domain.ErrGatewayUnavailable)
		}
		c.logger.Error("unexpected status for request",
			zap.String("transaction", transactionID), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("bad response %v for request %s: %w", resp.StatusCode, requestStr, domain.ErrGatewayResponse)
	}

	var result statusResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", domain.ErrGatewayResponse)
	}

	switch domain.SettlementState(result.State) {
	case domain.SettlementPending, domain.SettlementSuccess, domain.SettlementFailed:
	default:
		return nil, fmt.Errorf("unknown settlement state %q: %w", result.State, domain.ErrGatewayResponse)
	}

	return &domain.Settlement{
		TransactionID: transactionID,
		State:         domain.SettlementState(result.State),
		Raw:           result.Code,
	}, nil
}

func (c *Client) SchedulePaymentCheck(transactionID string) {
	c.logger.Debug("> put transaction in queue (schedule)", zap.String("transaction", transactionID))
	c.checkQueue <- transactionID
	c.logger.Debug("< put transaction in queue (schedule)", zap.String("transaction", transactionID))
}

// RunStatusWorkers drives reconciliation for queued transactions until their
// settlement is terminal. A pending settlement or a transient gateway error
// re-queues the transaction after a delay; a failed poll corrupts nothing,
// so repeating it is always safe.
func (c *Client) RunStatusWorkers(ctx context.Context, reconciler port.PaymentReconciler, workers int) {
	for i := 0; i < workers; i++ {
		go func(queue chan string) {
			for {
				select {
				case transactionID := <-queue:
					c.logger.Debug("Start payment status check",
						zap.String("transaction", transactionID))

					settlement, err := reconciler.ReconcilePayment(ctx, transactionID)
					if err != nil {
						if domain.IsRetryable(err) {
							go c.retryCheck(transactionID, retryDelay)
							continue
						}
						if errors.Is(err, domain.ErrDataNotFound) {
							// Transaction already discarded by another
							// reconcile path.
							continue
						}
						c.logger.Error("Unexpected error on reconcile", zap.Error(err))
						continue
					}

					if settlement.State == domain.SettlementPending {
						go c.retryCheck(transactionID, pollDelay)
						continue
					}

					c.logger.Info("Payment settled",
						zap.String("transaction", transactionID),
						zap.String("state", string(settlement.State)))
				case <-ctx.Done():
					c.logger.Debug("Finished worker")
					return
				}
			}
		}(c.checkQueue)
	}
}

func (c *Client) retryCheck(transactionID string, waitFor time.Duration) {
	r := time.NewTimer(waitFor)
	<-r.C

	c.logger.Debug("> put transaction in queue (retry)", zap.String("transaction", transactionID))
	c.checkQueue <- transactionID
	c.logger.Debug("< put transaction in queue (retry)", zap.String("transaction", transactionID))
}
