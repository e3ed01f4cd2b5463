// Package stripe confirms card payments against the processor's public API
// with a publishable key, the way a client-side SDK does.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/DanielPopoola/chatpay/internal/application"
	"github.com/DanielPopoola/chatpay/internal/config"
	"github.com/DanielPopoola/chatpay/internal/infrastructure/httpx"
	"github.com/google/uuid"
)

const (
	processorService = "processor"
	secretSeparator  = "_secret_"
	maxBodyBytes     = 1 << 20
)

var _ application.PaymentProcessor = (*Client)(nil)

type Client struct {
	baseURL        string
	publishableKey string
	httpClient     *http.Client
}

func NewClient(cfg config.PaymentConfig, publishableKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.ProcessorBaseURL, "/"),
		publishableKey: publishableKey,
		httpClient:     httpx.NewClient(cfg.Timeout, logger),
	}
}

// IntentID extracts the payment intent id from a client secret of the form
// "pi_123_secret_abc".
func IntentID(clientSecret string) (string, bool) {
	id, _, found := strings.Cut(clientSecret, secretSeparator)
	if !found || id == "" {
		return "", false
	}
	return id, true
}

func (c *Client) ConfirmCardPayment(ctx context.Context, clientSecret string, pm application.CardPaymentMethod) (*application.PaymentIntent, error) {
	intentID, ok := IntentID(clientSecret)
	if !ok {
		return nil, &application.MalformedResponseError{Service: processorService, Reason: "client secret has no payment intent id"}
	}

	endpoint := fmt.Sprintf("%s/v1/payment_intents/%s/confirm", c.baseURL, url.PathEscape(intentID))
	form := confirmForm(clientSecret, pm)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.publishableKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Idempotency-Key", uuid.NewString())
	httpReq.Header.Set(httpx.RequestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: error making request: %w", processorService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: error reading response: %w", processorService, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
			return nil, &application.StatusError{Service: processorService, StatusCode: resp.StatusCode}
		}
		return nil, &application.ProcessorError{
			Type:        errResp.Error.Type,
			Code:        errResp.Error.Code,
			DeclineCode: errResp.Error.DeclineCode,
			Message:     errResp.Error.Message,
			StatusCode:  resp.StatusCode,
		}
	}

	var intent application.PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, &application.MalformedResponseError{Service: processorService, Reason: "invalid json", Err: err}
	}
	if intent.Status == "" {
		return nil, &application.MalformedResponseError{Service: processorService, Reason: "missing status"}
	}

	return &intent, nil
}

func confirmForm(clientSecret string, pm application.CardPaymentMethod) url.Values {
	form := url.Values{}
	form.Set("client_secret", clientSecret)

	if pm.ID != "" {
		form.Set("payment_method", pm.ID)
		return form
	}

	form.Set("payment_method_data[type]", "card")
	form.Set("payment_method_data[card][number]", pm.Number)
	form.Set("payment_method_data[card][exp_month]", strconv.Itoa(pm.ExpiryMonth))
	form.Set("payment_method_data[card][exp_year]", strconv.Itoa(pm.ExpiryYear))
	form.Set("payment_method_data[card][cvc]", pm.CVC)
	return form
}
