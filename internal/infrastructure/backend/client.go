// Package backend is the HTTP client for the chat and payment-intent API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DanielPopoola/chatpay/internal/application"
	"github.com/DanielPopoola/chatpay/internal/config"
	"github.com/DanielPopoola/chatpay/internal/infrastructure/httpx"
	"github.com/google/uuid"
)

const (
	chatService          = "chat"
	paymentIntentService = "payment-intent"

	maxBodyBytes = 1 << 20
)

var (
	_ application.ChatService   = (*Client)(nil)
	_ application.IntentService = (*Client)(nil)
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpx.NewClient(cfg.Timeout, logger),
	}
}

func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	url := fmt.Sprintf("%s/api/chat/", c.baseURL)
	resp, err := sendRequest[chatRequest, chatResponse](c, ctx, chatService, url, &chatRequest{Message: message}, nil)
	if err != nil {
		return "", err
	}
	if resp.Message == "" {
		return "", &application.MalformedResponseError{Service: chatService, Reason: "missing message"}
	}
	return resp.Message, nil
}

// CreatePaymentIntent asks the backend for a payment intent and returns its
// client secret.
func (c *Client) CreatePaymentIntent(ctx context.Context, amountCents int64) (string, error) {
	url := fmt.Sprintf("%s/api/create-payment-intent/", c.baseURL)
	headers := map[string]string{"Idempotency-Key": uuid.NewString()}
	resp, err := sendRequest[createPaymentIntentRequest, createPaymentIntentResponse](
		c, ctx, paymentIntentService, url, &createPaymentIntentRequest{Amount: amountCents}, headers,
	)
	if err != nil {
		return "", err
	}
	if resp.ClientSecret == "" {
		return "", &application.MalformedResponseError{Service: paymentIntentService, Reason: "missing clientSecret"}
	}
	return resp.ClientSecret, nil
}

func sendRequest[Req any, Resp any](c *Client, ctx context.Context, service, url string, reqBody *Req, headers map[string]string) (*Resp, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(httpx.RequestIDHeader, uuid.NewString())
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: error making request: %w", service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: error reading response: %w", service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &application.StatusError{Service: service, StatusCode: resp.StatusCode}
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil {
			statusErr.Detail = errResp.Err
		}
		return nil, statusErr
	}

	var out Resp
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &application.MalformedResponseError{Service: service, Reason: "invalid json", Err: err}
	}

	return &out, nil
}
