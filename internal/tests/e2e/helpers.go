package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/DanielPopoola/chatpay/internal/tests/e2e/testdata"
)

// FakeBackend serves the chat and payment-intent endpoints.
type FakeBackend struct {
	*httptest.Server

	mu           sync.Mutex
	chatStatus   int
	intentStatus int
	chatCalls    int
	intentCalls  int
	lastAmount   int64
}

func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	b := &FakeBackend{chatStatus: http.StatusOK, intentStatus: http.StatusOK}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat/", b.handleChat)
	mux.HandleFunc("POST /api/create-payment-intent/", b.handleIntent)

	b.Server = httptest.NewServer(mux)
	t.Cleanup(b.Server.Close)
	return b
}

func (b *FakeBackend) FailChat(status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.chatStatus = status
}

func (b *FakeBackend) FailIntents(status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.intentStatus = status
}

func (b *FakeBackend) ChatCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.chatCalls
}

func (b *FakeBackend) LastAmount() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastAmount
}

func (b *FakeBackend) handleChat(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.chatCalls++
	status := b.chatStatus
	b.mu.Unlock()

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Message is required"})
		return
	}
	if status != http.StatusOK {
		writeJSON(w, status, map[string]string{"error": "assistant unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "You said: " + req.Message})
}

func (b *FakeBackend) handleIntent(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.intentCalls++
	status := b.intentStatus
	b.mu.Unlock()

	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid amount"})
		return
	}
	b.mu.Lock()
	b.lastAmount = req.Amount
	b.mu.Unlock()

	if status != http.StatusOK {
		writeJSON(w, status, map[string]string{"error": "processor unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": "pi_e2e_secret_test"})
}

// FakeProcessor confirms payment intents, deciding the outcome from the
// test card number.
type FakeProcessor struct {
	*httptest.Server

	mu       sync.Mutex
	confirms int
}

func NewFakeProcessor(t *testing.T, publishableKey string) *FakeProcessor {
	t.Helper()
	p := &FakeProcessor{}

	p.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+publishableKey {
			writeJSON(w, http.StatusUnauthorized, processorError("invalid_request_error", "", "", "Invalid API Key provided"))
			return
		}
		if !strings.HasPrefix(r.URL.Path, "/v1/payment_intents/") || !strings.HasSuffix(r.URL.Path, "/confirm") {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, processorError("invalid_request_error", "", "", "Malformed form body"))
			return
		}

		p.mu.Lock()
		p.confirms++
		p.mu.Unlock()

		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v1/payment_intents/"), "/confirm")
		number := r.PostForm.Get("payment_method_data[card][number]")

		switch number {
		case testdata.DeclinedCard.CardNumber:
			writeJSON(w, http.StatusPaymentRequired, processorError("card_error", "card_declined", "generic_decline", "Your card was declined."))
		case testdata.InsufficientFundsCard.CardNumber:
			writeJSON(w, http.StatusPaymentRequired, processorError("card_error", "card_declined", "insufficient_funds", "Your card has insufficient funds."))
		case testdata.ThreeDSecureCard.CardNumber:
			writeJSON(w, http.StatusOK, map[string]any{"id": id, "status": "requires_action", "amount": 3000, "currency": "usd"})
		default:
			writeJSON(w, http.StatusOK, map[string]any{"id": id, "status": "succeeded", "amount": 3000, "currency": "usd"})
		}
	}))
	t.Cleanup(p.Server.Close)
	return p
}

func (p *FakeProcessor) Confirms() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.confirms
}

func processorError(typ, code, declineCode, message string) map[string]any {
	return map[string]any{"error": map[string]string{
		"type":         typ,
		"code":         code,
		"decline_code": declineCode,
		"message":      message,
	}}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
