package application

const PaymentIntentSucceeded = "succeeded"

// CardPaymentMethod is what the card widget hands over for confirmation:
// either an existing payment method id or raw card details.
type CardPaymentMethod struct {
	ID          string
	Number      string
	ExpiryMonth int
	ExpiryYear  int
	CVC         string
}

// Last4 is safe to log.
func (pm CardPaymentMethod) Last4() string {
	if pm.ID != "" {
		return ""
	}
	if len(pm.Number) < 4 {
		return pm.Number
	}
	return pm.Number[len(pm.Number)-4:]
}

type PaymentIntent struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	ClientSecret string `json:"client_secret"`
}
