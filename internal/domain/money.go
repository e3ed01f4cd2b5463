package domain

import (
	"errors"
	"fmt"
	"strings"
)

type Money struct {
	Amount   int64
	Currency string
}

func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errors.New("amount cannot be negative")
	}
	if currency == "" {
		return Money{}, errors.New("currency is required")
	}
	return Money{Amount: amount, Currency: strings.ToLower(currency)}, nil
}

// String renders the amount for display, e.g. "$30.00" or "30.00 EUR".
func (m Money) String() string {
	major := fmt.Sprintf("%d.%02d", m.Amount/100, m.Amount%100)
	if m.Currency == "usd" {
		return "$" + major
	}
	return major + " " + strings.ToUpper(m.Currency)
}
