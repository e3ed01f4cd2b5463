// Package card turns raw card-field input into a payment method.
package card

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanielPopoola/chatpay/internal/application"
	"github.com/DanielPopoola/chatpay/internal/domain"
	"github.com/go-playground/validator"
)

const paymentMethodPrefix = "pm_"

var validate = validator.New()

type Details struct {
	Number      string `validate:"required,numeric,min=12,max=19"`
	ExpiryMonth int    `validate:"min=1,max=12"`
	ExpiryYear  int    `validate:"min=2000,max=2099"`
	CVC         string `validate:"required,numeric,min=3,max=4"`
}

// Parse validates the three widget fields. A number field holding a
// processor payment-method id (pm_...) is accepted as-is and the other
// fields are ignored.
func Parse(number, expiry, cvc string, now time.Time) (application.CardPaymentMethod, error) {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, paymentMethodPrefix) {
		if len(number) == len(paymentMethodPrefix) {
			return application.CardPaymentMethod{}, incomplete("payment method id")
		}
		return application.CardPaymentMethod{ID: number}, nil
	}

	month, year, err := parseExpiry(expiry)
	if err != nil {
		return application.CardPaymentMethod{}, err
	}

	details := Details{
		Number:      stripSeparators(number),
		ExpiryMonth: month,
		ExpiryYear:  year,
		CVC:         strings.TrimSpace(cvc),
	}
	if err := details.Validate(now); err != nil {
		return application.CardPaymentMethod{}, err
	}

	return application.CardPaymentMethod{
		Number:      details.Number,
		ExpiryMonth: details.ExpiryMonth,
		ExpiryYear:  details.ExpiryYear,
		CVC:         details.CVC,
	}, nil
}

func (d Details) Validate(now time.Time) error {
	if err := validate.Struct(d); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return incomplete(strings.ToLower(fieldErrs[0].Field()))
		}
		return incomplete("card details")
	}
	if !Luhn(d.Number) {
		return incomplete("number")
	}
	if d.ExpiryYear < now.Year() || (d.ExpiryYear == now.Year() && d.ExpiryMonth < int(now.Month())) {
		return incomplete("expiry")
	}
	return nil
}

// Luhn reports whether digits passes the mod-10 checksum.
func Luhn(digits string) bool {
	if digits == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		n := int(c - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}
	return sum%10 == 0
}

// parseExpiry accepts MM/YY, MM/YYYY and MMYY.
func parseExpiry(raw string) (month, year int, err error) {
	raw = strings.TrimSpace(raw)
	var mm, yy string
	if before, after, found := strings.Cut(raw, "/"); found {
		mm, yy = strings.TrimSpace(before), strings.TrimSpace(after)
	} else if len(raw) == 4 {
		mm, yy = raw[:2], raw[2:]
	} else {
		return 0, 0, incomplete("expiry")
	}

	month, err = strconv.Atoi(mm)
	if err != nil {
		return 0, 0, incomplete("expiry")
	}
	year, err = strconv.Atoi(yy)
	if err != nil {
		return 0, 0, incomplete("expiry")
	}
	if len(yy) == 2 {
		year += 2000
	}
	return month, year, nil
}

func stripSeparators(number string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(number)
}

func incomplete(field string) error {
	return fmt.Errorf("invalid %s: %w", field, domain.NewCardIncompleteError())
}
