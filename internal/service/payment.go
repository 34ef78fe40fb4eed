package service

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/staynestapp/staynest-client/internal/errors"
)

// Payment method identifiers.
const (
	MethodCard   = "credit-card"
	MethodPayPal = "paypal"
	MethodApple  = "apple-pay"
	MethodGoogle = "google-pay"
	MethodCrypto = "crypto"
)

// PaymentRequest contains the payment form input. Which fields apply
// depends on Method; wallet methods need nothing beyond the method
// itself.
type PaymentRequest struct {
	Method string `json:"method"`

	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`

	PayPalEmail string `json:"paypalEmail"`

	CryptoCurrency string `json:"cryptoCurrency"`
}

// processPayment validates the request for its method and simulates the
// charge. No money moves anywhere; the returned transaction id exists
// only for the confirmation view.
func processPayment(req PaymentRequest) (string, error) {
	switch req.Method {
	case MethodCard:
		if err := validateCard(req); err != nil {
			return "", err
		}
	case MethodPayPal:
		if !strings.Contains(req.PayPalEmail, "@") {
			return "", errors.Validation("enter a valid PayPal email")
		}
	case MethodApple, MethodGoogle:
		// Wallet methods carry no form fields.
	case MethodCrypto:
		if req.CryptoCurrency == "" {
			return "", errors.Validation("select a cryptocurrency")
		}
	default:
		return "", errors.Validationf("unknown payment method %q", req.Method)
	}
	return uuid.NewString(), nil
}

func validateCard(req PaymentRequest) error {
	if n := len(digits(req.CardNumber)); n < 13 || n > 19 {
		return errors.Validation("enter a valid card number")
	}
	if strings.TrimSpace(req.CardName) == "" {
		return errors.Validation("enter the name on the card")
	}
	if !validExpiry(req.Expiry) {
		return errors.Validation("expiry must be MM/YY")
	}
	if n := len(digits(req.CVV)); n < 3 || n > 4 {
		return errors.Validation("enter a valid CVV")
	}
	return nil
}

// FormatCardNumber normalizes a card number into groups of four digits,
// the way payment forms echo input back.
func FormatCardNumber(s string) string {
	d := digits(s)
	var b strings.Builder
	for i, r := range d {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry normalizes expiry input into MM/YY.
func FormatExpiry(s string) string {
	d := digits(s)
	if len(d) > 4 {
		d = d[:4]
	}
	if len(d) <= 2 {
		return d
	}
	return d[:2] + "/" + d[2:]
}

func validExpiry(s string) bool {
	if len(s) != 5 || s[2] != '/' {
		return false
	}
	mm, yy := s[:2], s[3:]
	if len(digits(mm)) != 2 || len(digits(yy)) != 2 {
		return false
	}
	return mm >= "01" && mm <= "12"
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
