package payment

import (
	"fmt"
	"strings"

	"campuseats/internal/core/domain/model/kernel"
)

const cardMinDigits = 8

// CardPayment pays by bank card. Card data is validated at construction;
// payment itself always succeeds in this model.
type CardPayment struct {
	number string
	expiry string
	cvv    string
}

// NewCardPayment creates a card strategy from raw card data. The number must
// contain at least 8 digits, and expiry and cvv must be present.
func NewCardPayment(number, expiry, cvv string) (*CardPayment, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	if len(digits) < cardMinDigits {
		return nil, fmt.Errorf("%w: card number must contain at least %d digits", ErrInvalidInstrument, cardMinDigits)
	}
	if expiry == "" || cvv == "" {
		return nil, fmt.Errorf("%w: expiry and cvv are required", ErrInvalidInstrument)
	}

	return &CardPayment{number: digits, expiry: expiry, cvv: cvv}, nil
}

// Pay accepts any amount; the card network is simulated as always approving.
func (c *CardPayment) Pay(_ kernel.Money) error {
	return nil
}

// Label implements Strategy.
func (c *CardPayment) Label() string {
	return "card"
}

// MaskedNumber renders the card number with all but the last four digits
// hidden, for event logs and receipts.
func (c *CardPayment) MaskedNumber() string {
	return "**** **** **** " + c.number[len(c.number)-4:]
}
