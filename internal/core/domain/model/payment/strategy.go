package payment

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
)

// Sentinel errors a strategy can fail with.
var (
	// ErrInsufficientFunds is returned when the instrument cannot cover the
	// requested amount (prepaid balance too low, cash tendered too small).
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidInstrument is returned when the instrument itself is not
	// usable (malformed card data, unknown account).
	ErrInvalidInstrument = errors.New("invalid payment instrument")
)

// Strategy is a pluggable algorithm validating and executing payment of a
// given amount. Pay either succeeds completely or returns an error wrapping
// one of the sentinels above; a failed Pay never has side effects.
//
// Label names the method for event logs ("card", "campus account", "cash").
type Strategy interface {
	Pay(amount kernel.Money) error
	Label() string
}
