package order

import (
	"fmt"

	"campuseats/internal/pkg/errs"
)

// DeliveryMode determines how the order reaches the customer. It is fixed at
// creation time and never changes afterwards.
type DeliveryMode int

const (
	// ModeUnknown catches uninitialized DeliveryMode values.
	ModeUnknown DeliveryMode = iota

	// ModeDelivery delivers to the customer's address by courier.
	ModeDelivery

	// ModeOnSite serves the order at the restaurant.
	ModeOnSite

	// ModeTakeaway hands the order over at the counter.
	ModeTakeaway
)

func getDeliveryModeStrings() map[DeliveryMode]string {
	return map[DeliveryMode]string{
		ModeUnknown:  "UNKNOWN",
		ModeDelivery: "DELIVERY",
		ModeOnSite:   "ON_SITE",
		ModeTakeaway: "TAKEAWAY",
	}
}

// Validate checks that the mode is one of the defined delivery modes.
func (m DeliveryMode) Validate() error {
	if m <= ModeUnknown || m > ModeTakeaway {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery mode",
			fmt.Errorf("%d is not a valid delivery mode", m),
		)
	}
	return nil
}

// String returns the label of the mode, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer.
func (m DeliveryMode) String() string {
	if str, ok := getDeliveryModeStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// DeliveryModeFromString parses a mode label as rendered by String.
func DeliveryModeFromString(label string) (DeliveryMode, error) {
	for mode, str := range getDeliveryModeStrings() {
		if str == label && mode != ModeUnknown {
			return mode, nil
		}
	}
	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery mode",
		fmt.Errorf("%q is not a valid delivery mode", label),
	)
}

// RequiresAddress reports whether the mode needs a delivery address.
func (m DeliveryMode) RequiresAddress() bool {
	return m == ModeDelivery
}

// RequiresCourier reports whether the mode needs an assigned courier before
// the order can leave the restaurant.
func (m DeliveryMode) RequiresCourier() bool {
	return m == ModeDelivery
}
