package order

import (
	"fmt"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// Role tags an observer with the part it plays around an order. The
// notification fan-out filters targets by role instead of inspecting
// concrete observer types.
type Role int

const (
	// RoleUnknown catches uninitialized Role values.
	RoleUnknown Role = iota

	// RoleKitchen marks kitchen staff preparing orders.
	RoleKitchen

	// RoleDelivery marks couriers delivering orders.
	RoleDelivery

	// RoleCustomer marks the ordering customer.
	RoleCustomer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleKitchen:  "KITCHEN",
		RoleDelivery: "DELIVERY",
		RoleCustomer: "CUSTOMER",
	}
}

// Validate checks that the role is one of the defined roles.
func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleCustomer {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the label of the role. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Observer is a role-tagged subscriber notified whenever an order's state or
// significant attributes change. Observers are identified by ID, which makes
// re-subscription idempotent.
//
// Available reports whether the observer can currently take on work; it
// gates delivery-role notifications when an order becomes ready for pickup.
// Observers whose availability is not meaningful (kitchen, customers) report
// true.
//
// OrderChanged is invoked synchronously with the order's fields fully
// updated. The reaction — queueing the order, claiming it, recording a
// notification — is entirely the observer's responsibility.
type Observer interface {
	ID() kernel.UUID
	Role() Role
	Available() bool
	OrderChanged(o *Order)
}

// Customer is the slice of the ordering actor the order needs: identity,
// student discount eligibility, and the delivery address to copy when the
// order is created in delivery mode.
type Customer interface {
	ID() kernel.UUID
	Name() string
	IsStudent() bool
	DeliveryAddress() string
}

// CourierRef is the reference to an assigned courier the order keeps. The
// order never drives the courier; it only records who will deliver it.
type CourierRef interface {
	ID() kernel.UUID
	Name() string
}
