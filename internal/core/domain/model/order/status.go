package order

import (
	"fmt"

	"campuseats/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct workflow.
//
// State transitions:
//
//	New ──> InPreparation ──> Ready ──┬──> EnRoute ──> Delivered
//	                                  └──> Served
//
// Cancelled is reachable from every non-terminal state. Delivered, Served,
// and Cancelled are terminal: no transition leaves them.
//
// Status is a value object that validates state transitions and provides
// string representations for display and the event log.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status when an order is created.
	// The order is being composed and paid by the customer.
	StatusNew

	// StatusInPreparation indicates the kitchen is preparing the order.
	// Reached only after a successful payment.
	StatusInPreparation

	// StatusReady indicates the order left the kitchen and is waiting for a
	// courier (delivery) or to be served (on-site / takeaway).
	StatusReady

	// StatusEnRoute indicates a courier is delivering the order.
	StatusEnRoute

	// StatusDelivered indicates the courier handed the order over. Terminal.
	StatusDelivered

	// StatusServed indicates an on-site or takeaway order was handed over.
	// Terminal.
	StatusServed

	// StatusCancelled indicates the order was cancelled. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:       "UNKNOWN",
		StatusNew:           "NEW",
		StatusInPreparation: "IN_PREPARATION",
		StatusReady:         "READY",
		StatusEnRoute:       "EN_ROUTE",
		StatusDelivered:     "DELIVERED",
		StatusServed:        "SERVED",
		StatusCancelled:     "CANCELLED",
	}
}

// allowedTransitions is the complete transition table. Any (from, to) pair
// not listed here is rejected.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusNew:           {StatusInPreparation, StatusCancelled},
		StatusInPreparation: {StatusReady, StatusCancelled},
		StatusReady:         {StatusEnRoute, StatusServed, StatusCancelled},
		StatusEnRoute:       {StatusDelivered, StatusCancelled},
		StatusDelivered:     {},
		StatusServed:        {},
		StatusCancelled:     {},
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// StatusUnknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the label of the status ("NEW", "IN_PREPARATION", ...), or
// "UNKNOWN" for invalid values. The label is what the event log records on
// each transition. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a status label as rendered by String.
// Used by the HTTP adapter to accept state-change requests.
func StatusFromString(label string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == label && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", label),
	)
}

// CanTransitionTo reports whether the transition table allows moving from
// the current status to the target. Guard conditions (payment, courier) are
// evaluated separately by the Order; this is the structural check only.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusServed || s == StatusCancelled
}
