package order

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrInvalidTransition is the unwrap target of InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrPaymentRequired rejects moving an unpaid order into preparation.
	ErrPaymentRequired = errors.New("order must be paid before preparation")

	// ErrCourierRequired rejects sending an order en route without a courier
	// assigned, or on an order that is not in delivery mode.
	ErrCourierRequired = errors.New("a courier must be assigned before going en route")

	// ErrAlreadyPaid rejects a second payment attempt after a success.
	ErrAlreadyPaid = errors.New("order is already paid")

	// ErrNoPaymentMethod rejects paying before a strategy is attached.
	ErrNoPaymentMethod = errors.New("no payment method attached")

	// ErrOrderLocked rejects structural changes (extras, address) once the
	// order has been paid.
	ErrOrderLocked = errors.New("order can no longer be modified after payment")

	// ErrPaymentFailed is the unwrap target of PaymentFailedError.
	ErrPaymentFailed = errors.New("payment failed")
)

// InvalidTransitionError reports a state-change request that the transition
// table does not allow. The order is left unchanged.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// pair of states.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PaymentFailedError reports a strategy-level payment failure. The order is
// left unchanged apart from an event-log entry recording the failure.
type PaymentFailedError struct {
	Reason string
	Cause  error
}

// NewPaymentFailedError wraps a strategy failure.
func NewPaymentFailedError(cause error) *PaymentFailedError {
	return &PaymentFailedError{Reason: cause.Error(), Cause: cause}
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPaymentFailed, e.Reason)
}

// Unwrap exposes both the sentinel and the strategy's own error, so callers
// can match either errors.Is(err, ErrPaymentFailed) or the specific cause
// such as payment.ErrInsufficientFunds.
func (e *PaymentFailedError) Unwrap() []error {
	return []error{ErrPaymentFailed, e.Cause}
}
