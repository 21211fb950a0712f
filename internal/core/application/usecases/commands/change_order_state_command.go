package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/guard"
)

var ErrChangeOrderStateCommandIsNotConstructed = errors.New(
	"ChangeOrderStateCommand must be created via NewChangeOrderStateCommand constructor",
)

// ChangeOrderStateCommand represents a request to move an order to a target
// lifecycle state, for example the kitchen marking it ready.
//
// Example:
//
//	cmd, err := NewChangeOrderStateCommand("ORD-0001", order.StatusReady)
//	if err != nil {
//	    return err
//	}
//	handler := NewChangeOrderStateCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrInvalidTransition) {
//	    // the transition table forbids this move
//	}
type ChangeOrderStateCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	target      order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStateCommand creates a command to transition an order.
// Validates that the order number is non-empty and the target is a defined
// status. Whether the transition is allowed is decided by the order itself.
func NewChangeOrderStateCommand(orderNumber string, target order.Status) (ChangeOrderStateCommand, error) {
	command := ChangeOrderStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderNumber(orderNumber),
		command.setTarget(target),
	); err != nil {
		return ChangeOrderStateCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStateCommandIsNotConstructed if validation fails.
func (c ChangeOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStateCommandIsNotConstructed)
}

// OrderNumber returns the targeted order's number.
func (c ChangeOrderStateCommand) OrderNumber() string {
	return c.orderNumber
}

// Target returns the requested lifecycle state.
func (c ChangeOrderStateCommand) Target() order.Status {
	return c.target
}

func (c *ChangeOrderStateCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *ChangeOrderStateCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
