package commands

import (
	"errors"

	"campuseats/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand triggers the dispatch of ready delivery orders to
// available couriers. It represents the business operation of matching
// delivery resources with orders waiting for pickup.
//
// Example:
//
//	cmd := NewAssignCourierCommand()
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("no orders to dispatch or no available couriers: %v", err)
//	}
type AssignCourierCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a new command to trigger courier
// dispatch. This is a parameterless command.
func NewAssignCourierCommand() AssignCourierCommand {
	return AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c *AssignCourierCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignCourierCommandIsNotConstructed,
	)
}
