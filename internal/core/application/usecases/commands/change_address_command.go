package commands

import (
	"errors"

	"campuseats/internal/pkg/guard"
)

var (
	ErrChangeAddressCommandIsNotConstructed = errors.New(
		"ChangeAddressCommand must be created via NewChangeAddressCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
)

// ChangeAddressCommand represents a request to change the delivery address
// of an order that has not been paid yet.
type ChangeAddressCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	address     string

	guard guard.ConstructorGuard
}

// NewChangeAddressCommand creates a command to change an order's delivery
// address. Both the order number and the address must be non-empty.
func NewChangeAddressCommand(orderNumber, address string) (ChangeAddressCommand, error) {
	command := ChangeAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderNumber(orderNumber),
		command.setAddress(address),
	); err != nil {
		return ChangeAddressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeAddressCommandIsNotConstructed if validation fails.
func (c ChangeAddressCommand) Validate() error {
	return c.guard.Validate(ErrChangeAddressCommandIsNotConstructed)
}

// OrderNumber returns the targeted order's number.
func (c ChangeAddressCommand) OrderNumber() string {
	return c.orderNumber
}

// Address returns the new delivery address.
func (c ChangeAddressCommand) Address() string {
	return c.address
}

func (c *ChangeAddressCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *ChangeAddressCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
