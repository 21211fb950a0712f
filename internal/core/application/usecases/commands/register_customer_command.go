package commands

import (
	"errors"

	"campuseats/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// RegisterCustomerCommand represents a request to register a new customer.
// A non-empty student number activates the student reduction.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	name            string
	deliveryAddress string
	studentNumber   string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
// The name must be non-empty; address and student number are optional.
func NewRegisterCustomerCommand(name, deliveryAddress, studentNumber string) (RegisterCustomerCommand, error) {
	command := RegisterCustomerCommand{
		deliveryAddress: deliveryAddress,
		studentNumber:   studentNumber,
		guard:           guard.NewConstructorGuard(),
	}

	if err := command.setName(name); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterCustomerCommandIsNotConstructed if validation fails.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// Name returns the customer's display name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// DeliveryAddress returns the customer's delivery address, possibly empty.
func (c RegisterCustomerCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// StudentNumber returns the student number, empty for non-students.
func (c RegisterCustomerCommand) StudentNumber() string {
	return c.studentNumber
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}
