package commands

import (
	"errors"

	"campuseats/internal/pkg/guard"
)

var (
	ErrRegisterCourierCommandIsNotConstructed = errors.New(
		"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
	)
	ErrCourierNameIsRequired = errors.New("courier name is required")
)

// RegisterCourierCommand represents a request to register a new courier on
// the delivery roster. New couriers start as rookies.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	name    string
	vehicle string
	zone    string

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a command to register a courier.
// The name must be non-empty; vehicle and zone are informational.
func NewRegisterCourierCommand(name, vehicle, zone string) (RegisterCourierCommand, error) {
	command := RegisterCourierCommand{
		vehicle: vehicle,
		zone:    zone,
		guard:   guard.NewConstructorGuard(),
	}

	if err := command.setName(name); err != nil {
		return RegisterCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterCourierCommandIsNotConstructed if validation fails.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// Name returns the courier's display name.
func (c RegisterCourierCommand) Name() string {
	return c.name
}

// Vehicle returns the courier's vehicle.
func (c RegisterCourierCommand) Vehicle() string {
	return c.vehicle
}

// Zone returns the campus zone the courier serves.
func (c RegisterCourierCommand) Zone() string {
	return c.zone
}

func (c *RegisterCourierCommand) setName(name string) error {
	if name == "" {
		return ErrCourierNameIsRequired
	}

	c.name = name
	return nil
}
