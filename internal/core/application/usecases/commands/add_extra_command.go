package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/menu"
	"campuseats/internal/pkg/guard"
)

var (
	ErrAddExtraCommandIsNotConstructed = errors.New(
		"AddExtraCommand must be created via NewAddExtraCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
	ErrExtraNameIsRequired   = errors.New("extra name is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be at least 1")
)

// AddExtraCommand represents a request to layer a priced extra on an
// existing order, like an additional ingredient or a drink.
//
// Example:
//
//	cmd, err := NewAddExtraCommand("ORD-0001", "Mozzarella", price, menu.KindIngredient, 1)
//	if err != nil {
//	    return err
//	}
//	handler := NewAddExtraCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add extra: %w", err)
//	}
type AddExtraCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	name        string
	extraPrice  kernel.Money
	kind        menu.ExtraKind
	quantity    int

	guard guard.ConstructorGuard
}

// NewAddExtraCommand creates a command to add an extra to an order.
// Validates that the order number and name are non-empty, the kind is a
// defined extra kind, and the quantity is at least 1.
func NewAddExtraCommand(
	orderNumber, name string,
	extraPrice kernel.Money,
	kind menu.ExtraKind,
	quantity int,
) (AddExtraCommand, error) {
	command := AddExtraCommand{
		extraPrice: extraPrice,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderNumber(orderNumber),
		command.setName(name),
		command.setKind(kind),
		command.setQuantity(quantity),
	); err != nil {
		return AddExtraCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddExtraCommandIsNotConstructed if validation fails.
func (c AddExtraCommand) Validate() error {
	return c.guard.Validate(ErrAddExtraCommandIsNotConstructed)
}

// OrderNumber returns the targeted order's number.
func (c AddExtraCommand) OrderNumber() string {
	return c.orderNumber
}

// Name returns the extra's name.
func (c AddExtraCommand) Name() string {
	return c.name
}

// ExtraPrice returns the extra's unit price.
func (c AddExtraCommand) ExtraPrice() kernel.Money {
	return c.extraPrice
}

// Kind returns the extra's classification.
func (c AddExtraCommand) Kind() menu.ExtraKind {
	return c.kind
}

// Quantity returns how many units to apply.
func (c AddExtraCommand) Quantity() int {
	return c.quantity
}

func (c *AddExtraCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *AddExtraCommand) setName(name string) error {
	if name == "" {
		return ErrExtraNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddExtraCommand) setKind(kind menu.ExtraKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *AddExtraCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
