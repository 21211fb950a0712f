package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrLineNameIsRequired    = errors.New("every order line needs a name")
	ErrPartySizeIsInvalid    = errors.New("party size must be greater than 0")
)

// OrderLine is one dish of a new order: a single line becomes a plain dish,
// several lines become a combo menu.
type OrderLine struct {
	Name        string
	Description string
	UnitPrice   kernel.Money
	Category    string
}

// PlaceOrderCommand represents a request to place a new order for a
// customer. Encapsulates the dishes, the party size, the delivery mode and
// an optional comment.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customerID, lines, 2, order.ModeDelivery, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, numbers)
//	number, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed", number)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	lines      []OrderLine
	partySize  int
	mode       order.DeliveryMode
	comment    string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. Validates
// that the customer ID is valid, at least one named line is present, the
// party size is positive, and the mode is a defined delivery mode.
func NewPlaceOrderCommand(
	customerID kernel.UUID,
	lines []OrderLine,
	partySize int,
	mode order.DeliveryMode,
	comment string,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setLines(lines),
		command.setPartySize(partySize),
		command.setMode(mode),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the requested dishes.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

// PartySize returns the number of people the order serves.
func (c PlaceOrderCommand) PartySize() int {
	return c.partySize
}

// Mode returns the requested delivery mode.
func (c PlaceOrderCommand) Mode() order.DeliveryMode {
	return c.mode
}

// Comment returns the optional free-text comment.
func (c PlaceOrderCommand) Comment() string {
	return c.comment
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}
	for _, line := range lines {
		if line.Name == "" {
			return ErrLineNameIsRequired
		}
	}

	c.lines = lines
	return nil
}

func (c *PlaceOrderCommand) setPartySize(partySize int) error {
	if partySize <= 0 {
		return ErrPartySizeIsInvalid
	}

	c.partySize = partySize
	return nil
}

func (c *PlaceOrderCommand) setMode(mode order.DeliveryMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}
