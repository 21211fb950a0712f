package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

// PaymentMethod selects how an order is paid.
type PaymentMethod string

const (
	// MethodCard pays by bank card.
	MethodCard PaymentMethod = "card"

	// MethodCash pays with a tendered cash amount.
	MethodCash PaymentMethod = "cash"

	// MethodAccount pays from the customer's campus prepaid account.
	MethodAccount PaymentMethod = "account"
)

var (
	ErrPayOrderCommandIsNotConstructed = errors.New(
		"PayOrderCommand must be created via NewPayOrderCommand constructor",
	)
	ErrPaymentMethodIsInvalid = errors.New("payment method must be card, cash or account")
	ErrCardDetailsAreRequired = errors.New("card number, expiry and cvv are required")
)

// PayOrderCommand represents a request to pay an order with a chosen
// method. Card payments carry the card details, cash payments the tendered
// amount, account payments nothing besides the order number.
//
// Example:
//
//	cmd, err := NewCashPayOrderCommand("ORD-0001", tendered)
//	if err != nil {
//	    return err
//	}
//	handler := NewPayOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("payment failed: %w", err)
//	}
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	method      PaymentMethod

	cardNumber string
	cardExpiry string
	cardCVV    string

	tendered kernel.Money

	guard guard.ConstructorGuard
}

// NewCardPayOrderCommand creates a command to pay an order by card.
func NewCardPayOrderCommand(orderNumber, cardNumber, cardExpiry, cardCVV string) (PayOrderCommand, error) {
	command := PayOrderCommand{
		method: MethodCard,
		guard:  guard.NewConstructorGuard(),
	}

	if err := command.setOrderNumber(orderNumber); err != nil {
		return PayOrderCommand{}, err
	}
	if cardNumber == "" || cardExpiry == "" || cardCVV == "" {
		return PayOrderCommand{}, ErrCardDetailsAreRequired
	}

	command.cardNumber = cardNumber
	command.cardExpiry = cardExpiry
	command.cardCVV = cardCVV
	return command, nil
}

// NewCashPayOrderCommand creates a command to pay an order in cash with the
// given tendered amount.
func NewCashPayOrderCommand(orderNumber string, tendered kernel.Money) (PayOrderCommand, error) {
	command := PayOrderCommand{
		method:   MethodCash,
		tendered: tendered,
		guard:    guard.NewConstructorGuard(),
	}

	if err := command.setOrderNumber(orderNumber); err != nil {
		return PayOrderCommand{}, err
	}

	return command, nil
}

// NewAccountPayOrderCommand creates a command to pay an order from the
// ordering customer's campus account.
func NewAccountPayOrderCommand(orderNumber string) (PayOrderCommand, error) {
	command := PayOrderCommand{
		method: MethodAccount,
		guard:  guard.NewConstructorGuard(),
	}

	if err := command.setOrderNumber(orderNumber); err != nil {
		return PayOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through a constructor.
// Returns ErrPayOrderCommandIsNotConstructed if validation fails.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderNumber returns the targeted order's number.
func (c PayOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Method returns the chosen payment method.
func (c PayOrderCommand) Method() PaymentMethod {
	return c.method
}

// CardNumber returns the card number for card payments.
func (c PayOrderCommand) CardNumber() string {
	return c.cardNumber
}

// CardExpiry returns the card expiry for card payments.
func (c PayOrderCommand) CardExpiry() string {
	return c.cardExpiry
}

// CardCVV returns the card verification code for card payments.
func (c PayOrderCommand) CardCVV() string {
	return c.cardCVV
}

// Tendered returns the cash amount handed over for cash payments.
func (c PayOrderCommand) Tendered() kernel.Money {
	return c.tendered
}

func (c *PayOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}
