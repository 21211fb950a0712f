package payment

import (
	"fmt"

	"campuseats/internal/core/domain/model/kernel"
)

// CashPayment pays with a tendered cash amount. Pay fails with
// ErrInsufficientFunds when the tendered amount does not cover the total;
// the change due is the difference.
type CashPayment struct {
	tendered kernel.Money
}

// NewCashPayment creates a cash strategy for the given tendered amount.
// A non-negative amount is guaranteed by kernel.Money.
func NewCashPayment(tendered kernel.Money) *CashPayment {
	return &CashPayment{tendered: tendered}
}

// Pay verifies the tendered amount covers the total.
func (c *CashPayment) Pay(amount kernel.Money) error {
	if c.tendered.LessThan(amount) {
		return fmt.Errorf("%w: tendered %s cannot cover %s", ErrInsufficientFunds, c.tendered, amount)
	}
	return nil
}

// Label implements Strategy.
func (c *CashPayment) Label() string {
	return "cash"
}

// Tendered returns the cash amount handed over.
func (c *CashPayment) Tendered() kernel.Money {
	return c.tendered
}

// ChangeFor computes the change due against a total. Returns an error when
// the tendered amount does not cover it.
func (c *CashPayment) ChangeFor(amount kernel.Money) (kernel.Money, error) {
	return c.tendered.Sub(amount)
}
