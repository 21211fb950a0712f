package kernel

import (
	"fmt"

	"campuseats/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount.
// All prices in the domain (unit prices, extras, totals, balances, tendered
// cash) are Money. Negative amounts are rejected at construction, so every
// Money in circulation is valid by construction.
//
// Money is immutable: arithmetic methods return new values. Amounts are
// exact decimals, never floats, so discount stacking produces exact results
// (for example 250.00 × 0.9 × 0.85 == 191.25).
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Returns a validation error for negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromFloat creates a Money from a float amount, rejecting negatives.
// Intended for construction sites fed by external input (HTTP DTOs, config).
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// NewMoneyFromString parses a Money from its decimal string form.
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
// Returns an error if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s minus %s is negative", m.amount.String(), other.amount.String()),
		)
	}
	return Money{amount: result}, nil
}

// Mul returns the amount scaled by a non-negative decimal factor.
// Used by the pricing reductions, which are multiplicative.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// MulInt returns the amount multiplied by a non-negative integer, such as a
// party size or an extra's quantity.
func (m Money) MulInt(n int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(n))}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// Equals reports whether two amounts are numerically equal, ignoring
// exponent representation (10.0 equals 10.00).
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places, the display convention
// for all prices and totals.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
