package payment

import (
	"fmt"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// PrepaidAccount pays from a campus prepaid balance tied to a student
// number. Pay debits the balance on success and fails with
// ErrInsufficientFunds when the balance cannot cover the amount.
//
// The account is the only stateful strategy; the balance survives across
// orders of the same holder.
type PrepaidAccount struct {
	holder  string
	balance kernel.Money
}

// NewPrepaidAccount creates an account for the given student number with an
// opening balance.
func NewPrepaidAccount(holder string, openingBalance kernel.Money) (*PrepaidAccount, error) {
	if holder == "" {
		return nil, errs.NewValueIsRequiredError("holder")
	}
	return &PrepaidAccount{holder: holder, balance: openingBalance}, nil
}

// Pay debits the amount from the balance.
func (p *PrepaidAccount) Pay(amount kernel.Money) error {
	if p.balance.LessThan(amount) {
		return fmt.Errorf("%w: balance %s cannot cover %s", ErrInsufficientFunds, p.balance, amount)
	}

	remaining, err := p.balance.Sub(amount)
	if err != nil {
		return err
	}
	p.balance = remaining
	return nil
}

// Label implements Strategy.
func (p *PrepaidAccount) Label() string {
	return "campus account"
}

// TopUp credits the balance.
func (p *PrepaidAccount) TopUp(amount kernel.Money) {
	p.balance = p.balance.Add(amount)
}

// Balance returns the current balance.
func (p *PrepaidAccount) Balance() kernel.Money {
	return p.balance
}

// Holder returns the student number owning the account.
func (p *PrepaidAccount) Holder() string {
	return p.holder
}
