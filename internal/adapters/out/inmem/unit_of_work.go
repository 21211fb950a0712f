package inmem

import (
	"context"
	"errors"

	"campuseats/internal/core/ports"
)

// ErrNoActiveTransaction is returned when Commit is called without a
// matching Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWork implements ports.UnitOfWork over the in-memory store. Begin
// takes the store lock, giving the holder exclusive access to every
// aggregate; Commit and Rollback release it. There is no undo: a command
// that fails mid-way must surface its error before mutating, which the
// domain guards ensure by validating before committing state.
type UnitOfWork struct {
	store  *Store
	active bool
}

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a unit of work bound to the store.
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

// Begin takes the store lock.
func (u *UnitOfWork) Begin(_ context.Context) error {
	u.store.mu.Lock()
	u.active = true
	return nil
}

// Commit releases the store lock, making the changes visible to the next
// unit of work.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}
	u.active = false
	u.store.mu.Unlock()
	return nil
}

// Rollback releases the store lock. Calling it after Commit is a no-op, so
// it is safe to defer.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}
	u.active = false
	u.store.mu.Unlock()
	return nil
}

// OrderRepository returns the order repository bound to this transaction.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderRepository{store: u.store}
}

// CourierRepository returns the courier repository bound to this
// transaction.
func (u *UnitOfWork) CourierRepository() ports.CourierRepository {
	return courierRepository{store: u.store}
}

// CustomerRepository returns the customer repository bound to this
// transaction.
func (u *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerRepository{store: u.store}
}

// KitchenStaffRepository returns the kitchen roster repository bound to
// this transaction.
func (u *UnitOfWork) KitchenStaffRepository() ports.KitchenStaffRepository {
	return kitchenStaffRepository{store: u.store}
}

// UnitOfWorkFactory creates UnitOfWork instances sharing one store.
type UnitOfWorkFactory struct {
	store *Store
}

var _ ports.UnitOfWorkFactory = UnitOfWorkFactory{}

// NewUnitOfWorkFactory creates a factory bound to the store.
func NewUnitOfWorkFactory(store *Store) UnitOfWorkFactory {
	return UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work.
func (f UnitOfWorkFactory) Create() ports.UnitOfWork {
	return NewUnitOfWork(f.store)
}
