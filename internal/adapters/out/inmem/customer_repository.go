package inmem

import (
	"context"
	"fmt"

	"campuseats/internal/core/domain/model/actor"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// customerRepository implements ports.CustomerRepository over the store.
type customerRepository struct {
	store *Store
}

func (r customerRepository) Add(_ context.Context, customer *actor.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	if _, exists := r.store.custIndex[customer.ID()]; exists {
		return fmt.Errorf("customer %s already exists", customer.ID())
	}

	r.store.customers = append(r.store.customers, customer)
	r.store.custIndex[customer.ID()] = customer
	return nil
}

func (r customerRepository) Update(_ context.Context, customer *actor.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	if _, exists := r.store.custIndex[customer.ID()]; !exists {
		return errs.NewObjectNotFoundError("customer", customer.ID())
	}
	return nil
}

func (r customerRepository) Get(_ context.Context, id kernel.UUID) (*actor.Customer, error) {
	customer, exists := r.store.custIndex[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("customer", id)
	}
	return customer, nil
}

func (r customerRepository) GetAll(_ context.Context) ([]*actor.Customer, error) {
	customers := make([]*actor.Customer, len(r.store.customers))
	copy(customers, r.store.customers)
	return customers, nil
}
