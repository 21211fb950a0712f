package ports

import (
	"context"

	"campuseats/internal/core/domain/model/actor"
	"campuseats/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer to storage.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, customer *actor.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, customer *actor.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*actor.Customer, error)

	// GetAll retrieves every registered customer.
	GetAll(ctx context.Context) ([]*actor.Customer, error)
}
