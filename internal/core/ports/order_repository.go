package ports

import (
	"context"

	"campuseats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their number and lifecycle state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByNumber retrieves an order aggregate by its unique order number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetAll retrieves every stored order, oldest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByStatus retrieves the orders currently in any of the given
	// states, oldest first.
	GetByStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)
}
