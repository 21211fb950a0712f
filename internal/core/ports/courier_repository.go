// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"campuseats/internal/core/domain/model/actor"
	"campuseats/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for couriers.
// Provides methods for storing, retrieving, and querying couriers with
// their complete state including current load and pause mode.
type CourierRepository interface {
	// Add persists a new courier to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *actor.Courier) error

	// Update persists changes to an existing courier.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, courier *actor.Courier) error

	// Get retrieves a courier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*actor.Courier, error)

	// GetAll retrieves every registered courier.
	GetAll(ctx context.Context) ([]*actor.Courier, error)

	// GetAllAvailable retrieves the couriers that can take another
	// delivery: not paused and under their level's capacity.
	GetAllAvailable(ctx context.Context) ([]*actor.Courier, error)
}
