package ports

import (
	"context"

	"campuseats/internal/core/domain/model/actor"
	"campuseats/internal/core/domain/model/kernel"
)

// KitchenStaffRepository defines the persistence contract for kitchen
// staff. New orders are subscribed to every registered staff member.
type KitchenStaffRepository interface {
	// Add persists a new kitchen staff member to storage.
	Add(ctx context.Context, staff *actor.KitchenStaff) error

	// Update persists changes to an existing kitchen staff member.
	Update(ctx context.Context, staff *actor.KitchenStaff) error

	// Get retrieves a kitchen staff member by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*actor.KitchenStaff, error)

	// GetAll retrieves the whole kitchen roster.
	GetAll(ctx context.Context) ([]*actor.KitchenStaff, error)
}
