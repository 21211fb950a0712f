package inmem

import (
	"context"
	"fmt"

	"campuseats/internal/core/domain/model/actor"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// kitchenStaffRepository implements ports.KitchenStaffRepository over the
// store.
type kitchenStaffRepository struct {
	store *Store
}

func (r kitchenStaffRepository) Add(_ context.Context, staff *actor.KitchenStaff) error {
	if err := staff.Validate(); err != nil {
		return err
	}
	if _, exists := r.store.staffIndex[staff.ID()]; exists {
		return fmt.Errorf("kitchen staff %s already exists", staff.ID())
	}

	r.store.staff = append(r.store.staff, staff)
	r.store.staffIndex[staff.ID()] = staff
	return nil
}

func (r kitchenStaffRepository) Update(_ context.Context, staff *actor.KitchenStaff) error {
	if err := staff.Validate(); err != nil {
		return err
	}
	if _, exists := r.store.staffIndex[staff.ID()]; !exists {
		return errs.NewObjectNotFoundError("kitchen staff", staff.ID())
	}
	return nil
}

func (r kitchenStaffRepository) Get(_ context.Context, id kernel.UUID) (*actor.KitchenStaff, error) {
	staff, exists := r.store.staffIndex[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("kitchen staff", id)
	}
	return staff, nil
}

func (r kitchenStaffRepository) GetAll(_ context.Context) ([]*actor.KitchenStaff, error) {
	staff := make([]*actor.KitchenStaff, len(r.store.staff))
	copy(staff, r.store.staff)
	return staff, nil
}
