package inmem

import (
	"context"
	"fmt"

	"campuseats/internal/core/domain/model/actor"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// courierRepository implements ports.CourierRepository over the store.
type courierRepository struct {
	store *Store
}

func (r courierRepository) Add(_ context.Context, courier *actor.Courier) error {
	if err := courier.Validate(); err != nil {
		return err
	}
	if _, exists := r.store.courierIndex[courier.ID()]; exists {
		return fmt.Errorf("courier %s already exists", courier.ID())
	}

	r.store.couriers = append(r.store.couriers, courier)
	r.store.courierIndex[courier.ID()] = courier
	return nil
}

func (r courierRepository) Update(_ context.Context, courier *actor.Courier) error {
	if err := courier.Validate(); err != nil {
		return err
	}
	if _, exists := r.store.courierIndex[courier.ID()]; !exists {
		return errs.NewObjectNotFoundError("courier", courier.ID())
	}
	return nil
}

func (r courierRepository) Get(_ context.Context, id kernel.UUID) (*actor.Courier, error) {
	courier, exists := r.store.courierIndex[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("courier", id)
	}
	return courier, nil
}

func (r courierRepository) GetAll(_ context.Context) ([]*actor.Courier, error) {
	couriers := make([]*actor.Courier, len(r.store.couriers))
	copy(couriers, r.store.couriers)
	return couriers, nil
}

func (r courierRepository) GetAllAvailable(_ context.Context) ([]*actor.Courier, error) {
	couriers := make([]*actor.Courier, 0)
	for _, courier := range r.store.couriers {
		if courier.Available() {
			couriers = append(couriers, courier)
		}
	}
	return couriers, nil
}
