package inmem

import (
	"context"
	"fmt"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"
)

// orderRepository implements ports.OrderRepository over the store.
// Instances are handed out by a begun UnitOfWork.
type orderRepository struct {
	store *Store
}

func (r orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.store.orderIndex[aggregate.Number()]; exists {
		return fmt.Errorf("order %s already exists", aggregate.Number())
	}

	r.store.orders = append(r.store.orders, aggregate)
	r.store.orderIndex[aggregate.Number()] = aggregate
	return nil
}

func (r orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, exists := r.store.orderIndex[aggregate.Number()]; !exists {
		return errs.NewObjectNotFoundError("order", aggregate.Number())
	}
	return nil
}

func (r orderRepository) GetByNumber(_ context.Context, number string) (*order.Order, error) {
	aggregate, exists := r.store.orderIndex[number]
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", number)
	}
	return aggregate, nil
}

func (r orderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	orders := make([]*order.Order, len(r.store.orders))
	copy(orders, r.store.orders)
	return orders, nil
}

func (r orderRepository) GetByStatus(_ context.Context, statuses ...order.Status) ([]*order.Order, error) {
	wanted := make(map[order.Status]bool, len(statuses))
	for _, status := range statuses {
		wanted[status] = true
	}

	orders := make([]*order.Order, 0)
	for _, aggregate := range r.store.orders {
		if wanted[aggregate.Status()] {
			orders = append(orders, aggregate)
		}
	}
	return orders, nil
}
