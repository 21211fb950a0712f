package inmem

import (
	"sync"

	"campuseats/internal/core/domain/model/actor"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
)

// Store holds every aggregate of the running process. Insertion order is
// preserved per collection so listings are stable.
//
// The store itself is not safe for direct concurrent use; access it through
// a UnitOfWork, whose Begin/Commit cycle takes the store lock.
type Store struct {
	mu sync.Mutex

	orders       []*order.Order
	orderIndex   map[string]*order.Order
	couriers     []*actor.Courier
	courierIndex map[kernel.UUID]*actor.Courier
	customers    []*actor.Customer
	custIndex    map[kernel.UUID]*actor.Customer
	staff        []*actor.KitchenStaff
	staffIndex   map[kernel.UUID]*actor.KitchenStaff
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orderIndex:   make(map[string]*order.Order),
		courierIndex: make(map[kernel.UUID]*actor.Courier),
		custIndex:    make(map[kernel.UUID]*actor.Customer),
		staffIndex:   make(map[kernel.UUID]*actor.KitchenStaff),
	}
}
