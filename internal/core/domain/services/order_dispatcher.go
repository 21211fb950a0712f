package services

import (
	"errors"

	"campuseats/internal/core/domain/model/actor"
	"campuseats/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when no suitable courier is available for
// order dispatch. This occurs when either no couriers are provided or none
// of the provided couriers can take another delivery due to capacity or
// pause.
var ErrCourierNotFound = errors.New("courier not found")

// ErrOrderNotDispatchable is returned when the order is not a ready,
// unassigned delivery order.
var ErrOrderNotDispatchable = errors.New("order is not ready for dispatch")

// CourierDispatcher is a domain service responsible for finding and
// assigning a courier to a ready delivery order.
//
// Business rules:
//   - Only READY delivery orders without an assigned courier are dispatched
//   - Couriers must be available (not paused, under capacity)
//   - Selection prioritizes the lowest current load
//   - Ties go to the first courier in the slice
//   - The selected courier claims the order, which sends it en route
//
// Example usage:
//
//	dispatcher := NewCourierDispatcher()
//	assigned, err := dispatcher.Dispatch(readyOrder, couriers)
//	if errors.Is(err, ErrCourierNotFound) {
//	    // every courier is paused or at capacity, retry later
//	    return
//	}
type CourierDispatcher struct{}

// NewCourierDispatcher creates a new CourierDispatcher instance.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch finds the least-loaded available courier and has it claim the
// order. Returns the courier who took the delivery.
func (d CourierDispatcher) Dispatch(o *order.Order, couriers []*actor.Courier) (*actor.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.Status() != order.StatusReady || o.Mode() != order.ModeDelivery || o.Courier() != nil {
		return nil, ErrOrderNotDispatchable
	}

	bestCourier, err := d.findBestCourier(couriers)
	if err != nil {
		return nil, err
	}

	if err = bestCourier.Claim(o); err != nil {
		return nil, err
	}

	return bestCourier, nil
}

// findBestCourier picks the available courier with the fewest claimed
// deliveries, keeping the first on ties.
func (d CourierDispatcher) findBestCourier(couriers []*actor.Courier) (*actor.Courier, error) {
	var (
		bestCourier *actor.Courier
		bestLoad    int
	)

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.Available() {
			continue
		}

		load := len(c.ClaimedOrders())
		if bestCourier == nil || load < bestLoad {
			bestLoad = load
			bestCourier = c
		}
	}

	if bestCourier == nil {
		return nil, ErrCourierNotFound
	}

	return bestCourier, nil
}
