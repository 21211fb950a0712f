package actor

import (
	"fmt"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"
)

// Level is a courier's seniority, derived from completed deliveries. It
// caps how many deliveries the courier may carry at once.
type Level int

const (
	// LevelRookie is the starting level, carrying up to 2 deliveries.
	LevelRookie Level = iota

	// LevelConfirmed is reached at 50 completed deliveries, carrying up to 3.
	LevelConfirmed

	// LevelExpert is reached at 100 completed deliveries, carrying up to 4.
	LevelExpert
)

const (
	confirmedThreshold = 50
	expertThreshold    = 100
)

// String returns the label of the level. Implements fmt.Stringer.
func (l Level) String() string {
	switch l {
	case LevelConfirmed:
		return "CONFIRMED"
	case LevelExpert:
		return "EXPERT"
	default:
		return "ROOKIE"
	}
}

// Capacity returns the number of concurrent deliveries the level allows.
func (l Level) Capacity() int {
	switch l {
	case LevelConfirmed:
		return 3
	case LevelExpert:
		return 4
	default:
		return 2
	}
}

func levelFor(completedDeliveries int) Level {
	switch {
	case completedDeliveries >= expertThreshold:
		return LevelExpert
	case completedDeliveries >= confirmedThreshold:
		return LevelConfirmed
	default:
		return LevelRookie
	}
}

// Courier is a delivery-role observer. Ready delivery orders are offered to
// it through notifications; claiming one assigns the courier and sends the
// order en route. Completing a delivery updates the courier's statistics,
// which in turn can raise its level and capacity.
//
// The struct uses private fields to ensure encapsulation and can only be
// created through the NewCourier constructor.
type Courier struct {
	id      kernel.UUID
	name    string
	vehicle string
	zone    string

	paused              bool
	completedDeliveries int

	offers  []*order.Order
	claimed []*order.Order

	isConstructed bool
}

var _ order.Observer = (*Courier)(nil)
var _ order.CourierRef = (*Courier)(nil)

// NewCourier creates a rookie courier. The name must be non-empty; vehicle
// and zone are informational.
func NewCourier(name, vehicle, zone string) (*Courier, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Courier{
		id:            kernel.NewUUID(),
		name:          name,
		vehicle:       vehicle,
		zone:          zone,
		isConstructed: true,
	}, nil
}

// Validate ensures the Courier instance was constructed through NewCourier.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return errs.NewValueIsInvalidError("courier")
	}
	return nil
}

// ID implements order.Observer and order.CourierRef.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Vehicle returns the courier's vehicle.
func (c *Courier) Vehicle() string {
	return c.vehicle
}

// Zone returns the campus zone the courier serves.
func (c *Courier) Zone() string {
	return c.zone
}

// Role implements order.Observer.
func (c *Courier) Role() order.Role {
	return order.RoleDelivery
}

// Level returns the courier's seniority, derived from completed deliveries.
func (c *Courier) Level() Level {
	return levelFor(c.completedDeliveries)
}

// CompletedDeliveries returns the courier's lifetime delivery count.
func (c *Courier) CompletedDeliveries() int {
	return c.completedDeliveries
}

// Available implements order.Observer: a courier takes offers while not
// paused and under its level's capacity.
func (c *Courier) Available() bool {
	return !c.paused && len(c.claimed) < c.Level().Capacity()
}

// Pause stops the courier from receiving offers. Claimed deliveries stay
// with the courier.
func (c *Courier) Pause() {
	c.paused = true
}

// Resume makes the courier available again.
func (c *Courier) Resume() {
	c.paused = false
}

// IsPaused reports whether the courier is paused.
func (c *Courier) IsPaused() bool {
	return c.paused
}

// OrderChanged implements order.Observer: a ready delivery order lands on
// the courier's offer list; an order leaving READY is withdrawn from it.
func (c *Courier) OrderChanged(o *order.Order) {
	if o.Status() == order.StatusReady && o.Mode() == order.ModeDelivery {
		c.addOffer(o)
		return
	}
	c.removeOffer(o)
}

// Offers returns the ready orders offered to this courier, oldest first.
func (c *Courier) Offers() []*order.Order {
	offers := make([]*order.Order, len(c.offers))
	copy(offers, c.offers)
	return offers
}

// ClaimedOrders returns the deliveries the courier currently carries.
func (c *Courier) ClaimedOrders() []*order.Order {
	claimed := make([]*order.Order, len(c.claimed))
	copy(claimed, c.claimed)
	return claimed
}

// Claim takes a ready delivery order: the courier assigns itself and sends
// the order en route. Fails when the courier is not available.
func (c *Courier) Claim(o *order.Order) error {
	if !c.Available() {
		return errs.NewValueIsInvalidErrorWithCause(
			"courier",
			fmt.Errorf("courier %s cannot take more deliveries", c.name),
		)
	}

	if err := o.AssignCourier(c); err != nil {
		return err
	}
	if err := o.ChangeState(order.StatusEnRoute); err != nil {
		return err
	}

	c.removeOffer(o)
	c.claimed = append(c.claimed, o)
	return nil
}

// CompleteDelivery hands the order over: it transitions to DELIVERED and
// the courier's statistics are updated, possibly raising its level.
func (c *Courier) CompleteDelivery(o *order.Order) error {
	if err := o.ChangeState(order.StatusDelivered); err != nil {
		return err
	}

	c.removeClaimed(o)
	c.completedDeliveries++
	return nil
}

// ReportProblem aborts a claimed delivery: the reason is recorded on the
// order, the order is cancelled, and the courier frees the slot. The
// delivery does not count as completed.
func (c *Courier) ReportProblem(o *order.Order, reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	o.SetComment(fmt.Sprintf("Delivery problem reported by %s: %s", c.name, reason))
	if err := o.Cancel(); err != nil {
		return err
	}

	c.removeClaimed(o)
	return nil
}

func (c *Courier) addOffer(o *order.Order) {
	for _, offered := range c.offers {
		if offered.IsEqual(o) {
			return
		}
	}
	c.offers = append(c.offers, o)
}

func (c *Courier) removeOffer(o *order.Order) {
	for i, offered := range c.offers {
		if offered.IsEqual(o) {
			c.offers = append(c.offers[:i], c.offers[i+1:]...)
			return
		}
	}
}

func (c *Courier) removeClaimed(o *order.Order) {
	for i, claimed := range c.claimed {
		if claimed.IsEqual(o) {
			c.claimed = append(c.claimed[:i], c.claimed[i+1:]...)
			return
		}
	}
}
