package actor

import (
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"
)

// KitchenStaff is a kitchen-role observer. It keeps a worklist of the orders
// waiting for or under preparation, drops them from the worklist when they
// turn ready, and counts what it prepared.
//
// The struct uses private fields to ensure encapsulation and can only be
// created through the NewKitchenStaff constructor.
type KitchenStaff struct {
	id         kernel.UUID
	name       string
	speciality string

	worklist      []*order.Order
	preparedCount int

	isConstructed bool
}

var _ order.Observer = (*KitchenStaff)(nil)

// NewKitchenStaff creates a kitchen staff member. The name must be
// non-empty; the speciality is informational and may stay empty.
func NewKitchenStaff(name, speciality string) (*KitchenStaff, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &KitchenStaff{
		id:            kernel.NewUUID(),
		name:          name,
		speciality:    speciality,
		isConstructed: true,
	}, nil
}

// Validate ensures the KitchenStaff instance was constructed through
// NewKitchenStaff.
func (k *KitchenStaff) Validate() error {
	if k == nil || !k.isConstructed {
		return errs.NewValueIsInvalidError("kitchen staff")
	}
	return nil
}

// ID implements order.Observer.
func (k *KitchenStaff) ID() kernel.UUID {
	return k.id
}

// Name returns the staff member's display name.
func (k *KitchenStaff) Name() string {
	return k.name
}

// Speciality returns the staff member's speciality.
func (k *KitchenStaff) Speciality() string {
	return k.speciality
}

// Role implements order.Observer.
func (k *KitchenStaff) Role() order.Role {
	return order.RoleKitchen
}

// Available implements order.Observer. The kitchen always takes new orders
// onto its worklist.
func (k *KitchenStaff) Available() bool {
	return true
}

// OrderChanged implements order.Observer: orders entering preparation join
// the worklist, and leave it as soon as they move past preparation. An order
// that turned ready counts as prepared.
func (k *KitchenStaff) OrderChanged(o *order.Order) {
	switch o.Status() {
	case order.StatusNew, order.StatusInPreparation:
		k.enqueue(o)
	case order.StatusReady:
		if k.dequeue(o) {
			k.preparedCount++
		}
	default:
		k.dequeue(o)
	}
}

// MarkReady finishes the preparation of an order: it transitions the order
// to READY, which also updates this worklist through the notification.
func (k *KitchenStaff) MarkReady(o *order.Order) error {
	return o.ChangeState(order.StatusReady)
}

// Worklist returns the orders waiting for or under preparation, oldest
// first.
func (k *KitchenStaff) Worklist() []*order.Order {
	worklist := make([]*order.Order, len(k.worklist))
	copy(worklist, k.worklist)
	return worklist
}

// PreparedCount returns how many orders this staff member saw through to
// ready.
func (k *KitchenStaff) PreparedCount() int {
	return k.preparedCount
}

func (k *KitchenStaff) enqueue(o *order.Order) {
	for _, queued := range k.worklist {
		if queued.IsEqual(o) {
			return
		}
	}
	k.worklist = append(k.worklist, o)
}

func (k *KitchenStaff) dequeue(o *order.Order) bool {
	for i, queued := range k.worklist {
		if queued.IsEqual(o) {
			k.worklist = append(k.worklist[:i], k.worklist[i+1:]...)
			return true
		}
	}
	return false
}
