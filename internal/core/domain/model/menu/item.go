package menu

import (
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// Item is the capability shared by every priceable catalog element: single
// dishes, composite menus, and decorated items carrying extras.
//
// Elements returns the flat list of priced lines the item is made of, in
// insertion order. Summing the prices of the elements always equals the
// item's own price, so views and pricing never need to know the concrete
// shape of the composition.
type Item interface {
	Name() string
	Description() string
	Price() kernel.Money
	Elements() []Item
}

// Dish is a leaf catalog element: one named plate with a fixed unit price
// and a category used by buffet completeness rules.
//
// A dish's price is immutable after construction. Availability is the only
// mutable attribute; it affects display, never pricing.
type Dish struct {
	name        string
	description string
	unitPrice   kernel.Money
	category    string
	available   bool
}

// NewDish creates a dish with a validated name and category. The unit price
// cannot be negative because kernel.Money enforces that at its own
// construction.
func NewDish(name, description string, unitPrice kernel.Money, category string) (*Dish, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if category == "" {
		return nil, errs.NewValueIsRequiredError("category")
	}

	return &Dish{
		name:        name,
		description: description,
		unitPrice:   unitPrice,
		category:    category,
		available:   true,
	}, nil
}

// Name returns the dish name.
func (d *Dish) Name() string {
	return d.name
}

// Description returns the dish description.
func (d *Dish) Description() string {
	return d.description
}

// Price returns the dish unit price.
func (d *Dish) Price() kernel.Money {
	return d.unitPrice
}

// Elements returns the dish itself as its only priced line.
func (d *Dish) Elements() []Item {
	return []Item{d}
}

// Category returns the dish category (starter, main, dessert, drink, ...).
func (d *Dish) Category() string {
	return d.category
}

// Available reports whether the dish can currently be ordered.
func (d *Dish) Available() bool {
	return d.available
}

// SetAvailable toggles dish availability.
func (d *Dish) SetAvailable(available bool) {
	d.available = available
}
