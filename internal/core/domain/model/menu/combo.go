package menu

import (
	"fmt"
	"strings"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// Default per-category minimum dish counts for a buffet menu.
const (
	defaultBuffetMinStarters = 2
	defaultBuffetMinMains    = 3
	defaultBuffetMinDesserts = 2
	defaultBuffetMinDrinks   = 2
)

// ComboMenu is a composite catalog element: an ordered collection of items
// whose price is the sum of its children. Children are kept in insertion
// order and duplicates are allowed; a menu listing the same dish twice
// prices it twice.
//
// A buffet menu additionally carries per-category minimum dish counts and
// reports completeness against them. Plain combos have no minimums and are
// always complete.
//
// Composites are mutable only while the menu is being assembled; once a
// combo is attached to an order it must not be modified.
type ComboMenu struct {
	name        string
	description string
	items       []Item
	minPerCategory map[string]int
}

// NewComboMenu creates an empty combo menu with no completeness rules.
func NewComboMenu(name, description string) (*ComboMenu, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &ComboMenu{
		name:        name,
		description: description,
		minPerCategory: map[string]int{},
	}, nil
}

// NewBuffetMenu creates an empty buffet menu carrying the default
// per-category minimums (2 starters, 3 mains, 2 desserts, 2 drinks).
func NewBuffetMenu(name, description string) (*ComboMenu, error) {
	m, err := NewComboMenu(name, description)
	if err != nil {
		return nil, err
	}

	m.minPerCategory = map[string]int{
		"STARTER": defaultBuffetMinStarters,
		"MAIN":    defaultBuffetMinMains,
		"DESSERT": defaultBuffetMinDesserts,
		"DRINK":   defaultBuffetMinDrinks,
	}
	return m, nil
}

// Name returns the menu name.
func (m *ComboMenu) Name() string {
	return m.name
}

// Description returns the menu description.
func (m *ComboMenu) Description() string {
	return m.description
}

// Price returns the sum of the children's prices.
func (m *ComboMenu) Price() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range m.items {
		total = total.Add(item.Price())
	}
	return total
}

// Elements returns the flattened priced lines of all children, in insertion
// order.
func (m *ComboMenu) Elements() []Item {
	elements := make([]Item, 0, len(m.items))
	for _, item := range m.items {
		elements = append(elements, item.Elements()...)
	}
	return elements
}

// Add appends an item to the menu. Duplicates are kept.
func (m *ComboMenu) Add(item Item) error {
	if item == nil {
		return errs.NewValueIsRequiredError("item")
	}
	m.items = append(m.items, item)
	return nil
}

// Remove deletes the first occurrence of the given item.
// Removing an item that is not part of the menu is a no-op.
func (m *ComboMenu) Remove(item Item) {
	for i, existing := range m.items {
		if existing == item {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the direct children in insertion order.
func (m *ComboMenu) Items() []Item {
	items := make([]Item, len(m.items))
	copy(items, m.items)
	return items
}

// SetMinimumFor sets the minimum number of dishes required in a category for
// the menu to be complete. The category is matched case-insensitively.
func (m *ComboMenu) SetMinimumFor(category string, minimum int) error {
	if minimum <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"minimum",
			fmt.Errorf("%d is not greater than 0", minimum),
		)
	}
	m.minPerCategory[strings.ToUpper(category)] = minimum
	return nil
}

// IsComplete reports whether every category minimum is satisfied by the
// dishes currently in the menu. A menu without minimums is always complete.
func (m *ComboMenu) IsComplete() bool {
	counts := map[string]int{}
	for _, element := range m.Elements() {
		if dish, ok := element.(*Dish); ok {
			counts[strings.ToUpper(dish.Category())]++
		}
	}

	for category, minimum := range m.minPerCategory {
		if counts[category] < minimum {
			return false
		}
	}
	return true
}
