package menu

import (
	"fmt"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// ExtraKind classifies a priced extra layered on top of an item.
type ExtraKind int

const (
	// KindUnknown catches uninitialized ExtraKind values.
	KindUnknown ExtraKind = iota

	// KindIngredient is an additional ingredient.
	KindIngredient

	// KindSauce is an additional sauce.
	KindSauce

	// KindPortion is a supplementary portion.
	KindPortion

	// KindSide is an additional side dish.
	KindSide

	// KindDrink is an additional drink.
	KindDrink
)

func extraKindStrings() map[ExtraKind]string {
	return map[ExtraKind]string{
		KindUnknown:    "Unknown",
		KindIngredient: "Ingredient",
		KindSauce:      "Sauce",
		KindPortion:    "Portion",
		KindSide:       "Side",
		KindDrink:      "Drink",
	}
}

// String returns the human-readable name of the kind, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (k ExtraKind) String() string {
	if s, ok := extraKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// ExtraKindFromString parses a kind label as rendered by String.
// Used by the HTTP adapter to accept extra requests.
func ExtraKindFromString(label string) (ExtraKind, error) {
	for kind, s := range extraKindStrings() {
		if s == label && kind != KindUnknown {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"extra kind",
		fmt.Errorf("%q is not a valid extra kind", label),
	)
}

// Validate checks that the kind is one of the defined extra kinds.
func (k ExtraKind) Validate() error {
	if k <= KindUnknown || k > KindDrink {
		return errs.NewValueIsInvalidErrorWithCause(
			"extra kind",
			fmt.Errorf("%d is not a valid extra kind", k),
		)
	}
	return nil
}

// Extra decorates exactly one Item with a priced add-on. Extras chain: an
// extra may wrap another extra, forming a singly linked list that terminates
// in a dish or a combo menu. The wrapped item is owned exclusively and never
// mutated; adding an extra to an order means replacing the order's root item
// with a new chain head.
//
// The effective price is the wrapped price plus extraPrice × quantity.
type Extra struct {
	base       Item
	name       string
	extraPrice kernel.Money
	kind       ExtraKind
	quantity   int
}

// extraLine is the priced line an Extra contributes to flattened element
// views. It carries the extra's full charge (unit price × quantity), so
// summing a flattened view equals pricing the chain.
type extraLine struct {
	extra *Extra
}

func (l extraLine) Name() string        { return l.extra.name }
func (l extraLine) Description() string { return l.extra.kind.String() }
func (l extraLine) Price() kernel.Money { return l.extra.Surcharge() }
func (l extraLine) Elements() []Item    { return []Item{l} }

// NewExtra wraps base with a priced extra. The name must be non-empty, the
// kind valid, and the quantity at least 1. A negative extra price is
// impossible by kernel.Money construction.
func NewExtra(base Item, name string, extraPrice kernel.Money, kind ExtraKind, quantity int) (*Extra, error) {
	if base == nil {
		return nil, errs.NewValueIsRequiredError("base item")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, 100)
	}

	return &Extra{
		base:       base,
		name:       name,
		extraPrice: extraPrice,
		kind:       kind,
		quantity:   quantity,
	}, nil
}

// Name returns the name of the wrapped item; the extra itself is reported
// through FullName and the flattened elements.
func (e *Extra) Name() string {
	return e.base.Name()
}

// Description returns the wrapped item's description.
func (e *Extra) Description() string {
	return e.base.Description()
}

// Price returns the wrapped price plus the extra's surcharge.
func (e *Extra) Price() kernel.Money {
	return e.base.Price().Add(e.Surcharge())
}

// Surcharge returns the charge this extra adds: unit price × quantity.
func (e *Extra) Surcharge() kernel.Money {
	return e.extraPrice.MulInt(int64(e.quantity))
}

// Elements returns the wrapped item's priced lines followed by one line for
// the extra itself, keeping flatten-and-sum equal to Price.
func (e *Extra) Elements() []Item {
	return append(e.base.Elements(), extraLine{extra: e})
}

// Base returns the wrapped item, the next link of the chain.
func (e *Extra) Base() Item {
	return e.base
}

// ExtraName returns the name of the add-on.
func (e *Extra) ExtraName() string {
	return e.name
}

// ExtraPrice returns the add-on's unit price.
func (e *Extra) ExtraPrice() kernel.Money {
	return e.extraPrice
}

// Kind returns the add-on classification.
func (e *Extra) Kind() ExtraKind {
	return e.kind
}

// Quantity returns how many units of the add-on are applied.
func (e *Extra) Quantity() int {
	return e.quantity
}

// FullName renders the wrapped name with the add-on appended, for example
// "Margherita + Mozzarella (Ingredient)".
func (e *Extra) FullName() string {
	return fmt.Sprintf("%s + %s (%s)", e.base.Name(), e.name, e.kind)
}
