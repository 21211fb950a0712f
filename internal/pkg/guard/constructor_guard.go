// Package guard implements the constructor-guard pattern: a small embedded
// marker that distinguishes objects created through their designated
// constructor from zero values, so that domain invariants established at
// construction time cannot be bypassed.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for a zero-value object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// Embed it in value objects, entities, and commands, set it with
// NewConstructorGuard inside the constructor, and call Validate before
// operating on instances that may have arrived as zero values.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    customer actor.Customer
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed holder. For a zero value it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
