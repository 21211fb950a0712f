// Package kernel provides core domain primitives used throughout the ordering
// domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison
//   - Money: An immutable non-negative decimal amount used for all prices
//
// These primitives enforce domain invariants at construction time, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
