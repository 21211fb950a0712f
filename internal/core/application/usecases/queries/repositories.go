// Package queries contains read-only operations over the stored aggregates.
// Implements the Query side of the CQRS architecture: each query validates
// itself, takes a short read transaction, and projects aggregates into
// flat response structures for presentation.
package queries

import (
	"campuseats/internal/core/ports"
)

// UoWFactory provides the read transaction used by query handlers. Queries
// only ever read, so the unit of work is rolled back once the projection is
// built.
type UoWFactory interface {
	Create() ports.UnitOfWork
}
