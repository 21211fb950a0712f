package queries

import (
	"errors"

	"campuseats/internal/pkg/guard"
)

var ErrGetKitchenQueueQueryIsNotConstructed = errors.New(
	"GetKitchenQueueQuery must be created via NewGetKitchenQueueQuery constructor",
)

// GetKitchenQueueQuery retrieves the orders the kitchen has to work on:
// everything in NEW or IN_PREPARATION, oldest first.
//
// Example:
//
//	query := NewGetKitchenQueueQuery()
//	handler := NewGetKitchenQueueQueryHandler(uowFactory)
//
//	queue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get kitchen queue: %w", err)
//	}
//	fmt.Printf("%d orders waiting\n", len(queue))
type GetKitchenQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenQueueQuery creates a query for the kitchen worklist.
// This is a parameterless query.
func NewGetKitchenQueueQuery() GetKitchenQueueQuery {
	return GetKitchenQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetKitchenQueueQueryIsNotConstructed if validation fails.
func (q GetKitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenQueueQueryIsNotConstructed)
}

// GetKitchenQueueQueryResponse is one kitchen queue entry.
type GetKitchenQueueQueryResponse struct {
	Number    string
	Status    string
	Customer  string
	ItemName  string
	PartySize int
	Paid      bool
	Comments  string
}
