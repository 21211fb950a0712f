package queries

import (
	"errors"

	"campuseats/internal/pkg/guard"
)

var ErrGetReadyDeliveriesQueryIsNotConstructed = errors.New(
	"GetReadyDeliveriesQuery must be created via NewGetReadyDeliveriesQuery constructor",
)

// GetReadyDeliveriesQuery retrieves the delivery orders waiting for a
// courier: READY, delivery mode, oldest first.
//
// Example:
//
//	query := NewGetReadyDeliveriesQuery()
//	handler := NewGetReadyDeliveriesQueryHandler(uowFactory)
//
//	waiting, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get ready deliveries: %w", err)
//	}
type GetReadyDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReadyDeliveriesQuery creates a query for deliveries awaiting
// pickup. This is a parameterless query.
func NewGetReadyDeliveriesQuery() GetReadyDeliveriesQuery {
	return GetReadyDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReadyDeliveriesQueryIsNotConstructed if validation fails.
func (q GetReadyDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyDeliveriesQueryIsNotConstructed)
}

// GetReadyDeliveriesQueryResponse is one delivery awaiting pickup.
type GetReadyDeliveriesQueryResponse struct {
	Number   string
	Customer string
	Address  string
	Total    string
	Assigned bool
	Courier  string
}
