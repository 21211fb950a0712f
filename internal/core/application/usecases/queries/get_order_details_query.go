package queries

import (
	"errors"

	"campuseats/internal/pkg/guard"
)

var (
	ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
		"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
)

// GetOrderDetailsQuery retrieves the full presentation view of one order:
// composition, pricing breakdown, payment state and event history.
//
// Example:
//
//	query, err := NewGetOrderDetailsQuery("ORD-0001")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderDetailsQueryHandler(uowFactory)
//	details, err := handler.Handle(ctx, query)
type GetOrderDetailsQuery struct { //nolint:recvcheck //using for validation
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query for one order's details.
// The order number must be non-empty.
func NewGetOrderDetailsQuery(orderNumber string) (GetOrderDetailsQuery, error) {
	query := GetOrderDetailsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if orderNumber == "" {
		return GetOrderDetailsQuery{}, ErrOrderNumberIsRequired
	}
	query.orderNumber = orderNumber

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderDetailsQueryIsNotConstructed if validation fails.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderNumber returns the requested order's number.
func (q GetOrderDetailsQuery) OrderNumber() string {
	return q.orderNumber
}

// OrderLineView is one priced line of the flattened item chain.
type OrderLineView struct {
	Name        string
	Description string
	Price       string
}

// GetOrderDetailsQueryResponse is the full view of one order.
type GetOrderDetailsQueryResponse struct {
	Number                string
	Status                string
	Mode                  string
	Customer              string
	Address               string
	PartySize             int
	Lines                 []OrderLineView
	TotalBeforeReductions string
	AppliedReductions     []string
	Total                 string
	Paid                  bool
	Courier               string
	Comments              string
	CreatedAt             string
	DeliveredAt           string
	Events                []string
}
