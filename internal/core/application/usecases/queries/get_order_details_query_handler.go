package queries

import (
	"context"
	"time"
)

// GetOrderDetailsQueryHandler projects one order aggregate into its full
// presentation view.
type GetOrderDetailsQueryHandler struct {
	uowFactory UoWFactory
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail
// queries.
func NewGetOrderDetailsQueryHandler(uowFactory UoWFactory) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query. Returns errs.ErrObjectNotFound (wrapped) when
// no order carries the number.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetByNumber(ctx, query.OrderNumber())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	lines := make([]OrderLineView, 0)
	for _, element := range o.Item().Elements() {
		lines = append(lines, OrderLineView{
			Name:        element.Name(),
			Description: element.Description(),
			Price:       element.Price().String(),
		})
	}

	response := GetOrderDetailsQueryResponse{
		Number:                o.Number(),
		Status:                o.Status().String(),
		Mode:                  o.Mode().String(),
		Customer:              o.Customer().Name(),
		Address:               o.Address(),
		PartySize:             o.PartySize(),
		Lines:                 lines,
		TotalBeforeReductions: o.TotalBeforeReductions().String(),
		AppliedReductions:     o.AppliedReductions(),
		Total:                 o.Total().String(),
		Paid:                  o.IsPaid(),
		Comments:              o.Comments(),
		CreatedAt:             o.CreatedAt().Format(time.RFC3339),
		Events:                o.Events(),
	}
	if o.Courier() != nil {
		response.Courier = o.Courier().Name()
	}
	if o.DeliveredAt() != nil {
		response.DeliveredAt = o.DeliveredAt().Format(time.RFC3339)
	}

	return response, nil
}
