package queries

import (
	"context"

	"campuseats/internal/core/domain/model/order"
)

// GetKitchenQueueQueryHandler projects the orders in NEW or IN_PREPARATION
// into kitchen queue entries.
type GetKitchenQueueQueryHandler struct {
	uowFactory UoWFactory
}

// NewGetKitchenQueueQueryHandler creates a handler for kitchen queue
// queries.
func NewGetKitchenQueueQueryHandler(uowFactory UoWFactory) GetKitchenQueueQueryHandler {
	return GetKitchenQueueQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query. Results keep placement order, so the oldest
// order is first in the queue.
func (h GetKitchenQueueQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenQueueQuery,
) ([]GetKitchenQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetByStatus(ctx, order.StatusNew, order.StatusInPreparation)
	if err != nil {
		return nil, err
	}

	queue := make([]GetKitchenQueueQueryResponse, 0, len(orders))
	for _, o := range orders {
		queue = append(queue, GetKitchenQueueQueryResponse{
			Number:    o.Number(),
			Status:    o.Status().String(),
			Customer:  o.Customer().Name(),
			ItemName:  o.Item().Name(),
			PartySize: o.PartySize(),
			Paid:      o.IsPaid(),
			Comments:  o.Comments(),
		})
	}

	return queue, nil
}
