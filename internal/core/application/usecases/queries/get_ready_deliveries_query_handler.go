package queries

import (
	"context"

	"campuseats/internal/core/domain/model/order"
)

// GetReadyDeliveriesQueryHandler projects READY delivery orders into
// pickup-list entries for couriers and dispatch.
type GetReadyDeliveriesQueryHandler struct {
	uowFactory UoWFactory
}

// NewGetReadyDeliveriesQueryHandler creates a handler for ready-delivery
// queries.
func NewGetReadyDeliveriesQueryHandler(uowFactory UoWFactory) GetReadyDeliveriesQueryHandler {
	return GetReadyDeliveriesQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query. On-site and takeaway orders are excluded even
// when ready, since no courier will ever pick them up.
func (h GetReadyDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetReadyDeliveriesQuery,
) ([]GetReadyDeliveriesQueryResponse, error) {
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

	readyOrders, err := uow.OrderRepository().GetByStatus(ctx, order.StatusReady)
	if err != nil {
		return nil, err
	}

	deliveries := make([]GetReadyDeliveriesQueryResponse, 0, len(readyOrders))
	for _, o := range readyOrders {
		if o.Mode() != order.ModeDelivery {
			continue
		}

		entry := GetReadyDeliveriesQueryResponse{
			Number:   o.Number(),
			Customer: o.Customer().Name(),
			Address:  o.Address(),
			Total:    o.Total().String(),
			Assigned: o.Courier() != nil,
		}
		if o.Courier() != nil {
			entry.Courier = o.Courier().Name()
		}
		deliveries = append(deliveries, entry)
	}

	return deliveries, nil
}
