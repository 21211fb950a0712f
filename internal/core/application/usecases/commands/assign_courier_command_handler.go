package commands

import (
	"context"
	"errors"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/domain/services"
)

var (
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
	ErrNoOrderFound        = errors.New("no order found")
)

// AssignCourierCommandHandler orchestrates the courier dispatch process.
// Finds ready delivery orders without a courier and matches each with the
// least-loaded available courier. Ensures transactional consistency when
// updating both order and courier states.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	cmd := NewAssignCourierCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No deliveries waiting")
//	case errors.Is(err, ErrNoFreeCouriersFound):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier dispatch.
// Requires a UoWFactory for coordinating transactional updates across
// repositories.
func NewAssignCourierCommandHandler(uowFactory UoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command. Every unassigned READY delivery
// order is offered to the couriers in turn; dispatch stops early when
// capacity runs out. Returns ErrNoOrderFound when nothing waits for pickup
// and ErrNoFreeCouriersFound when no courier can take a delivery.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	ordersRepo := uow.OrderRepository()

	readyOrders, err := ordersRepo.GetByStatus(ctx, order.StatusReady)
	if err != nil {
		return err
	}

	pending := make([]*order.Order, 0, len(readyOrders))
	for _, o := range readyOrders {
		if o.Mode() == order.ModeDelivery && o.Courier() == nil {
			pending = append(pending, o)
		}
	}
	if len(pending) == 0 {
		return ErrNoOrderFound
	}

	couriers, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(couriers) == 0 {
		return ErrNoFreeCouriersFound
	}

	dispatcher := services.NewCourierDispatcher()
	for _, o := range pending {
		assignedCourier, err := dispatcher.Dispatch(o, couriers)
		if errors.Is(err, services.ErrCourierNotFound) {
			break
		}
		if err != nil {
			return err
		}

		if err = ordersRepo.Update(ctx, o); err != nil {
			return err
		}
		if err = courierRepo.Update(ctx, assignedCourier); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
