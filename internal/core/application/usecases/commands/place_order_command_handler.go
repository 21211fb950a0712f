package commands

import (
	"context"

	"campuseats/internal/core/domain/model/menu"
	"campuseats/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles the business logic for placing an order.
// Builds the menu item from the requested lines, creates the order in NEW
// status, and subscribes the customer, the kitchen roster and the couriers
// to it.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, numbers)
//	cmd, _ := NewPlaceOrderCommand(customerID, lines, 2, order.ModeOnSite, "")
//
//	number, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	numbers    *order.NumberSequence
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence and the process-wide
// number sequence.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, numbers *order.NumberSequence) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		numbers:    numbers,
	}
}

// Handle processes the order placement command and returns the new order's
// number. A single line becomes a dish, several lines a combo menu. The
// order is persisted with every interested observer already subscribed, so
// later lifecycle changes fan out without further wiring.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return "", err
	}

	item, err := buildItem(cmd.Lines())
	if err != nil {
		return "", err
	}

	newOrder, err := order.NewOrder(h.numbers.Next(), customer, item, cmd.PartySize(), cmd.Mode())
	if err != nil {
		return "", err
	}
	if cmd.Comment() != "" {
		newOrder.SetComment(cmd.Comment())
	}

	if err = h.subscribeObservers(ctx, uow, newOrder, customer); err != nil {
		return "", err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return newOrder.Number(), nil
}

func (h PlaceOrderCommandHandler) subscribeObservers(
	ctx context.Context,
	uow UoW,
	newOrder *order.Order,
	customer order.Observer,
) error {
	if err := newOrder.Subscribe(customer); err != nil {
		return err
	}

	roster, err := uow.KitchenStaffRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	for _, staff := range roster {
		if err = newOrder.Subscribe(staff); err != nil {
			return err
		}
	}

	couriers, err := uow.CourierRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	for _, courier := range couriers {
		if err = newOrder.Subscribe(courier); err != nil {
			return err
		}
	}

	return nil
}

func buildItem(lines []OrderLine) (menu.Item, error) {
	dishes := make([]*menu.Dish, 0, len(lines))
	for _, line := range lines {
		dish, err := menu.NewDish(line.Name, line.Description, line.UnitPrice, line.Category)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}

	if len(dishes) == 1 {
		return dishes[0], nil
	}

	combo, err := menu.NewComboMenu("Menu", "composed menu")
	if err != nil {
		return nil, err
	}
	for _, dish := range dishes {
		if err = combo.Add(dish); err != nil {
			return nil, err
		}
	}
	return combo, nil
}
