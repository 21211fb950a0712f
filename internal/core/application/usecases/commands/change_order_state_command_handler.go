package commands

import (
	"context"
)

// ChangeOrderStateCommandHandler handles the business logic for order state
// transitions. The transition table and its guards live on the order; the
// handler only loads, applies, and persists.
type ChangeOrderStateCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStateCommandHandler creates a handler for state
// transitions. Requires an OrderUoWFactory for transactional persistence.
func NewChangeOrderStateCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStateCommandHandler {
	return ChangeOrderStateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the state change command. A rejected transition leaves
// the order untouched and surfaces the domain error unchanged.
func (h ChangeOrderStateCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeState(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
