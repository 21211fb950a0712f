package commands

import (
	"context"
)

// AddExtraCommandHandler handles the business logic for adding an extra to
// an order. The order itself rejects the change once it is paid.
type AddExtraCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddExtraCommandHandler creates a handler for extra addition.
// Requires an OrderUoWFactory for transactional persistence.
func NewAddExtraCommandHandler(uowFactory OrderUoWFactory) AddExtraCommandHandler {
	return AddExtraCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command: loads the order by number, applies the
// extra (which recomputes the total and notifies subscribers), and persists
// the change.
func (h AddExtraCommandHandler) Handle(ctx context.Context, cmd AddExtraCommand) error {
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

	if err = aggregate.AddExtra(cmd.Name(), cmd.ExtraPrice(), cmd.Kind(), cmd.Quantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
