package commands

import (
	"context"
)

// ChangeAddressCommandHandler handles the business logic for delivery
// address changes. The order rejects the change once it is paid.
type ChangeAddressCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeAddressCommandHandler creates a handler for address changes.
// Requires an OrderUoWFactory for transactional persistence.
func NewChangeAddressCommandHandler(uowFactory OrderUoWFactory) ChangeAddressCommandHandler {
	return ChangeAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address change command.
func (h ChangeAddressCommandHandler) Handle(ctx context.Context, cmd ChangeAddressCommand) error {
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

	if err = aggregate.SetAddress(cmd.Address()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
