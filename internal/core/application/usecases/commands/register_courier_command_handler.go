package commands

import (
	"context"

	"campuseats/internal/core/domain/model/actor"
	"campuseats/internal/core/domain/model/kernel"
)

// RegisterCourierCommandHandler handles the business logic for courier
// registration.
type RegisterCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewRegisterCourierCommandHandler creates a handler for courier
// registration. Requires a CourierUoWFactory for transactional persistence.
func NewRegisterCourierCommandHandler(uowFactory CourierUoWFactory) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the new courier's
// identifier.
func (h RegisterCourierCommandHandler) Handle(ctx context.Context, cmd RegisterCourierCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courier, err := actor.NewCourier(cmd.Name(), cmd.Vehicle(), cmd.Zone())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.CourierRepository().Add(ctx, courier); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return courier.ID(), nil
}
