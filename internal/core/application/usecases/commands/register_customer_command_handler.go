package commands

import (
	"context"

	"campuseats/internal/core/domain/model/actor"
	"campuseats/internal/core/domain/model/kernel"
)

// RegisterCustomerCommandHandler handles the business logic for customer
// registration, including student status activation.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer
// registration. Requires a CustomerUoWFactory for transactional
// persistence.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the new customer's
// identifier.
func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) (kernel.UUID, error) {
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

	customer, err := actor.NewCustomer(cmd.Name(), cmd.DeliveryAddress())
	if err != nil {
		return kernel.UUID{}, err
	}
	if cmd.StudentNumber() != "" {
		if err = customer.ActivateStudentStatus(cmd.StudentNumber()); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = uow.CustomerRepository().Add(ctx, customer); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return customer.ID(), nil
}
