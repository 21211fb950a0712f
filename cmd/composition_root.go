package cmd

import (
	"context"

	"campuseats/internal/adapters/out/inmem"
	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/actor"
	"campuseats/internal/core/domain/model/order"
)

// CompositionRoot wires the application together: one in-memory store, the
// process-wide order number sequence, and factory methods for every command
// and query handler.
type CompositionRoot struct {
	store      *inmem.Store
	numbers    *order.NumberSequence
	uowFactory inmem.UnitOfWorkFactory
}

func NewCompositionRoot(_ Config) CompositionRoot {
	store := inmem.NewStore()
	return CompositionRoot{
		store:      store,
		numbers:    order.NewNumberSequence(),
		uowFactory: inmem.NewUnitOfWorkFactory(store),
	}
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCourierCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.numbers)
}

func (c *CompositionRoot) CreateAddExtraCommandHandler() commands.AddExtraCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddExtraCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeAddressCommandHandler() commands.ChangeAddressCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeAddressCommandHandler(f)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPayOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStateCommandHandler() commands.ChangeOrderStateCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStateCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateGetKitchenQueueQueryHandler() queries.GetKitchenQueueQueryHandler {
	return queries.NewGetKitchenQueueQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetReadyDeliveriesQueryHandler() queries.GetReadyDeliveriesQueryHandler {
	return queries.NewGetReadyDeliveriesQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.uowFactory)
}

// SeedDemoData registers a small roster so the service is usable right after
// startup: two kitchen staff members and two couriers.
func (c *CompositionRoot) SeedDemoData(ctx context.Context) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffMembers := [][2]string{
		{"Dominique", "Italian"},
		{"Camille", "Grill"},
	}
	for _, member := range staffMembers {
		staff, err := actor.NewKitchenStaff(member[0], member[1])
		if err != nil {
			return err
		}
		if err = uow.KitchenStaffRepository().Add(ctx, staff); err != nil {
			return err
		}
	}

	couriers := [][3]string{
		{"Sam", "bike", "north campus"},
		{"Noa", "scooter", "south campus"},
	}
	for _, entry := range couriers {
		courier, err := actor.NewCourier(entry[0], entry[1], entry[2])
		if err != nil {
			return err
		}
		if err = uow.CourierRepository().Add(ctx, courier); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
