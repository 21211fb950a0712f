package queries_test

import (
	"context"
	"testing"

	"campuseats/internal/adapters/out/inmem"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/actor"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/menu"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/domain/model/payment"
	"campuseats/internal/core/ports"
	"campuseats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uowFactory struct{ store *inmem.Store }

func (f uowFactory) Create() ports.UnitOfWork { return inmem.NewUnitOfWork(f.store) }

var orderNumbers = order.NewNumberSequence()

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func storeWithOrder(t *testing.T, mode order.DeliveryMode, pay bool, targets ...order.Status) (*inmem.Store, string) {
	t.Helper()
	customer, err := actor.NewCustomer("Alex", "12 Rue Galilee")
	require.NoError(t, err)
	item, err := menu.NewDish("Lasagna", "homemade", money(t, "25.00"), "main")
	require.NoError(t, err)
	o, err := order.NewOrder(orderNumbers.Next(), customer, item, 1, mode)
	require.NoError(t, err)
	if pay {
		require.NoError(t, o.AttachPayment(payment.NewCashPayment(money(t, "30.00"))))
		require.NoError(t, o.Pay())
	}
	for _, target := range targets {
		require.NoError(t, o.ChangeState(target))
	}

	store := inmem.NewStore()
	ctx := context.Background()
	uow := inmem.NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.CustomerRepository().Add(ctx, customer))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Commit(ctx))
	return store, o.Number()
}

func TestGetKitchenQueueQueryHandler(t *testing.T) {
	t.Run("should list orders waiting for the kitchen", func(t *testing.T) {
		store, number := storeWithOrder(t, order.ModeOnSite, true)
		handler := queries.NewGetKitchenQueueQueryHandler(uowFactory{store})

		queue, err := handler.Handle(context.Background(), queries.NewGetKitchenQueueQuery())

		require.NoError(t, err)
		require.Len(t, queue, 1)
		assert.Equal(t, number, queue[0].Number)
		assert.Equal(t, "IN_PREPARATION", queue[0].Status)
		assert.True(t, queue[0].Paid)
	})

	t.Run("should exclude orders past preparation", func(t *testing.T) {
		store, _ := storeWithOrder(t, order.ModeOnSite, true, order.StatusReady)
		handler := queries.NewGetKitchenQueueQueryHandler(uowFactory{store})

		queue, err := handler.Handle(context.Background(), queries.NewGetKitchenQueueQuery())

		require.NoError(t, err)
		assert.Empty(t, queue)
	})
}

func TestGetReadyDeliveriesQueryHandler(t *testing.T) {
	t.Run("should list unassigned ready deliveries", func(t *testing.T) {
		store, number := storeWithOrder(t, order.ModeDelivery, true, order.StatusReady)
		handler := queries.NewGetReadyDeliveriesQueryHandler(uowFactory{store})

		deliveries, err := handler.Handle(context.Background(), queries.NewGetReadyDeliveriesQuery())

		require.NoError(t, err)
		require.Len(t, deliveries, 1)
		assert.Equal(t, number, deliveries[0].Number)
		assert.Equal(t, "12 Rue Galilee", deliveries[0].Address)
		assert.False(t, deliveries[0].Assigned)
	})

	t.Run("should exclude ready on-site orders", func(t *testing.T) {
		store, _ := storeWithOrder(t, order.ModeOnSite, true, order.StatusReady)
		handler := queries.NewGetReadyDeliveriesQueryHandler(uowFactory{store})

		deliveries, err := handler.Handle(context.Background(), queries.NewGetReadyDeliveriesQuery())

		require.NoError(t, err)
		assert.Empty(t, deliveries)
	})
}

func TestGetOrderDetailsQueryHandler(t *testing.T) {
	t.Run("should project the full order view", func(t *testing.T) {
		store, number := storeWithOrder(t, order.ModeDelivery, true)
		handler := queries.NewGetOrderDetailsQueryHandler(uowFactory{store})
		query, err := queries.NewGetOrderDetailsQuery(number)
		require.NoError(t, err)

		details, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		assert.Equal(t, number, details.Number)
		assert.Equal(t, "IN_PREPARATION", details.Status)
		assert.Equal(t, "DELIVERY", details.Mode)
		assert.Equal(t, "25.00", details.TotalBeforeReductions)
		assert.Equal(t, "25.00", details.Total)
		assert.True(t, details.Paid)
		require.Len(t, details.Lines, 1)
		assert.Equal(t, "Lasagna", details.Lines[0].Name)
		assert.NotEmpty(t, details.Events)
	})

	t.Run("should fail for an unknown number", func(t *testing.T) {
		store, _ := storeWithOrder(t, order.ModeOnSite, false)
		handler := queries.NewGetOrderDetailsQueryHandler(uowFactory{store})
		query, err := queries.NewGetOrderDetailsQuery("ORD-9999")
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), query)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject an empty order number", func(t *testing.T) {
		_, err := queries.NewGetOrderDetailsQuery("")

		assert.ErrorIs(t, err, queries.ErrOrderNumberIsRequired)
	})
}
