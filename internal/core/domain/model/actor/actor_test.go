package actor_test

import (
	"testing"

	"campuseats/internal/core/domain/model/actor"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/menu"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/domain/model/payment"
	"campuseats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func dish(t *testing.T, price string) *menu.Dish {
	t.Helper()
	d, err := menu.NewDish("Lasagna", "homemade", money(t, price), "main")
	require.NoError(t, err)
	return d
}

func customer(t *testing.T) *actor.Customer {
	t.Helper()
	c, err := actor.NewCustomer("Alex", "12 Rue Galilee")
	require.NoError(t, err)
	return c
}

var orderNumbers = order.NewNumberSequence()

func placeOrder(t *testing.T, c *actor.Customer, price string, mode order.DeliveryMode) *order.Order {
	t.Helper()
	o, err := order.NewOrder(orderNumbers.Next(), c, dish(t, price), 1, mode)
	require.NoError(t, err)
	require.NoError(t, o.Subscribe(c))
	return o
}

func payOrder(t *testing.T, o *order.Order) {
	t.Helper()
	require.NoError(t, o.AttachPayment(payment.NewCashPayment(money(t, "500.00"))))
	require.NoError(t, o.Pay())
}

func TestCustomer(t *testing.T) {
	t.Run("should require a name", func(t *testing.T) {
		_, err := actor.NewCustomer("", "12 Rue Galilee")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should activate and deactivate student status", func(t *testing.T) {
		c := customer(t)

		require.NoError(t, c.ActivateStudentStatus("S-2044"))
		assert.True(t, c.IsStudent())
		assert.Equal(t, "S-2044", c.StudentNumber())

		c.DeactivateStudentStatus()
		assert.False(t, c.IsStudent())
		assert.Empty(t, c.StudentNumber())
	})

	t.Run("should reject an empty student number", func(t *testing.T) {
		c := customer(t)

		err := c.ActivateStudentStatus("")

		require.Error(t, err)
		assert.False(t, c.IsStudent())
	})

	t.Run("should pay an order from a topped-up campus account", func(t *testing.T) {
		c := customer(t)
		c.Account().TopUp(money(t, "15.00"))
		o := placeOrder(t, c, "11.00", order.ModeOnSite)

		require.NoError(t, o.AttachPayment(c.Account()))
		require.NoError(t, o.Pay())

		assert.Equal(t, "4.00", c.Account().Balance().String())
	})

	t.Run("should collect notifications on order changes", func(t *testing.T) {
		c := customer(t)
		o := placeOrder(t, c, "11.00", order.ModeOnSite)

		payOrder(t, o)

		notifications := c.Notifications()
		require.NotEmpty(t, notifications)
		assert.Contains(t, notifications[len(notifications)-1], o.Number())
		assert.Contains(t, notifications[len(notifications)-1], "IN_PREPARATION")
	})

	t.Run("should sum spent totals excluding cancelled orders", func(t *testing.T) {
		c := customer(t)

		paid := placeOrder(t, c, "11.00", order.ModeOnSite)
		payOrder(t, paid)

		cancelled := placeOrder(t, c, "9.00", order.ModeOnSite)
		payOrder(t, cancelled)
		require.NoError(t, cancelled.Cancel())

		unpaid := placeOrder(t, c, "7.00", order.ModeOnSite)
		require.NoError(t, unpaid.AddExtra("Cola", money(t, "2.00"), menu.KindDrink, 1))

		assert.Equal(t, "11.00", c.TotalSpent().String())
	})

	t.Run("should list in-flight orders only", func(t *testing.T) {
		c := customer(t)

		inFlight := placeOrder(t, c, "11.00", order.ModeOnSite)
		payOrder(t, inFlight)

		done := placeOrder(t, c, "9.00", order.ModeOnSite)
		payOrder(t, done)
		require.NoError(t, done.ChangeState(order.StatusReady))
		require.NoError(t, done.ChangeState(order.StatusServed))

		current := c.InFlightOrders()
		require.Len(t, current, 1)
		assert.True(t, current[0].IsEqual(inFlight))
	})
}

func TestKitchenStaff(t *testing.T) {
	t.Run("should queue paid orders and release them when ready", func(t *testing.T) {
		staff, err := actor.NewKitchenStaff("Dominique", "Italian")
		require.NoError(t, err)
		c := customer(t)
		o := placeOrder(t, c, "11.00", order.ModeOnSite)
		require.NoError(t, o.Subscribe(staff))

		payOrder(t, o)

		require.Len(t, staff.Worklist(), 1)
		assert.Equal(t, 0, staff.PreparedCount())

		require.NoError(t, staff.MarkReady(o))

		assert.Empty(t, staff.Worklist())
		assert.Equal(t, 1, staff.PreparedCount())
	})

	t.Run("should drop a cancelled order from the worklist without counting it", func(t *testing.T) {
		staff, err := actor.NewKitchenStaff("Dominique", "Italian")
		require.NoError(t, err)
		c := customer(t)
		o := placeOrder(t, c, "11.00", order.ModeOnSite)
		require.NoError(t, o.Subscribe(staff))
		payOrder(t, o)

		require.NoError(t, o.Cancel())

		assert.Empty(t, staff.Worklist())
		assert.Equal(t, 0, staff.PreparedCount())
	})

	t.Run("should not queue the same order twice", func(t *testing.T) {
		staff, err := actor.NewKitchenStaff("Dominique", "")
		require.NoError(t, err)
		c := customer(t)
		o := placeOrder(t, c, "11.00", order.ModeOnSite)
		require.NoError(t, o.Subscribe(staff))

		staff.OrderChanged(o)
		staff.OrderChanged(o)

		assert.Len(t, staff.Worklist(), 1)
	})
}

func courier(t *testing.T) *actor.Courier {
	t.Helper()
	c, err := actor.NewCourier("Sam", "bike", "north campus")
	require.NoError(t, err)
	return c
}

func readyDeliveryOrder(t *testing.T, c *actor.Customer) *order.Order {
	t.Helper()
	o := placeOrder(t, c, "25.00", order.ModeDelivery)
	payOrder(t, o)
	require.NoError(t, o.ChangeState(order.StatusReady))
	return o
}

func TestCourier(t *testing.T) {
	t.Run("should start as an available rookie with capacity two", func(t *testing.T) {
		sam := courier(t)

		assert.Equal(t, actor.LevelRookie, sam.Level())
		assert.Equal(t, 2, sam.Level().Capacity())
		assert.True(t, sam.Available())
	})

	t.Run("should receive offers for ready delivery orders", func(t *testing.T) {
		sam := courier(t)
		c := customer(t)
		o := placeOrder(t, c, "25.00", order.ModeDelivery)
		require.NoError(t, o.Subscribe(sam))
		payOrder(t, o)

		require.NoError(t, o.ChangeState(order.StatusReady))

		require.Len(t, sam.Offers(), 1)
		assert.True(t, sam.Offers()[0].IsEqual(o))
	})

	t.Run("should claim an offer and carry the delivery", func(t *testing.T) {
		sam := courier(t)
		c := customer(t)
		o := readyDeliveryOrder(t, c)

		require.NoError(t, sam.Claim(o))

		assert.Equal(t, order.StatusEnRoute, o.Status())
		assert.Equal(t, sam.ID(), o.Courier().ID())
		require.Len(t, sam.ClaimedOrders(), 1)
		assert.Empty(t, sam.Offers())
	})

	t.Run("should complete a delivery and update statistics", func(t *testing.T) {
		sam := courier(t)
		c := customer(t)
		o := readyDeliveryOrder(t, c)
		require.NoError(t, sam.Claim(o))

		require.NoError(t, sam.CompleteDelivery(o))

		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, 1, sam.CompletedDeliveries())
		assert.Empty(t, sam.ClaimedOrders())
	})

	t.Run("should become unavailable at capacity", func(t *testing.T) {
		sam := courier(t)
		c := customer(t)

		require.NoError(t, sam.Claim(readyDeliveryOrder(t, c)))
		require.NoError(t, sam.Claim(readyDeliveryOrder(t, c)))

		assert.False(t, sam.Available())

		err := sam.Claim(readyDeliveryOrder(t, c))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should not receive offers while paused", func(t *testing.T) {
		sam := courier(t)
		c := customer(t)
		o := placeOrder(t, c, "25.00", order.ModeDelivery)
		require.NoError(t, o.Subscribe(sam))
		payOrder(t, o)

		sam.Pause()
		require.NoError(t, o.ChangeState(order.StatusReady))

		assert.Empty(t, sam.Offers())
		assert.False(t, sam.Available())

		sam.Resume()
		assert.True(t, sam.Available())
	})

	t.Run("should report a problem and free the slot", func(t *testing.T) {
		sam := courier(t)
		c := customer(t)
		o := readyDeliveryOrder(t, c)
		require.NoError(t, sam.Claim(o))

		require.NoError(t, sam.ReportProblem(o, "address unreachable"))

		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Contains(t, o.Comments(), "address unreachable")
		assert.Empty(t, sam.ClaimedOrders())
		assert.Equal(t, 0, sam.CompletedDeliveries())
	})

	t.Run("should level up with completed deliveries", func(t *testing.T) {
		sam := courier(t)
		c := customer(t)

		for i := 0; i < 50; i++ {
			o := readyDeliveryOrder(t, c)
			require.NoError(t, sam.Claim(o))
			require.NoError(t, sam.CompleteDelivery(o))
		}
		assert.Equal(t, actor.LevelConfirmed, sam.Level())
		assert.Equal(t, 3, sam.Level().Capacity())

		for i := 0; i < 50; i++ {
			o := readyDeliveryOrder(t, c)
			require.NoError(t, sam.Claim(o))
			require.NoError(t, sam.CompleteDelivery(o))
		}
		assert.Equal(t, actor.LevelExpert, sam.Level())
		assert.Equal(t, 4, sam.Level().Capacity())
	})
}
