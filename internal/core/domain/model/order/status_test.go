package order_test

import (
	"testing"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		statuses := []order.Status{
			order.StatusNew,
			order.StatusInPreparation,
			order.StatusReady,
			order.StatusEnRoute,
			order.StatusDelivered,
			order.StatusServed,
			order.StatusCancelled,
		}

		for _, status := range statuses {
			assert.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusUnknown, order.Status(42), order.Status(-1)} {
			err := status.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatusString(t *testing.T) {
	t.Run("should render lifecycle labels", func(t *testing.T) {
		assert.Equal(t, "NEW", order.StatusNew.String())
		assert.Equal(t, "IN_PREPARATION", order.StatusInPreparation.String())
		assert.Equal(t, "READY", order.StatusReady.String())
		assert.Equal(t, "EN_ROUTE", order.StatusEnRoute.String())
		assert.Equal(t, "DELIVERED", order.StatusDelivered.String())
		assert.Equal(t, "SERVED", order.StatusServed.String())
		assert.Equal(t, "CANCELLED", order.StatusCancelled.String())
		assert.Equal(t, "UNKNOWN", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every defined status", func(t *testing.T) {
		statuses := []order.Status{
			order.StatusNew,
			order.StatusInPreparation,
			order.StatusReady,
			order.StatusEnRoute,
			order.StatusDelivered,
			order.StatusServed,
			order.StatusCancelled,
		}

		for _, status := range statuses {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown labels", func(t *testing.T) {
		_, err := order.StatusFromString("SHIPPED")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusCanTransitionTo(t *testing.T) {
	t.Run("should allow exactly the transitions of the table", func(t *testing.T) {
		allowed := map[order.Status][]order.Status{
			order.StatusNew:           {order.StatusInPreparation, order.StatusCancelled},
			order.StatusInPreparation: {order.StatusReady, order.StatusCancelled},
			order.StatusReady:         {order.StatusEnRoute, order.StatusServed, order.StatusCancelled},
			order.StatusEnRoute:       {order.StatusDelivered, order.StatusCancelled},
			order.StatusDelivered:     {},
			order.StatusServed:        {},
			order.StatusCancelled:     {},
		}

		all := []order.Status{
			order.StatusNew,
			order.StatusInPreparation,
			order.StatusReady,
			order.StatusEnRoute,
			order.StatusDelivered,
			order.StatusServed,
			order.StatusCancelled,
		}

		for from, targets := range allowed {
			permitted := make(map[order.Status]bool, len(targets))
			for _, to := range targets {
				permitted[to] = true
			}
			for _, to := range all {
				assert.Equal(t, permitted[to], from.CanTransitionTo(to),
					"%s -> %s", from, to)
			}
		}
	})

	t.Run("should mark terminal statuses", func(t *testing.T) {
		assert.True(t, order.StatusDelivered.IsTerminal())
		assert.True(t, order.StatusServed.IsTerminal())
		assert.True(t, order.StatusCancelled.IsTerminal())
		assert.False(t, order.StatusNew.IsTerminal())
		assert.False(t, order.StatusReady.IsTerminal())
	})
}
