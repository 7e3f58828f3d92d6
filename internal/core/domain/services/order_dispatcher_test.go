package services_test

import (
	"testing"
	"time"

	"waterdelivery/internal/core/domain/model/courier"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/domain/services"
	"waterdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), 3, "", kernel.MoneyFromInt(12000), time.Now())
	require.NoError(t, err)
	return o
}

func TestOrderDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()

	t.Run("should assign pending order to active courier", func(t *testing.T) {
		o := newOrder(t)
		c, _ := courier.NewCourier(kernel.NewUUID(), "Alice", "+1")

		require.NoError(t, dispatcher.Dispatch(o, c))

		assert.Equal(t, order.Assigned, o.Status())
		assert.True(t, o.IsAssignedTo(c.ID()))
	})

	t.Run("should refuse inactive courier", func(t *testing.T) {
		o := newOrder(t)
		c, _ := courier.RestoreCourier(kernel.NewUUID(), "Alice", "+1", false)

		require.ErrorIs(t, dispatcher.Dispatch(o, c), errs.ErrForbidden)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("loser of a claim sees already assigned", func(t *testing.T) {
		o := newOrder(t)
		a, _ := courier.NewCourier(kernel.NewUUID(), "Alice", "+1")
		b, _ := courier.NewCourier(kernel.NewUUID(), "Bob", "+2")
		require.NoError(t, dispatcher.Dispatch(o, a))

		require.ErrorIs(t, dispatcher.Dispatch(o, b), errs.ErrAlreadyAssigned)
		assert.True(t, o.IsAssignedTo(a.ID()))
	})

	t.Run("should validate aggregates", func(t *testing.T) {
		c, _ := courier.NewCourier(kernel.NewUUID(), "Alice", "+1")

		require.ErrorIs(t, dispatcher.Dispatch(&order.Order{}, c), order.ErrOrderIsNotConstructed)
		require.ErrorIs(t, dispatcher.Dispatch(newOrder(t), nil), courier.ErrCourierIsNotConstructed)
	})
}
