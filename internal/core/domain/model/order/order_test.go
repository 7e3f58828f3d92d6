package order_test

import (
	"testing"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unitPrice = kernel.MoneyFromInt(12000)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), 3, "2nd floor", unitPrice, time.Now())
	require.NoError(t, err)
	return o
}

func newDeliveringOrder(t *testing.T, courierID kernel.UUID) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	require.NoError(t, o.Assign(courierID))
	require.NoError(t, o.StartTransit(courierID))
	return o
}

func TestNewOrder(t *testing.T) {
	id := kernel.NewUUID()
	clientID := kernel.NewUUID()
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should create pending order priced per bottle", func(t *testing.T) {
		o, err := order.NewOrder(id, clientID, 3, "2nd floor", unitPrice, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.ClientID().IsEqual(clientID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 3, o.BottleCount())
		assert.Equal(t, "2nd floor", o.Note())
		assert.True(t, o.DebtChange().Equal(kernel.MoneyFromInt(36000)))
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.DeliveredAt())
		assert.Nil(t, o.PaymentAmount())
		assert.Equal(t, order.PaymentNone, o.PaymentType())
	})

	t.Run("should reject non-positive bottle count", func(t *testing.T) {
		o, err := order.NewOrder(id, clientID, 0, "", unitPrice, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, -1, "", kernel.ZeroMoney(), createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "client id")
		assert.Contains(t, err.Error(), "bottle count is invalid")
		assert.Contains(t, err.Error(), "unit price is invalid")
		assert.Equal(t, errs.CodeValidation, errs.CodeOf(err))
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())

		var nilOrder *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	})
}

func TestOrder_Assign(t *testing.T) {
	courierA := kernel.NewUUID()
	courierB := kernel.NewUUID()

	t.Run("pending order is assigned", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Assign(courierA))

		assert.Equal(t, order.Assigned, o.Status())
		assert.True(t, o.IsAssignedTo(courierA))
		assert.False(t, o.IsAssignedTo(courierB))
	})

	t.Run("second claim is already assigned", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(courierA))

		err := o.Assign(courierB)

		require.ErrorIs(t, err, errs.ErrAlreadyAssigned)
		assert.True(t, o.IsAssignedTo(courierA))
	})

	t.Run("delivering and done orders are already assigned", func(t *testing.T) {
		o := newDeliveringOrder(t, courierA)
		require.ErrorIs(t, o.Assign(courierB), errs.ErrAlreadyAssigned)

		require.NoError(t, o.ConfirmDelivery(courierA, order.PaymentCash, kernel.MoneyFromInt(36000), time.Now()))
		require.ErrorIs(t, o.Assign(courierB), errs.ErrAlreadyAssigned)
	})

	t.Run("canceled order is not pending", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		err := o.Assign(courierA)

		require.ErrorIs(t, err, errs.ErrNotPending)
		assert.Nil(t, o.Courier())
	})

	t.Run("invalid courier id", func(t *testing.T) {
		o := newPendingOrder(t)

		require.ErrorIs(t, o.Assign(kernel.UUID{}), errs.ErrValueIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_StartTransit(t *testing.T) {
	courierA := kernel.NewUUID()
	courierB := kernel.NewUUID()

	t.Run("assignee starts transit", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(courierA))

		require.NoError(t, o.StartTransit(courierA))
		assert.Equal(t, order.Delivering, o.Status())
	})

	t.Run("repeating is a no-op", func(t *testing.T) {
		o := newDeliveringOrder(t, courierA)

		require.NoError(t, o.StartTransit(courierA))
		assert.Equal(t, order.Delivering, o.Status())
	})

	t.Run("other courier is forbidden", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(courierA))

		require.ErrorIs(t, o.StartTransit(courierB), errs.ErrForbidden)
		assert.Equal(t, order.Assigned, o.Status())
	})

	t.Run("unassigned order is forbidden", func(t *testing.T) {
		o := newPendingOrder(t)

		require.ErrorIs(t, o.StartTransit(courierA), errs.ErrForbidden)
	})

	t.Run("done order is invalid state", func(t *testing.T) {
		o := newDeliveringOrder(t, courierA)
		require.NoError(t, o.ConfirmDelivery(courierA, order.PaymentClick, kernel.MoneyFromInt(10), time.Now()))

		require.ErrorIs(t, o.StartTransit(courierA), errs.ErrInvalidState)
	})
}

func TestOrder_ConfirmDelivery(t *testing.T) {
	courierA := kernel.NewUUID()
	deliveredAt := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	t.Run("settles delivering order", func(t *testing.T) {
		o := newDeliveringOrder(t, courierA)

		err := o.ConfirmDelivery(courierA, order.PaymentDebt, kernel.MoneyFromInt(36000), deliveredAt)

		require.NoError(t, err)
		assert.Equal(t, order.Done, o.Status())
		assert.Equal(t, order.PaymentDebt, o.PaymentType())
		require.NotNil(t, o.PaymentAmount())
		assert.True(t, o.PaymentAmount().Equal(kernel.MoneyFromInt(36000)))
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
	})

	t.Run("second confirmation keeps first settlement", func(t *testing.T) {
		o := newDeliveringOrder(t, courierA)
		require.NoError(t, o.ConfirmDelivery(courierA, order.PaymentDebt, kernel.MoneyFromInt(36000), deliveredAt))

		err := o.ConfirmDelivery(courierA, order.PaymentCash, kernel.MoneyFromInt(1), deliveredAt.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, order.PaymentDebt, o.PaymentType())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
	})

	t.Run("other courier is forbidden even when done", func(t *testing.T) {
		o := newDeliveringOrder(t, courierA)
		require.NoError(t, o.ConfirmDelivery(courierA, order.PaymentDebt, kernel.MoneyFromInt(36000), deliveredAt))

		err := o.ConfirmDelivery(kernel.NewUUID(), order.PaymentDebt, kernel.MoneyFromInt(36000), deliveredAt)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("assigned order cannot skip transit", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(courierA))

		err := o.ConfirmDelivery(courierA, order.PaymentCash, kernel.MoneyFromInt(36000), deliveredAt)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Assigned, o.Status())
	})

	t.Run("payment must be valid", func(t *testing.T) {
		o := newDeliveringOrder(t, courierA)

		err := o.ConfirmDelivery(courierA, order.PaymentType("barter"), kernel.MoneyFromInt(-5), deliveredAt)

		require.Error(t, err)
		assert.Equal(t, errs.CodeValidation, errs.CodeOf(err))
		assert.Contains(t, err.Error(), "barter")
		assert.Contains(t, err.Error(), "payment amount is invalid")
		assert.Equal(t, order.Delivering, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order is canceled", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Canceled, o.Status())
	})

	t.Run("claimed order cannot be canceled", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidState)
	})

	t.Run("canceled order cannot be canceled again", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidState)
	})
}

func TestOrder_SettlementAmount(t *testing.T) {
	courierA := kernel.NewUUID()
	amount := kernel.MoneyFromInt(36000)

	tests := []struct {
		paymentType order.PaymentType
		want        kernel.Money
	}{
		{order.PaymentDebt, amount},
		{order.PaymentCash, amount.Neg()},
		{order.PaymentClick, amount.Neg()},
	}

	for _, tt := range tests {
		t.Run(tt.paymentType.String(), func(t *testing.T) {
			o := newDeliveringOrder(t, courierA)
			require.NoError(t, o.ConfirmDelivery(courierA, tt.paymentType, amount, time.Now()))

			got, err := o.SettlementAmount()

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	t.Run("unsettled order", func(t *testing.T) {
		_, err := newDeliveringOrder(t, courierA).SettlementAmount()
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrder_IsDuplicateOf(t *testing.T) {
	clientID := kernel.NewUUID()
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(kernel.NewUUID(), clientID, 2, "gate", unitPrice, createdAt)
	require.NoError(t, err)

	assert.True(t, o.IsDuplicateOf(clientID, 2, "gate", createdAt.Add(5*time.Second)))
	assert.True(t, o.IsDuplicateOf(clientID, 2, "gate", createdAt.Add(order.DebounceWindow)))
	assert.False(t, o.IsDuplicateOf(clientID, 2, "gate", createdAt.Add(11*time.Second)))
	assert.False(t, o.IsDuplicateOf(clientID, 3, "gate", createdAt.Add(time.Second)))
	assert.False(t, o.IsDuplicateOf(clientID, 2, "door", createdAt.Add(time.Second)))
	assert.False(t, o.IsDuplicateOf(kernel.NewUUID(), 2, "gate", createdAt.Add(time.Second)))

	require.NoError(t, o.Assign(kernel.NewUUID()))
	assert.False(t, o.IsDuplicateOf(clientID, 2, "gate", createdAt.Add(time.Second)))
}

func TestRestoreOrder(t *testing.T) {
	courierID := kernel.NewUUID()
	amount := kernel.MoneyFromInt(24000)
	deliveredAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	base := func() order.State {
		return order.State{
			ID:          kernel.NewUUID(),
			ClientID:    kernel.NewUUID(),
			Status:      order.Pending,
			BottleCount: 2,
			DebtChange:  amount,
			CreatedAt:   deliveredAt.Add(-time.Hour),
		}
	}

	t.Run("restores done order", func(t *testing.T) {
		s := base()
		s.Status = order.Done
		s.CourierID = &courierID
		s.DeliveredAt = &deliveredAt
		s.PaymentType = order.PaymentCash
		s.PaymentAmount = &amount

		o, err := order.RestoreOrder(s)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Done, o.Status())
		assert.True(t, o.IsAssignedTo(courierID))
	})

	invalid := map[string]func(s *order.State){
		"pending with courier":     func(s *order.State) { s.CourierID = &courierID },
		"assigned without courier": func(s *order.State) { s.Status = order.Assigned },
		"canceled with courier": func(s *order.State) {
			s.Status = order.Canceled
			s.CourierID = &courierID
		},
		"delivering with payment": func(s *order.State) {
			s.Status = order.Delivering
			s.CourierID = &courierID
			s.PaymentType = order.PaymentCash
			s.PaymentAmount = &amount
		},
		"done without delivery time": func(s *order.State) {
			s.Status = order.Done
			s.CourierID = &courierID
			s.PaymentType = order.PaymentCash
			s.PaymentAmount = &amount
		},
		"pending with delivery time": func(s *order.State) { s.DeliveredAt = &deliveredAt },
		"unknown status":             func(s *order.State) { s.Status = order.Unknown },
		"zero bottles":               func(s *order.State) { s.BottleCount = 0 },
	}

	for name, mutate := range invalid {
		t.Run(name, func(t *testing.T) {
			s := base()
			mutate(&s)

			o, err := order.RestoreOrder(s)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Nil(t, o)
		})
	}
}
