package commands_test

import (
	"testing"

	"waterdelivery/internal/core/application/usecases/commands"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := orderInStatus(t, kernel.NewUUID(), order.Pending, kernel.UUID{})

	orderRepo := new(MockOrderRepository)
	uow, factory := setupOrderUoW(t, orderRepo)
	mock.InOrder(
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("UpdateIfStatus", ctx, o, order.Pending).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCancelOrderCommand(o.ID())
	require.NoError(t, err)
	got, err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Canceled, got.Status())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotPending(t *testing.T) {
	ctx := t.Context()
	o := orderInStatus(t, kernel.NewUUID(), order.Assigned, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	_, factory := setupOrderUoW(t, orderRepo)
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()

	cmd, _ := commands.NewCancelOrderCommand(o.ID())
	_, err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_ClaimedConcurrently(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	stale := orderInStatus(t, clientID, order.Pending, kernel.UUID{})
	current := orderInStatus(t, clientID, order.Assigned, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	uow, factory := setupOrderUoW(t, orderRepo)
	orderRepo.On("Get", ctx, stale.ID()).Return(stale, nil).Once()
	orderRepo.On("UpdateIfStatus", ctx, stale, order.Pending).Return(false, nil).Once()
	orderRepo.On("Get", ctx, stale.ID()).Return(current, nil).Once()

	cmd, _ := commands.NewCancelOrderCommand(stale.ID())
	_, err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	orderRepo := new(MockOrderRepository)
	_, factory := setupOrderUoW(t, orderRepo)
	orderRepo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()

	cmd, _ := commands.NewCancelOrderCommand(orderID)
	_, err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
