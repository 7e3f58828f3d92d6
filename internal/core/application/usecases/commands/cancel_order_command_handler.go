package commands

import (
	"context"
	"fmt"

	"waterdelivery/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels pending orders. A claim that commits first wins and
// the cancellation fails with errs.ErrInvalidState.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Cancel(); err != nil {
		return nil, err
	}

	ok, err := orderRepo.UpdateIfStatus(ctx, o, order.Pending)
	if err != nil {
		return nil, err
	}
	if !ok {
		current, getErr := orderRepo.Get(ctx, o.ID())
		if getErr != nil {
			return nil, getErr
		}
		if cancelErr := current.Cancel(); cancelErr != nil {
			return nil, cancelErr
		}
		return nil, fmt.Errorf("order %s changed concurrently, retry the cancellation", o.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
