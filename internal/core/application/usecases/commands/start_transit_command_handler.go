package commands

import (
	"context"
	"fmt"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
)

// StartTransitCommandHandler moves an assigned order to delivering.
// Only the assignee may do it; repeating the call while delivering changes nothing.
type StartTransitCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewStartTransitCommandHandler(uowFactory OrderUoWFactory) StartTransitCommandHandler {
	return StartTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h StartTransitCommandHandler) Handle(ctx context.Context, cmd StartTransitCommand) (*order.Order, error) {
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

	wasDelivering := o.Status() == order.Delivering
	if err = o.StartTransit(cmd.CourierID()); err != nil {
		return nil, err
	}
	if wasDelivering {
		return o, nil
	}

	ok, err := orderRepo.UpdateIfStatus(ctx, o, order.Assigned)
	if err != nil {
		return nil, err
	}
	if !ok {
		return h.lostRace(ctx, orderRepo, o.ID(), cmd.CourierID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func (h StartTransitCommandHandler) lostRace(
	ctx context.Context,
	orderRepo orderGetter,
	orderID kernel.UUID,
	courierID kernel.UUID,
) (*order.Order, error) {
	current, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	wasDelivering := current.Status() == order.Delivering
	if err = current.StartTransit(courierID); err != nil {
		return nil, err
	}
	if wasDelivering {
		return current, nil
	}

	return nil, fmt.Errorf("order %s changed concurrently, retry starting transit", orderID)
}
