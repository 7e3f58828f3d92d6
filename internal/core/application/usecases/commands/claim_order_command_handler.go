package commands

import (
	"context"
	"fmt"

	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/domain/services"
)

// ClaimOrderCommandHandler assigns a pending order to the first courier who asks for it.
//
// The assignment is a compare-and-swap on the pending status. Of any number of couriers
// claiming the same order at once exactly one succeeds; the others get
// errs.ErrAlreadyAssigned, or errs.ErrNotPending if the order was canceled.
//
// Example:
//
//	cmd, _ := NewClaimOrderCommand(orderID, courierID)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrAlreadyAssigned):
//	    // someone else was faster
//	case err != nil:
//	    return err
//	}
type ClaimOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.OrderDispatcher
}

func NewClaimOrderCommandHandler(uowFactory DispatchUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle claims the order. A courier repeating a claim it already won gets the order back.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
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

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	c, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if o.Status() == order.Assigned && o.IsAssignedTo(c.ID()) {
		return o, nil
	}

	if err = h.dispatcher.Dispatch(o, c); err != nil {
		return nil, err
	}

	ok, err := orderRepo.UpdateIfStatus(ctx, o, order.Pending)
	if err != nil {
		return nil, err
	}
	if !ok {
		return h.lostRace(ctx, orderRepo, o)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// lostRace explains why the compare-and-swap failed by replaying the claim on the
// current state of the order. A concurrent claim by the same courier counts as won.
func (h ClaimOrderCommandHandler) lostRace(
	ctx context.Context,
	orderRepo orderGetter,
	claimed *order.Order,
) (*order.Order, error) {
	current, err := orderRepo.Get(ctx, claimed.ID())
	if err != nil {
		return nil, err
	}

	courierID := *claimed.Courier()
	if current.Status() == order.Assigned && current.IsAssignedTo(courierID) {
		return current, nil
	}

	if err = current.Assign(courierID); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("order %s changed concurrently, retry the claim", claimed.ID())
}
