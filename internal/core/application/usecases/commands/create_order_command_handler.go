package commands

import (
	"context"
	"errors"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/ports"
	"waterdelivery/internal/pkg/errs"
)

// CreateOrderCommandHandler places orders for clients.
//
// The client row is locked for the whole transaction, so two identical submissions that
// race each other are serialized and the second one finds the first as a duplicate.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, kernel.MoneyFromInt(12000))
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), clientID, 3, "", nil)
//
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// o may be an earlier pending order when the request repeated it within order.DebounceWindow
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	notifier   ports.Notifier
	unitPrice  kernel.Money
}

// NewCreateOrderCommandHandler creates a handler that prices every bottle at unitPrice.
func NewCreateOrderCommandHandler(
	uowFactory OrderingUoWFactory,
	notifier ports.Notifier,
	unitPrice kernel.Money,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		unitPrice:  unitPrice,
	}
}

// Handle creates a pending order, or returns the client's identical pending order placed
// within the debounce window. Administrators are notified only about new orders.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	clientRepo := uow.ClientRepository()
	orderRepo := uow.OrderRepository()

	c, err := clientRepo.GetForUpdate(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}

	duplicate, err := orderRepo.FindPendingDuplicate(
		ctx, c.ID(), cmd.BottleCount(), cmd.Note(), now.Add(-order.DebounceWindow),
	)
	if err == nil {
		return duplicate, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), c.ID(), cmd.BottleCount(), cmd.Note(), h.unitPrice, now)
	if err != nil {
		return nil, err
	}

	c.TouchLastOrder(now)
	if location := cmd.Location(); location != nil {
		if err = c.Relocate(*location); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = clientRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, newOrderNotification(c.Name(), o))
	return o, nil
}
