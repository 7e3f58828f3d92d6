package commands

import (
	"context"
	"fmt"
	"time"

	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/domain/services"
	"waterdelivery/internal/core/ports"
)

// ConfirmDeliveryCommandHandler settles a delivered order.
//
// The delivering → done transition and the client's ledger entry commit in one transaction:
// either both are stored or neither is. Confirming a done order again returns it unchanged
// and posts nothing.
//
// Example:
//
//	handler := NewConfirmDeliveryCommandHandler(uowFactory, notifier)
//	cmd, _ := NewConfirmDeliveryCommand(orderID, courierID, order.PaymentCash, kernel.MoneyFromInt(24000))
//	o, err := handler.Handle(ctx, cmd)
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	ledger     services.Ledger
}

func NewConfirmDeliveryCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		ledger:     services.NewLedger(),
	}
}

func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	clientRepo := uow.ClientRepository()
	courierRepo := uow.CourierRepository()
	ledgerRepo := uow.LedgerRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	wasDone := o.Status() == order.Done
	if err = o.ConfirmDelivery(cmd.CourierID(), cmd.PaymentType(), cmd.PaymentAmount(), now); err != nil {
		return nil, err
	}
	if wasDone {
		return o, nil
	}

	ok, err := orderRepo.UpdateIfStatus(ctx, o, order.Delivering)
	if err != nil {
		return nil, err
	}
	if !ok {
		return h.lostRace(ctx, orderRepo, cmd, now)
	}

	c, err := clientRepo.GetForUpdate(ctx, o.ClientID())
	if err != nil {
		return nil, err
	}

	entry, err := h.ledger.Settle(o, c, now)
	if err != nil {
		return nil, err
	}

	if entry != nil {
		if err = ledgerRepo.Add(ctx, entry); err != nil {
			return nil, err
		}
		if err = clientRepo.Update(ctx, c); err != nil {
			return nil, err
		}
	}

	deliverer, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, orderDeliveredNotification(deliverer.Name(), o))
	return o, nil
}

// lostRace returns the settled order when a concurrent confirmation by the same courier
// committed first.
func (h ConfirmDeliveryCommandHandler) lostRace(
	ctx context.Context,
	orderRepo orderGetter,
	cmd ConfirmDeliveryCommand,
	now time.Time,
) (*order.Order, error) {
	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	wasDone := current.Status() == order.Done
	if err = current.ConfirmDelivery(cmd.CourierID(), cmd.PaymentType(), cmd.PaymentAmount(), now); err != nil {
		return nil, err
	}
	if wasDone {
		return current, nil
	}

	return nil, fmt.Errorf("order %s changed concurrently, retry the confirmation", cmd.OrderID())
}
