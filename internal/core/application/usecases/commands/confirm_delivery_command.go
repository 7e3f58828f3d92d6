package commands

import (
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/pkg/errs"
	"waterdelivery/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand reports a finished delivery and how the client paid for it.
//
// Example:
//
//	cmd, err := NewConfirmDeliveryCommand(orderID, courierID, order.PaymentDebt, kernel.MoneyFromInt(24000))
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	courierID     kernel.UUID
	paymentType   order.PaymentType
	paymentAmount kernel.Money

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(
	orderID kernel.UUID,
	courierID kernel.UUID,
	paymentType order.PaymentType,
	paymentAmount kernel.Money,
) (ConfirmDeliveryCommand, error) {
	command := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		courierID.Validate(),
		command.setPayment(paymentType, paymentAmount),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	command.orderID = orderID
	command.courierID = courierID
	return command, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ConfirmDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c ConfirmDeliveryCommand) PaymentType() order.PaymentType {
	return c.paymentType
}

func (c ConfirmDeliveryCommand) PaymentAmount() kernel.Money {
	return c.paymentAmount
}

func (c *ConfirmDeliveryCommand) setPayment(paymentType order.PaymentType, amount kernel.Money) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	if amount.IsNegative() {
		return errs.NewValueIsOutOfRangeError("payment amount", amount.String(), "0", "unbounded")
	}

	c.paymentType = paymentType
	c.paymentAmount = amount
	return nil
}
