package commands

import (
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/guard"
)

var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand is sent by the assigned courier when leaving with the bottles.
type StartTransitCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartTransitCommand(orderID, courierID kernel.UUID) (StartTransitCommand, error) {
	command := StartTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return StartTransitCommand{}, err
	}

	command.orderID = orderID
	command.courierID = courierID
	return command, nil
}

func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}

func (c StartTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c StartTransitCommand) CourierID() kernel.UUID {
	return c.courierID
}
