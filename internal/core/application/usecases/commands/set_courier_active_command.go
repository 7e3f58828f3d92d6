package commands

import (
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/guard"
)

var ErrSetCourierActiveCommandIsNotConstructed = errors.New(
	"SetCourierActiveCommand must be created via NewSetCourierActiveCommand constructor",
)

// SetCourierActiveCommand enables or disables a courier. Disabled couriers cannot claim
// new orders but finish the ones they hold.
type SetCourierActiveCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	active    bool

	guard guard.ConstructorGuard
}

func NewSetCourierActiveCommand(courierID kernel.UUID, active bool) (SetCourierActiveCommand, error) {
	if err := courierID.Validate(); err != nil {
		return SetCourierActiveCommand{}, err
	}

	return SetCourierActiveCommand{
		courierID: courierID,
		active:    active,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetCourierActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierActiveCommandIsNotConstructed)
}

func (c SetCourierActiveCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c SetCourierActiveCommand) Active() bool {
	return c.active
}
