package commands

import (
	"errors"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/guard"
)

var ErrUpdateCourierPositionCommandIsNotConstructed = errors.New(
	"UpdateCourierPositionCommand must be created via NewUpdateCourierPositionCommand constructor",
)

// UpdateCourierPositionCommand is a location ping from a courier's phone.
type UpdateCourierPositionCommand struct { //nolint:recvcheck //using for validation
	courierID  kernel.UUID
	point      kernel.GeoPoint
	orderID    *kernel.UUID
	reportedAt time.Time

	guard guard.ConstructorGuard
}

// NewUpdateCourierPositionCommand builds a ping. orderID is the order being delivered,
// if any. A zero reportedAt means now, and a reportedAt ahead of the server clock is
// clamped to now.
func NewUpdateCourierPositionCommand(
	courierID kernel.UUID,
	point kernel.GeoPoint,
	orderID *kernel.UUID,
	reportedAt time.Time,
) (UpdateCourierPositionCommand, error) {
	if err := errors.Join(courierID.Validate(), point.Validate()); err != nil {
		return UpdateCourierPositionCommand{}, err
	}

	command := UpdateCourierPositionCommand{
		courierID:  courierID,
		point:      point,
		reportedAt: reportedAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return UpdateCourierPositionCommand{}, err
		}
		id := *orderID
		command.orderID = &id
	}

	if now := time.Now().UTC(); reportedAt.IsZero() || reportedAt.After(now) {
		command.reportedAt = now
	}

	return command, nil
}

func (c UpdateCourierPositionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierPositionCommandIsNotConstructed)
}

func (c UpdateCourierPositionCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c UpdateCourierPositionCommand) Point() kernel.GeoPoint {
	return c.point
}

func (c UpdateCourierPositionCommand) OrderID() *kernel.UUID {
	return c.orderID
}

func (c UpdateCourierPositionCommand) ReportedAt() time.Time {
	return c.reportedAt
}
