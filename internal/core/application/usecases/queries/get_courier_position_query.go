package queries

import (
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/guard"
)

var ErrGetCourierPositionQueryIsNotConstructed = errors.New(
	"GetCourierPositionQuery must be created via NewGetCourierPositionQuery constructor",
)

type GetCourierPositionQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCourierPositionQuery(courierID kernel.UUID) (GetCourierPositionQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierPositionQuery{}, err
	}

	return GetCourierPositionQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetCourierPositionQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierPositionQueryIsNotConstructed)
}

func (q GetCourierPositionQuery) CourierID() kernel.UUID {
	return q.courierID
}
