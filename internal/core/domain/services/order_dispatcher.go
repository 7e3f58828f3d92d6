package services

import (
	"waterdelivery/internal/core/domain/model/courier"
	"waterdelivery/internal/core/domain/model/order"
)

// OrderDispatcher decides whether a courier may take a pending order.
//
// Business rules:
//   - the courier must be active
//   - the order must be pending; one that already has an assignee is reported as
//     errs.ErrAlreadyAssigned so the courier sees that someone else took it
//
// Dispatch only changes the in-memory aggregate. Persisting it atomically against
// concurrent claims is the repository's job.
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch assigns o to c.
func (OrderDispatcher) Dispatch(o *order.Order, c *courier.Courier) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if err := c.CanClaim(); err != nil {
		return err
	}

	return o.Assign(c.ID())
}
