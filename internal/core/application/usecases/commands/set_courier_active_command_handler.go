package commands

import (
	"context"
)

type SetCourierActiveCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewSetCourierActiveCommandHandler(uowFactory CourierUoWFactory) SetCourierActiveCommandHandler {
	return SetCourierActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the courier, flips the flag and saves it. Unknown couriers yield
// errs.ErrObjectNotFound.
func (h SetCourierActiveCommandHandler) Handle(ctx context.Context, cmd SetCourierActiveCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	c, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if cmd.Active() {
		c.Activate()
	} else {
		c.Deactivate()
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
