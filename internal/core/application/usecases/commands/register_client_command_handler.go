package commands

import (
	"context"

	"waterdelivery/internal/core/domain/model/client"
)

// RegisterClientCommandHandler stores new clients with a zero balance.
type RegisterClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewRegisterClientCommandHandler(uowFactory ClientUoWFactory) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterClientCommandHandler) Handle(ctx context.Context, cmd RegisterClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := client.NewClient(cmd.ClientID(), cmd.Phone(), cmd.Name(), cmd.Location())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ClientRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
