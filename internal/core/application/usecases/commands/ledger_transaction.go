package commands

import (
	"context"

	"waterdelivery/internal/core/domain/model/client"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/ledger"
)

// postInTransaction locks the client, lets post compute the entry and stores the entry
// together with the new balance.
func postInTransaction(
	ctx context.Context,
	uowFactory LedgerUoWFactory,
	clientID kernel.UUID,
	post func(lockedClient *client.Client) (*ledger.Entry, error),
) (*ledger.Entry, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	clientRepo := uow.ClientRepository()
	ledgerRepo := uow.LedgerRepository()

	c, err := clientRepo.GetForUpdate(ctx, clientID)
	if err != nil {
		return nil, err
	}

	entry, err := post(c)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil //nolint:nilnil // zero amount, nothing recorded
	}

	if err = ledgerRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = clientRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
