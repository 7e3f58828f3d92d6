package commands

import (
	"context"
	"time"

	"waterdelivery/internal/core/domain/model/client"
	"waterdelivery/internal/core/domain/model/ledger"
	"waterdelivery/internal/core/domain/services"
)

// PostLedgerEntryCommandHandler appends a manual entry and moves the client's balance
// by the same amount. A zero amount records nothing and returns a nil entry.
type PostLedgerEntryCommandHandler struct {
	uowFactory LedgerUoWFactory
	ledger     services.Ledger
}

func NewPostLedgerEntryCommandHandler(uowFactory LedgerUoWFactory) PostLedgerEntryCommandHandler {
	return PostLedgerEntryCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewLedger(),
	}
}

func (h PostLedgerEntryCommandHandler) Handle(ctx context.Context, cmd PostLedgerEntryCommand) (*ledger.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return postInTransaction(ctx, h.uowFactory, cmd.ClientID(), func(lockedClient *client.Client) (*ledger.Entry, error) {
		return h.ledger.Post(lockedClient, cmd.Amount(), cmd.Comment(), nil, time.Now().UTC())
	})
}
