package commands

import (
	"context"
	"time"

	"waterdelivery/internal/core/domain/model/client"
	"waterdelivery/internal/core/domain/model/ledger"
	"waterdelivery/internal/core/domain/services"
)

// SettleClientDebtCommandHandler brings a client's balance to zero through the ledger,
// so the sum of the client's entries stays equal to the balance.
type SettleClientDebtCommandHandler struct {
	uowFactory LedgerUoWFactory
	ledger     services.Ledger
}

func NewSettleClientDebtCommandHandler(uowFactory LedgerUoWFactory) SettleClientDebtCommandHandler {
	return SettleClientDebtCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewLedger(),
	}
}

// Handle returns a nil entry when the balance is already zero.
func (h SettleClientDebtCommandHandler) Handle(ctx context.Context, cmd SettleClientDebtCommand) (*ledger.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return postInTransaction(ctx, h.uowFactory, cmd.ClientID(), func(lockedClient *client.Client) (*ledger.Entry, error) {
		return h.ledger.SettleDebt(lockedClient, cmd.Comment(), time.Now().UTC())
	})
}
