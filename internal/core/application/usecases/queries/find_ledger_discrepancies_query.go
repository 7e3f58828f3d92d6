package queries

import (
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/guard"
)

var ErrFindLedgerDiscrepanciesQueryIsNotConstructed = errors.New(
	"FindLedgerDiscrepanciesQuery must be created via NewFindLedgerDiscrepanciesQuery constructor",
)

// FindLedgerDiscrepanciesQuery looks for clients whose stored balance differs from the
// sum of their ledger entries. An empty result means the ledger is consistent.
type FindLedgerDiscrepanciesQuery struct {
	guard guard.ConstructorGuard
}

func NewFindLedgerDiscrepanciesQuery() FindLedgerDiscrepanciesQuery {
	return FindLedgerDiscrepanciesQuery{guard: guard.NewConstructorGuard()}
}

func (q FindLedgerDiscrepanciesQuery) Validate() error {
	return q.guard.Validate(ErrFindLedgerDiscrepanciesQueryIsNotConstructed)
}

type LedgerDiscrepancyResponse struct {
	ClientID    kernel.UUID
	Name        string
	BalanceDebt kernel.Money
	LedgerSum   kernel.Money
}
