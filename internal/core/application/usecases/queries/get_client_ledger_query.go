package queries

import (
	"errors"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/guard"
)

var ErrGetClientLedgerQueryIsNotConstructed = errors.New(
	"GetClientLedgerQuery must be created via NewGetClientLedgerQuery constructor",
)

// GetClientLedgerQuery reads a client's balance and ledger history.
// A non-positive limit selects the default page size; large limits are capped.
type GetClientLedgerQuery struct {
	clientID kernel.UUID
	limit    int

	guard guard.ConstructorGuard
}

func NewGetClientLedgerQuery(clientID kernel.UUID, limit int) (GetClientLedgerQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientLedgerQuery{}, err
	}

	return GetClientLedgerQuery{
		clientID: clientID,
		limit:    clampLimit(limit),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetClientLedgerQuery) Validate() error {
	return q.guard.Validate(ErrGetClientLedgerQueryIsNotConstructed)
}

func (q GetClientLedgerQuery) ClientID() kernel.UUID {
	return q.clientID
}

func (q GetClientLedgerQuery) Limit() int {
	return q.limit
}

type LedgerEntryResponse struct {
	ID             kernel.UUID
	Change         kernel.Money
	Comment        string
	RelatedOrderID *kernel.UUID
	CreatedAt      time.Time
}

// ClientLedgerResponse carries the stored balance next to the entries, newest first.
type ClientLedgerResponse struct {
	ClientID    kernel.UUID
	Name        string
	Phone       string
	BalanceDebt kernel.Money
	Entries     []LedgerEntryResponse
}
