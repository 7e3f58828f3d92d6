package ports

import (
	"context"

	"waterdelivery/internal/core/domain/model/ledger"
)

// LedgerRepository is append-only: entries are never updated or deleted.
type LedgerRepository interface {
	Add(ctx context.Context, entry *ledger.Entry) error
}
