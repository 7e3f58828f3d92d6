package queries

import (
	"context"
	"database/sql"
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetClientLedgerQueryHandler struct {
	db *gorm.DB
}

func NewGetClientLedgerQueryHandler(db *gorm.DB) GetClientLedgerQueryHandler {
	return GetClientLedgerQueryHandler{db: db}
}

func (h GetClientLedgerQueryHandler) Handle(
	ctx context.Context,
	query GetClientLedgerQuery,
) (ClientLedgerResponse, error) {
	if err := query.Validate(); err != nil {
		return ClientLedgerResponse{}, err
	}

	db := h.db.WithContext(ctx)
	resp := ClientLedgerResponse{
		ClientID: query.ClientID(),
		Entries:  make([]LedgerEntryResponse, 0),
	}

	var balance decimal.Decimal
	err := db.Raw(`
		SELECT name, phone, balance_debt
		FROM clients
		WHERE id = ?
	`, query.ClientID().Bytes()).Row().Scan(&resp.Name, &resp.Phone, &balance)
	if errors.Is(err, sql.ErrNoRows) {
		return ClientLedgerResponse{}, errs.NewObjectNotFoundError("client", query.ClientID().String())
	}
	if err != nil {
		return ClientLedgerResponse{}, err
	}
	resp.BalanceDebt = kernel.MoneyFromDecimal(balance)

	rows, err := db.Raw(`
		SELECT
			id,
			change,
			comment,
			related_order_id,
			created_at
		FROM ledger_entries
		WHERE client_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, query.ClientID().Bytes(), query.Limit()).Rows()
	if err != nil {
		return ClientLedgerResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry     LedgerEntryResponse
			id        uuid.UUID
			change    decimal.Decimal
			relatedID uuid.NullUUID
		)

		if err = rows.Scan(&id, &change, &entry.Comment, &relatedID, &entry.CreatedAt); err != nil {
			return ClientLedgerResponse{}, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ClientLedgerResponse{}, err
		}
		if entry.RelatedOrderID, err = optionalUUID(relatedID); err != nil {
			return ClientLedgerResponse{}, err
		}
		entry.Change = kernel.MoneyFromDecimal(change)

		resp.Entries = append(resp.Entries, entry)
	}

	if err = rows.Err(); err != nil {
		return ClientLedgerResponse{}, err
	}

	return resp, nil
}
