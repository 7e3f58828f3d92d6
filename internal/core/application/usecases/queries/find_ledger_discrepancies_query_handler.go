package queries

import (
	"context"

	"waterdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FindLedgerDiscrepanciesQueryHandler struct {
	db *gorm.DB
}

func NewFindLedgerDiscrepanciesQueryHandler(db *gorm.DB) FindLedgerDiscrepanciesQueryHandler {
	return FindLedgerDiscrepanciesQueryHandler{db: db}
}

func (h FindLedgerDiscrepanciesQueryHandler) Handle(
	ctx context.Context,
	query FindLedgerDiscrepanciesQuery,
) ([]LedgerDiscrepancyResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.balance_debt,
			COALESCE(SUM(e.change), 0) AS ledger_sum
		FROM clients c
		LEFT JOIN ledger_entries e ON e.client_id = c.id
		GROUP BY c.id, c.name, c.balance_debt
		HAVING c.balance_debt <> COALESCE(SUM(e.change), 0)
		ORDER BY c.name, c.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	discrepancies := make([]LedgerDiscrepancyResponse, 0)
	for rows.Next() {
		var (
			resp         LedgerDiscrepancyResponse
			id           uuid.UUID
			balance, sum decimal.Decimal
		)

		if err = rows.Scan(&id, &resp.Name, &balance, &sum); err != nil {
			return nil, err
		}
		if resp.ClientID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.BalanceDebt = kernel.MoneyFromDecimal(balance)
		resp.LedgerSum = kernel.MoneyFromDecimal(sum)

		discrepancies = append(discrepancies, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return discrepancies, nil
}
