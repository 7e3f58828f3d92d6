// Package ledgerrepo appends ledger entries with GORM.
package ledgerrepo

import (
	"time"

	"waterdelivery/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryDTO is the row layout of the ledger_entries table. At most one entry may reference
// a given order, which backs up the idempotent settlement at the storage level.
type EntryDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Change         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Comment        string          `gorm:"type:text;not null"`
	RelatedOrderID *uuid.UUID      `gorm:"type:uuid;uniqueIndex:ux_ledger_entries_related_order,where:related_order_id IS NOT NULL"`
	CreatedAt      time.Time       `gorm:"not null;index"`
}

func (EntryDTO) TableName() string {
	return "ledger_entries"
}

func fromDomain(e *ledger.Entry) EntryDTO {
	dto := EntryDTO{
		ID:        e.ID().Bytes(),
		ClientID:  e.ClientID().Bytes(),
		Change:    e.Change().Decimal(),
		Comment:   e.Comment(),
		CreatedAt: e.CreatedAt(),
	}

	if orderID := e.RelatedOrderID(); orderID != nil {
		raw := orderID.Bytes()
		dto.RelatedOrderID = &raw
	}

	return dto
}
