package ledgerrepo

import (
	"context"

	"waterdelivery/internal/core/domain/model/ledger"

	"gorm.io/gorm"
)

// GormLedgerRepository implements ports.LedgerRepository. Entries are only ever inserted.
type GormLedgerRepository struct {
	db *gorm.DB
}

func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

func (r *GormLedgerRepository) Add(ctx context.Context, entry *ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
