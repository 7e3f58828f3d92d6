package postgres

import (
	"fmt"

	"waterdelivery/internal/adapters/out/postgres/clientrepo"
	"waterdelivery/internal/adapters/out/postgres/courierrepo"
	"waterdelivery/internal/adapters/out/postgres/ledgerrepo"
	"waterdelivery/internal/adapters/out/postgres/notificationrepo"
	"waterdelivery/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every table of the service in dependency order.
func Models() []any {
	return []any{
		&clientrepo.ClientDTO{},
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&ledgerrepo.EntryDTO{},
		&notificationrepo.NotificationDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
