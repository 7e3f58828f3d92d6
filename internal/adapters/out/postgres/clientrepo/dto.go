// Package clientrepo persists Client aggregates with GORM.
package clientrepo

import (
	"time"

	"waterdelivery/internal/core/domain/model/client"
	"waterdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientDTO is the row layout of the clients table. A client without a known address has
// NULL coordinates.
type ClientDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Phone       string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(255);not null"`
	LocationLat *float64        `gorm:"column:location_lat"`
	LocationLon *float64        `gorm:"column:location_lon"`
	BalanceDebt decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	LastOrderAt *time.Time      `gorm:"column:last_order_at"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	dto := ClientDTO{
		ID:          c.ID().Bytes(),
		Phone:       c.Phone(),
		Name:        c.Name(),
		BalanceDebt: c.BalanceDebt().Decimal(),
		LastOrderAt: c.LastOrderAt(),
	}

	if loc := c.Location(); loc != nil {
		lat, lon := loc.Lat(), loc.Lon()
		dto.LocationLat = &lat
		dto.LocationLon = &lon
	}

	return dto
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.LocationLat != nil && dto.LocationLon != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.LocationLat, *dto.LocationLon)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return client.RestoreClient(
		id,
		dto.Phone,
		dto.Name,
		location,
		kernel.MoneyFromDecimal(dto.BalanceDebt),
		dto.LastOrderAt,
	)
}
