// Package courierrepo persists Courier aggregates with GORM.
package courierrepo

import (
	"waterdelivery/internal/core/domain/model/courier"
	"waterdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is the row layout of the couriers table.
type CourierDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Phone    string    `gorm:"type:varchar(32);not null"`
	IsActive bool      `gorm:"not null;index"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:       c.ID().Bytes(),
		Name:     c.Name(),
		Phone:    c.Phone(),
		IsActive: c.IsActive(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.Phone, dto.IsActive)
}
