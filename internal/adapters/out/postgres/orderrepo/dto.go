// Package orderrepo persists Order aggregates with GORM.
package orderrepo

import (
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the orders table. Status and payment type are stored by name.
type OrderDTO struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ClientID      uuid.UUID           `gorm:"type:uuid;not null;index:idx_orders_client_status,priority:1"`
	CourierID     *uuid.UUID          `gorm:"type:uuid;index"`
	Status        string              `gorm:"type:varchar(16);not null;index:idx_orders_client_status,priority:2;index"`
	BottleCount   int                 `gorm:"not null"`
	Note          string              `gorm:"type:text;not null"`
	DebtChange    decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	CreatedAt     time.Time           `gorm:"not null;index"`
	DeliveredAt   *time.Time          `gorm:"column:delivered_at"`
	PaymentType   *string             `gorm:"type:varchar(8)"`
	PaymentAmount decimal.NullDecimal `gorm:"type:numeric(14,2)"`
}

// TableName overrides GORM's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:          o.ID().Bytes(),
		ClientID:    o.ClientID().Bytes(),
		Status:      o.Status().String(),
		BottleCount: o.BottleCount(),
		Note:        o.Note(),
		DebtChange:  o.DebtChange().Decimal(),
		CreatedAt:   o.CreatedAt(),
		DeliveredAt: o.DeliveredAt(),
	}

	if id := o.Courier(); id != nil {
		raw := id.Bytes()
		dto.CourierID = &raw
	}

	if pt := o.PaymentType(); pt != order.PaymentNone {
		s := pt.String()
		dto.PaymentType = &s
	}

	if amount := o.PaymentAmount(); amount != nil {
		dto.PaymentAmount = decimal.NewNullDecimal(amount.Decimal())
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	state := order.State{
		ID:          id,
		ClientID:    clientID,
		Status:      status,
		BottleCount: dto.BottleCount,
		Note:        dto.Note,
		DebtChange:  kernel.MoneyFromDecimal(dto.DebtChange),
		CreatedAt:   dto.CreatedAt,
		DeliveredAt: dto.DeliveredAt,
	}

	if dto.CourierID != nil {
		courierID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		state.CourierID = &courierID
	}

	if dto.PaymentType != nil {
		state.PaymentType = order.PaymentType(*dto.PaymentType)
	}

	if dto.PaymentAmount.Valid {
		amount := kernel.MoneyFromDecimal(dto.PaymentAmount.Decimal)
		state.PaymentAmount = &amount
	}

	return order.RestoreOrder(state)
}
