package orderrepo

import (
	"context"
	"errors"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateIfStatus writes the mutable columns of the order with a single conditional UPDATE.
// Postgres serializes concurrent updates of the row, so at most one caller sees the
// expected status and gets true.
func (r *GormOrderRepository) UpdateIfStatus(
	ctx context.Context,
	aggregate *order.Order,
	expected order.Status,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Updates(map[string]any{
			"courier_id":     dto.CourierID,
			"status":         dto.Status,
			"delivered_at":   dto.DeliveredAt,
			"payment_type":   dto.PaymentType,
			"payment_amount": dto.PaymentAmount,
		})
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	return true, nil
}

// FindPendingDuplicate looks for a pending order with identical content placed since the given time.
func (r *GormOrderRepository) FindPendingDuplicate(
	ctx context.Context,
	clientID kernel.UUID,
	bottleCount int,
	note string,
	since time.Time,
) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND status = ? AND bottle_count = ? AND note = ? AND created_at >= ?",
			clientID.Bytes(), order.Pending.String(), bottleCount, note, since.UTC()).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "pending duplicate of client "+clientID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
