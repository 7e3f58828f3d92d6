// Package notificationrepo stores in-app notifications shown on the admin dashboard.
package notificationrepo

import (
	"context"
	"time"

	"waterdelivery/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDTO is the row layout of the notifications table.
type NotificationDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title          string     `gorm:"type:varchar(255);not null"`
	Message        string     `gorm:"type:text;not null"`
	CreatedOrderID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time  `gorm:"not null;index"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

// GormNotificationRepository appends notifications for the admin dashboard.
type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add stores a notification raised at the given time.
func (r *GormNotificationRepository) Add(ctx context.Context, n ports.Notification, at time.Time) error {
	dto := NotificationDTO{
		ID:        uuid.New(),
		Title:     n.Title,
		Message:   n.Message,
		CreatedAt: at.UTC(),
	}
	if n.CreatedOrderID != nil {
		raw := n.CreatedOrderID.Bytes()
		dto.CreatedOrderID = &raw
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
