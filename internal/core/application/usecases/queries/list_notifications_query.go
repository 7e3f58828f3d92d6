package queries

import (
	"errors"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery reads the in-app notification feed, newest first.
type ListNotificationsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

func NewListNotificationsQuery(limit int) ListNotificationsQuery {
	return ListNotificationsQuery{
		limit: clampLimit(limit),
		guard: guard.NewConstructorGuard(),
	}
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) Limit() int {
	return q.limit
}

type NotificationResponse struct {
	ID             kernel.UUID
	Title          string
	Message        string
	CreatedOrderID *kernel.UUID
	CreatedAt      time.Time
}
