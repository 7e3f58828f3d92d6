package notify

import (
	"context"
	"time"

	"waterdelivery/internal/core/ports"
)

type notificationStore interface {
	Add(ctx context.Context, notification ports.Notification, at time.Time) error
}

// StoreSink keeps notifications for the in-app feed.
type StoreSink struct {
	store notificationStore
	now   func() time.Time
}

func NewStoreSink(store notificationStore) *StoreSink {
	return &StoreSink{store: store, now: time.Now}
}

func (s *StoreSink) Name() string {
	return "store"
}

func (s *StoreSink) Send(ctx context.Context, notification ports.Notification) error {
	return s.store.Add(ctx, notification, s.now())
}
