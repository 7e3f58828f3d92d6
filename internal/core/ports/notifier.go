package ports

import (
	"context"

	"waterdelivery/internal/core/domain/model/kernel"
)

// Notification is an event shown to administrators and forwarded to external channels.
type Notification struct {
	Title          string
	Message        string
	CreatedOrderID *kernel.UUID
}

// Notifier accepts notifications without blocking. Delivery failures are logged by the
// implementation and never reach the caller.
type Notifier interface {
	Notify(ctx context.Context, notification Notification)
}

// NotificationSink is a single delivery channel behind a Notifier.
type NotificationSink interface {
	Name() string
	Send(ctx context.Context, notification Notification) error
}
