// Package notify fans notifications out to delivery channels without blocking the
// business operations that raise them.
//
// Handlers call Dispatcher.Notify after their transaction commits. The dispatcher
// queues the notification on a bounded channel and a single worker started with Run
// hands it to every configured sink:
//
//	dispatcher := notify.NewDispatcher(logger, 256,
//	    notify.NewStoreSink(notificationrepo.NewGormNotificationRepository(db)),
//	    notify.NewTelegramSink(bot, chatID),
//	)
//	g.Go(func() error { return dispatcher.Run(ctx) })
//
// A full queue drops the notification; a failing sink is logged and skipped.
package notify

import (
	"context"
	"log/slog"
	"time"

	"waterdelivery/internal/core/ports"
)

const (
	DefaultQueueSize = 256
	// sendTimeout bounds a single sink call.
	sendTimeout = 10 * time.Second
)

// Dispatcher is the asynchronous ports.Notifier.
type Dispatcher struct {
	queue  chan ports.Notification
	sinks  []ports.NotificationSink
	logger *slog.Logger
}

func NewDispatcher(logger *slog.Logger, queueSize int, sinks ...ports.NotificationSink) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	return &Dispatcher{
		queue:  make(chan ports.Notification, queueSize),
		sinks:  sinks,
		logger: logger.With("component", "notify_dispatcher"),
	}
}

// Notify enqueues the notification and returns immediately.
func (d *Dispatcher) Notify(ctx context.Context, notification ports.Notification) {
	select {
	case d.queue <- notification:
	default:
		d.logger.WarnContext(ctx, "Notification queue is full, dropping notification",
			"title", notification.Title,
			"queue_size", cap(d.queue),
		)
	}
}

// Run delivers queued notifications until ctx is cancelled. Notifications still queued
// at that point are delivered with a fresh context before Run returns.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.InfoContext(ctx, "Notification dispatcher started", "sinks", len(d.sinks))

	for {
		select {
		case notification := <-d.queue:
			d.deliver(ctx, notification)
		case <-ctx.Done():
			d.drain()
			d.logger.Info("Notification dispatcher stopped")
			return nil
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case notification := <-d.queue:
			d.deliver(context.Background(), notification)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, notification ports.Notification) {
	for _, sink := range d.sinks {
		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		err := sink.Send(sendCtx, notification)
		cancel()

		if err != nil {
			d.logger.ErrorContext(ctx, "Notification delivery failed",
				"sink", sink.Name(),
				"title", notification.Title,
				"error", err,
			)
		}
	}
}
