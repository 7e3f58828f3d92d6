package notify

import (
	"context"
	"log/slog"

	"waterdelivery/internal/core/ports"
)

// LogSink writes notifications to the service log.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger.With("component", "notify_log_sink")}
}

func (s *LogSink) Name() string {
	return "log"
}

func (s *LogSink) Send(ctx context.Context, notification ports.Notification) error {
	attrs := []any{"title", notification.Title, "message", notification.Message}
	if notification.CreatedOrderID != nil {
		attrs = append(attrs, "order_id", notification.CreatedOrderID.String())
	}

	s.logger.InfoContext(ctx, "Notification", attrs...)
	return nil
}
