package commands

import (
	"context"

	"waterdelivery/internal/core/ports"
)

// UpdateCourierPositionCommandHandler writes pings to the position tracker. Positions are
// ephemeral and never touch the database.
type UpdateCourierPositionCommandHandler struct {
	tracker ports.PositionTracker
}

func NewUpdateCourierPositionCommandHandler(tracker ports.PositionTracker) UpdateCourierPositionCommandHandler {
	return UpdateCourierPositionCommandHandler{
		tracker: tracker,
	}
}

func (h UpdateCourierPositionCommandHandler) Handle(ctx context.Context, cmd UpdateCourierPositionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.tracker.UpdatePosition(ctx, ports.Position{
		CourierID:  cmd.CourierID(),
		Point:      cmd.Point(),
		OrderID:    cmd.OrderID(),
		ReportedAt: cmd.ReportedAt(),
	})
}
