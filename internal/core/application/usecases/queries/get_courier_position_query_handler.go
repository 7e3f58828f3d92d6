package queries

import (
	"context"

	"waterdelivery/internal/core/ports"
	"waterdelivery/internal/pkg/errs"
)

type GetCourierPositionQueryHandler struct {
	tracker ports.PositionTracker
}

func NewGetCourierPositionQueryHandler(tracker ports.PositionTracker) GetCourierPositionQueryHandler {
	return GetCourierPositionQueryHandler{tracker: tracker}
}

// Handle returns ObjectNotFoundError when the tracker knows nothing about the courier.
func (h GetCourierPositionQueryHandler) Handle(
	ctx context.Context,
	query GetCourierPositionQuery,
) (ports.Position, error) {
	if err := query.Validate(); err != nil {
		return ports.Position{}, err
	}

	position, found, err := h.tracker.GetPosition(ctx, query.CourierID())
	if err != nil {
		return ports.Position{}, err
	}
	if !found {
		return ports.Position{}, errs.NewObjectNotFoundError("courier position", query.CourierID().String())
	}

	return position, nil
}
