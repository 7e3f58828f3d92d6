package ports

import (
	"context"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
)

// Position is the last reported location of a courier.
type Position struct {
	CourierID kernel.UUID
	Point     kernel.GeoPoint
	// OrderID is the order the courier was delivering when reporting, if any.
	OrderID    *kernel.UUID
	ReportedAt time.Time
}

// PositionTracker is a best-effort store of courier positions. It is not a source of truth
// and may lose everything on restart.
//
// Writes older than the stored position of the same courier are ignored.
type PositionTracker interface {
	UpdatePosition(ctx context.Context, position Position) error

	// GetPosition returns false when nothing is known about the courier.
	GetPosition(ctx context.Context, courierID kernel.UUID) (Position, bool, error)

	// Evict drops positions reported before olderThan and returns how many were removed.
	Evict(ctx context.Context, olderThan time.Time) (int, error)
}
