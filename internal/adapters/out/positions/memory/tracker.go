// Package memory keeps courier positions in process memory. Positions are lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/ports"
)

// Tracker is a ports.PositionTracker backed by a map. It is safe for concurrent use.
type Tracker struct {
	mu        sync.RWMutex
	positions map[kernel.UUID]ports.Position
}

func NewTracker() *Tracker {
	return &Tracker{
		positions: make(map[kernel.UUID]ports.Position),
	}
}

// UpdatePosition stores the position unless a newer one is already known for the courier.
func (t *Tracker) UpdatePosition(_ context.Context, position ports.Position) error {
	if err := position.CourierID.Validate(); err != nil {
		return err
	}
	if err := position.Point.Validate(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if stored, ok := t.positions[position.CourierID]; ok && position.ReportedAt.Before(stored.ReportedAt) {
		return nil
	}

	t.positions[position.CourierID] = position
	return nil
}

func (t *Tracker) GetPosition(_ context.Context, courierID kernel.UUID) (ports.Position, bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	position, ok := t.positions[courierID]
	return position, ok, nil
}

func (t *Tracker) Evict(_ context.Context, olderThan time.Time) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	evicted := 0
	for courierID, position := range t.positions {
		if position.ReportedAt.Before(olderThan) {
			delete(t.positions, courierID)
			evicted++
		}
	}

	return evicted, nil
}
