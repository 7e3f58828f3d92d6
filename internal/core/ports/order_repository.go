package ports

import (
	"context"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
)

type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Unknown ids yield errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateIfStatus writes the aggregate only if the stored order is still in expected status.
	// It is the compare-and-swap every transition goes through: it returns false, and writes
	// nothing, when a concurrent transaction moved the order first.
	//
	// Example:
	//   if err := o.Assign(courierID); err != nil { ... }
	//   ok, err := repo.UpdateIfStatus(ctx, o, order.Pending)
	//   if !ok {
	//       // another courier won the race
	//   }
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) (bool, error)

	// FindPendingDuplicate returns the newest pending order of the client with the same
	// bottle count and note created at or after since. No match yields errs.ErrObjectNotFound.
	FindPendingDuplicate(
		ctx context.Context,
		clientID kernel.UUID,
		bottleCount int,
		note string,
		since time.Time,
	) (*order.Order, error)
}
