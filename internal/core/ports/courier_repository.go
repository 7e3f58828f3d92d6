package ports

import (
	"context"

	"waterdelivery/internal/core/domain/model/courier"
	"waterdelivery/internal/core/domain/model/kernel"
)

type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by id. Unknown ids yield errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
}
