package ports

import (
	"context"

	"waterdelivery/internal/core/domain/model/client"
	"waterdelivery/internal/core/domain/model/kernel"
)

type ClientRepository interface {
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists location, last order time and balance of an existing client.
	Update(ctx context.Context, aggregate *client.Client) error

	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// GetForUpdate reads the client and locks its row until the transaction ends.
	// Balance changes and order creation for one client are serialized through this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*client.Client, error)
}
