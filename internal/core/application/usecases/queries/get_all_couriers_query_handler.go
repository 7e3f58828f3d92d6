package queries

import (
	"context"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler reads couriers with direct SQL and decorates them with
// positions from the tracker.
type GetAllCouriersQueryHandler struct {
	db      *gorm.DB
	tracker ports.PositionTracker
}

// NewGetAllCouriersQueryHandler creates a handler for courier retrieval queries.
func NewGetAllCouriersQueryHandler(db *gorm.DB, tracker ports.PositionTracker) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db, tracker: tracker}
}

// Handle returns all couriers sorted by name.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]CourierResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			is_active
		FROM couriers
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var courier CourierResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&courier.Name,
			&courier.Phone,
			&courier.IsActive,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		courier.ID = courierID

		couriers = append(couriers, courier)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range couriers {
		position, found, posErr := h.tracker.GetPosition(ctx, couriers[i].ID)
		if posErr != nil {
			return nil, posErr
		}
		if found {
			couriers[i].Position = &position
		}
	}

	return couriers, nil
}
