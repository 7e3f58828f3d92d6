package queries

import (
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/ports"
	"waterdelivery/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery asks where the courier of an order is and when they will arrive.
type TrackOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewTrackOrderQuery(orderID kernel.UUID) (TrackOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TrackOrderResponse describes an order in progress. Courier position, distance and ETA
// are filled only while the order is assigned or delivering and the courier has reported
// a position; distance and ETA additionally need the client's address.
type TrackOrderResponse struct {
	OrderID         kernel.UUID
	Status          order.Status
	ClientLocation  *kernel.GeoPoint
	CourierID       *kernel.UUID
	CourierPosition *ports.Position
	DistanceKm      *float64
	EtaSeconds      int
	// EtaText is the human readable ETA, e.g. "12 daqiqa".
	EtaText string
}
