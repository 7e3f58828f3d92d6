package queries

import (
	"context"
	"database/sql"
	"errors"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/ports"
	"waterdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler joins the stored order with the courier's live position and
// estimates the arrival at DefaultCourierSpeedKmh.
type TrackOrderQueryHandler struct {
	db      *gorm.DB
	tracker ports.PositionTracker
}

func NewTrackOrderQueryHandler(db *gorm.DB, tracker ports.PositionTracker) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db, tracker: tracker}
}

func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderResponse{}, err
	}

	var (
		status    string
		courierID uuid.NullUUID
		lat, lon  sql.NullFloat64
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.status,
			o.courier_id,
			c.location_lat,
			c.location_lon
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row().Scan(&status, &courierID, &lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackOrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return TrackOrderResponse{}, err
	}

	resp := TrackOrderResponse{OrderID: query.OrderID()}
	if resp.Status, err = order.ParseStatus(status); err != nil {
		return TrackOrderResponse{}, err
	}
	if resp.CourierID, err = optionalUUID(courierID); err != nil {
		return TrackOrderResponse{}, err
	}
	if resp.ClientLocation, err = optionalGeoPoint(lat, lon); err != nil {
		return TrackOrderResponse{}, err
	}

	if resp.CourierID == nil || resp.Status.IsTerminal() {
		return resp, nil
	}

	position, found, err := h.tracker.GetPosition(ctx, *resp.CourierID)
	if err != nil {
		return TrackOrderResponse{}, err
	}
	if !found {
		return resp, nil
	}
	resp.CourierPosition = &position

	if resp.ClientLocation == nil {
		return resp, nil
	}

	distance, err := position.Point.DistanceKm(*resp.ClientLocation)
	if err != nil {
		return TrackOrderResponse{}, err
	}
	resp.DistanceKm = &distance
	resp.EtaSeconds = kernel.EtaSeconds(distance, kernel.DefaultCourierSpeedKmh)
	resp.EtaText = kernel.FormatEta(resp.EtaSeconds)

	return resp, nil
}
