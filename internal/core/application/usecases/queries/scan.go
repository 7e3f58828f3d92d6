package queries

import (
	"database/sql"

	"waterdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return min(limit, maxLimit)
}

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil // NULL column
	}

	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func optionalGeoPoint(lat, lon sql.NullFloat64) (*kernel.GeoPoint, error) {
	if !lat.Valid || !lon.Valid {
		return nil, nil //nolint:nilnil // address unknown
	}

	point, err := kernel.NewGeoPoint(lat.Float64, lon.Float64)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
