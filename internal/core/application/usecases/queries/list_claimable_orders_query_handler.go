package queries

import (
	"context"
	"database/sql"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListClaimableOrdersQueryHandler reads the work list straight from the orders and
// clients tables, newest order first.
type ListClaimableOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListClaimableOrdersQueryHandler(db *gorm.DB) ListClaimableOrdersQueryHandler {
	return ListClaimableOrdersQueryHandler{db: db}
}

// Handle returns pending orders and the courier's assigned or delivering orders, ordered
// by creation time and then id, both descending.
func (h ListClaimableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListClaimableOrdersQuery,
) ([]ClaimableOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	held := pq.Array([]string{order.Assigned.String(), order.Delivering.String()})

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.client_id,
			c.name,
			c.phone,
			c.location_lat,
			c.location_lon,
			o.courier_id,
			o.status,
			o.bottle_count,
			o.note,
			o.debt_change,
			o.created_at
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.status = ?
			OR (o.courier_id = ? AND o.status = ANY(?))
		ORDER BY o.created_at DESC, o.id DESC
	`, order.Pending.String(), query.CourierID().Bytes(), held).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ClaimableOrderResponse, 0)
	for rows.Next() {
		var (
			resp         ClaimableOrderResponse
			id, clientID uuid.UUID
			courierID    uuid.NullUUID
			lat, lon     sql.NullFloat64
			status       string
			debtChange   decimal.Decimal
		)

		if err = rows.Scan(
			&id,
			&clientID,
			&resp.ClientName,
			&resp.ClientPhone,
			&lat,
			&lon,
			&courierID,
			&status,
			&resp.BottleCount,
			&resp.Note,
			&debtChange,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if resp.CourierID, err = optionalUUID(courierID); err != nil {
			return nil, err
		}
		if resp.Location, err = optionalGeoPoint(lat, lon); err != nil {
			return nil, err
		}
		if resp.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		resp.DebtChange = kernel.MoneyFromDecimal(debtChange)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
