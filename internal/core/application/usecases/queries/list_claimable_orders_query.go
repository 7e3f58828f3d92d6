package queries

import (
	"errors"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/pkg/guard"
)

var ErrListClaimableOrdersQueryIsNotConstructed = errors.New(
	"ListClaimableOrdersQuery must be created via NewListClaimableOrdersQuery constructor",
)

// ListClaimableOrdersQuery is a courier's work list: every pending order plus the orders
// the courier already holds.
//
// Example:
//
//	query, _ := NewListClaimableOrdersQuery(courierID)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type ListClaimableOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListClaimableOrdersQuery(courierID kernel.UUID) (ListClaimableOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return ListClaimableOrdersQuery{}, err
	}

	return ListClaimableOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListClaimableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListClaimableOrdersQueryIsNotConstructed)
}

func (q ListClaimableOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// ClaimableOrderResponse is one row of the work list with the client's contact data.
type ClaimableOrderResponse struct {
	ID          kernel.UUID
	ClientID    kernel.UUID
	ClientName  string
	ClientPhone string
	// Location is nil when the client has no known address.
	Location    *kernel.GeoPoint
	CourierID   *kernel.UUID
	Status      order.Status
	BottleCount int
	Note        string
	DebtChange  kernel.Money
	CreatedAt   time.Time
}
