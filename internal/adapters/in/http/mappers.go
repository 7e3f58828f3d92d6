package http

import (
	"waterdelivery/internal/core/application/usecases/queries"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/ledger"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/ports"
	"waterdelivery/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Money leaves the service as a decimal string with two fractional digits, e.g. "24000.00".

func domainID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalDomainID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // id is optional
	}

	converted, err := domainID(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func toGeoPoint(l *servers.Location) (*kernel.GeoPoint, error) {
	if l == nil {
		return nil, nil //nolint:nilnil // location is optional
	}

	point, err := kernel.NewGeoPoint(l.Lat, l.Lon)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func locationOf(p *kernel.GeoPoint) *servers.Location {
	if p == nil {
		return nil
	}
	return &servers.Location{Lat: p.Lat(), Lon: p.Lon()}
}

func idOf(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	converted := id.Bytes()
	return &converted
}

func orderOf(o *order.Order) servers.Order {
	resp := servers.Order{
		Id:          o.ID().Bytes(),
		ClientId:    o.ClientID().Bytes(),
		CourierId:   idOf(o.Courier()),
		Status:      o.Status().String(),
		BottleCount: o.BottleCount(),
		Note:        o.Note(),
		DebtChange:  o.DebtChange().String(),
		CreatedAt:   o.CreatedAt(),
		DeliveredAt: o.DeliveredAt(),
	}
	if paymentType := o.PaymentType().String(); paymentType != "" {
		resp.PaymentType = &paymentType
	}
	if amount := o.PaymentAmount(); amount != nil {
		s := amount.String()
		resp.PaymentAmount = &s
	}
	return resp
}

func ledgerEntryOf(e *ledger.Entry) *servers.LedgerEntry {
	if e == nil {
		return nil
	}
	return &servers.LedgerEntry{
		Id:             e.ID().Bytes(),
		Change:         e.Change().String(),
		Comment:        e.Comment(),
		RelatedOrderId: idOf(e.RelatedOrderID()),
		CreatedAt:      e.CreatedAt(),
	}
}

func positionOf(p ports.Position) servers.Position {
	return servers.Position{
		CourierId:  p.CourierID.Bytes(),
		Location:   servers.Location{Lat: p.Point.Lat(), Lon: p.Point.Lon()},
		OrderId:    idOf(p.OrderID),
		ReportedAt: p.ReportedAt,
	}
}

func optionalPositionOf(p *ports.Position) *servers.Position {
	if p == nil {
		return nil
	}
	resp := positionOf(*p)
	return &resp
}

func courierOf(c queries.CourierResponse) servers.Courier {
	return servers.Courier{
		Id:       c.ID.Bytes(),
		Name:     c.Name,
		Phone:    c.Phone,
		IsActive: c.IsActive,
		Position: optionalPositionOf(c.Position),
	}
}

func claimableOrderOf(o queries.ClaimableOrderResponse) servers.ClaimableOrder {
	return servers.ClaimableOrder{
		Id:          o.ID.Bytes(),
		ClientId:    o.ClientID.Bytes(),
		ClientName:  o.ClientName,
		ClientPhone: o.ClientPhone,
		Location:    locationOf(o.Location),
		CourierId:   idOf(o.CourierID),
		Status:      o.Status.String(),
		BottleCount: o.BottleCount,
		Note:        o.Note,
		DebtChange:  o.DebtChange.String(),
		CreatedAt:   o.CreatedAt,
	}
}

func clientLedgerOf(l queries.ClientLedgerResponse) servers.ClientLedger {
	resp := servers.ClientLedger{
		ClientId:    l.ClientID.Bytes(),
		Name:        l.Name,
		Phone:       l.Phone,
		BalanceDebt: l.BalanceDebt.String(),
		Entries:     make([]servers.LedgerEntry, len(l.Entries)),
	}
	for i, e := range l.Entries {
		resp.Entries[i] = servers.LedgerEntry{
			Id:             e.ID.Bytes(),
			Change:         e.Change.String(),
			Comment:        e.Comment,
			RelatedOrderId: idOf(e.RelatedOrderID),
			CreatedAt:      e.CreatedAt,
		}
	}
	return resp
}

func trackingOf(t queries.TrackOrderResponse) servers.OrderTracking {
	return servers.OrderTracking{
		OrderId:         t.OrderID.Bytes(),
		Status:          t.Status.String(),
		ClientLocation:  locationOf(t.ClientLocation),
		CourierId:       idOf(t.CourierID),
		CourierPosition: optionalPositionOf(t.CourierPosition),
		DistanceKm:      t.DistanceKm,
		EtaSeconds:      t.EtaSeconds,
		EtaText:         t.EtaText,
	}
}

func notificationOf(n queries.NotificationResponse) servers.Notification {
	return servers.Notification{
		Id:             n.ID.Bytes(),
		Title:          n.Title,
		Message:        n.Message,
		CreatedOrderId: idOf(n.CreatedOrderID),
		CreatedAt:      n.CreatedAt,
	}
}

func limitOf(limit *servers.Limit) int {
	if limit == nil {
		return 0
	}
	return *limit
}
