package http

import (
	"net/http"

	"waterdelivery/internal/core/application/usecases/commands"
	"waterdelivery/internal/core/application/usecases/queries"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders. A repeated submission within the debounce
// window answers 200 with the earlier order instead of 201.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	clientID, err := domainID(req.ClientId)
	if err != nil {
		return badRequest(ctx, "Invalid client id", err)
	}

	location, err := toGeoPoint(req.Location)
	if err != nil {
		return s.fail(ctx, err)
	}

	var (
		bottleCount int
		note        string
	)
	if req.BottleCount != nil {
		bottleCount = *req.BottleCount
	}
	if req.Note != nil {
		note = *req.Note
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, bottleCount, note, location)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	status := http.StatusCreated
	if !o.ID().IsEqual(orderID) {
		status = http.StatusOK
	}
	return ctx.JSON(status, orderOf(o))
}

// ClaimOrder handles POST /api/v1/orders/:id/claim.
func (s *Server) ClaimOrder(ctx echo.Context, id servers.ID) error {
	orderID, courierID, err := bindCourierAction(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, courierID)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx)(s.h.ClaimOrder.Handle(ctx.Request().Context(), cmd))
}

// StartTransit handles POST /api/v1/orders/:id/start.
func (s *Server) StartTransit(ctx echo.Context, id servers.ID) error {
	orderID, courierID, err := bindCourierAction(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewStartTransitCommand(orderID, courierID)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx)(s.h.StartTransit.Handle(ctx.Request().Context(), cmd))
}

// ConfirmDelivery handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context, id servers.ID) error {
	orderID, err := domainID(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	var req servers.ConfirmDeliveryJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	courierID, err := domainID(req.CourierId)
	if err != nil {
		return badRequest(ctx, "Invalid courier id", err)
	}

	paymentType, err := order.ParsePaymentType(req.PaymentType)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(
		orderID,
		courierID,
		paymentType,
		kernel.MoneyFromDecimal(req.PaymentAmount),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx)(s.h.ConfirmDelivery.Handle(ctx.Request().Context(), cmd))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id servers.ID) error {
	orderID, err := domainID(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx)(s.h.CancelOrder.Handle(ctx.Request().Context(), cmd))
}

// TrackOrder handles GET /api/v1/orders/:id/track.
func (s *Server) TrackOrder(ctx echo.Context, id servers.ID) error {
	orderID, err := domainID(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	tracking, err := s.h.TrackOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingOf(tracking))
}

// bindCourierAction converts the order id from the path and reads the courier id from
// the body.
func bindCourierAction(ctx echo.Context, id servers.ID) (kernel.UUID, kernel.UUID, error) {
	orderID, err := domainID(id)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, &requestError{message: "Invalid order id", err: err}
	}

	var req servers.CourierAction
	if err = ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, &requestError{message: "Invalid request body", err: err}
	}

	courierID, err := domainID(req.CourierId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, &requestError{message: "Invalid courier id", err: err}
	}

	return orderID, courierID, nil
}

func (s *Server) respondOrder(ctx echo.Context) func(*order.Order, error) error {
	return func(o *order.Order, err error) error {
		if err != nil {
			return s.fail(ctx, err)
		}
		return ctx.JSON(http.StatusOK, orderOf(o))
	}
}
