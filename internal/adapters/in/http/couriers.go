package http

import (
	"net/http"
	"time"

	"waterdelivery/internal/core/application/usecases/commands"
	"waterdelivery/internal/core/application/usecases/queries"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/generated/servers"
	"waterdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req servers.CreateCourierJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	cmd, err := commands.NewCreateCourierCommand(req.Name, req.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: cmd.CourierID().Bytes()})
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.h.GetAllCouriers.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Courier, len(couriers))
	for i, courier := range couriers {
		response[i] = courierOf(courier)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetCourierActive handles PATCH /api/v1/couriers/:id/active.
func (s *Server) SetCourierActive(ctx echo.Context, id servers.ID) error {
	courierID, err := domainID(id)
	if err != nil {
		return badRequest(ctx, "Invalid courier id", err)
	}

	var req servers.SetCourierActiveJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}
	if req.Active == nil {
		return s.fail(ctx, errs.NewValueIsRequiredError("active"))
	}

	cmd, err := commands.NewSetCourierActiveCommand(courierID, *req.Active)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.SetCourierActive.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCourierPosition handles PUT /api/v1/couriers/:id/position.
func (s *Server) UpdateCourierPosition(ctx echo.Context, id servers.ID) error {
	courierID, err := domainID(id)
	if err != nil {
		return badRequest(ctx, "Invalid courier id", err)
	}

	var req servers.UpdateCourierPositionJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}
	if req.Lat == nil || req.Lon == nil {
		return s.fail(ctx, errs.NewValueIsRequiredError("lat and lon"))
	}

	point, err := kernel.NewGeoPoint(*req.Lat, *req.Lon)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := optionalDomainID(req.OrderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	var reportedAt time.Time
	if req.ReportedAt != nil {
		reportedAt = *req.ReportedAt
	}

	cmd, err := commands.NewUpdateCourierPositionCommand(courierID, point, orderID, reportedAt)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.UpdateCourierPosition.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCourierPosition handles GET /api/v1/couriers/:id/position.
func (s *Server) GetCourierPosition(ctx echo.Context, id servers.ID) error {
	courierID, err := domainID(id)
	if err != nil {
		return badRequest(ctx, "Invalid courier id", err)
	}

	query, err := queries.NewGetCourierPositionQuery(courierID)
	if err != nil {
		return s.fail(ctx, err)
	}

	position, err := s.h.GetCourierPosition.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, positionOf(position))
}

// ListClaimableOrders handles GET /api/v1/couriers/:id/orders - the courier's work list.
func (s *Server) ListClaimableOrders(ctx echo.Context, id servers.ID) error {
	courierID, err := domainID(id)
	if err != nil {
		return badRequest(ctx, "Invalid courier id", err)
	}

	query, err := queries.NewListClaimableOrdersQuery(courierID)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.h.ListClaimableOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.ClaimableOrder, len(orders))
	for i, o := range orders {
		response[i] = claimableOrderOf(o)
	}

	return ctx.JSON(http.StatusOK, response)
}
