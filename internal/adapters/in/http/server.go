// Package http exposes the dispatch engine as a JSON API on echo.
//
// The contract lives in api/openapi.yml; Server implements the generated
// servers.ServerInterface and RegisterRoutes mounts it next to the Swagger UI:
//
//	e := echo.New()
//	server := http.NewServer(handlers, logger)
//	server.RegisterRoutes(e)
//
// Every error is answered with servers.Error{Code, Message}; Code is errs.CodeOf of
// the failure and decides the HTTP status.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"waterdelivery/internal/core/application/usecases/commands"
	"waterdelivery/internal/core/application/usecases/queries"
	"waterdelivery/internal/core/domain/model/ledger"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/ports"
	"waterdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// CommandHandler is a use case that only reports success or failure.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// Handler is a use case that returns a result.
type Handler[Q, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// Handlers lists the use cases served over HTTP.
type Handlers struct {
	// Clients
	RegisterClient   CommandHandler[commands.RegisterClientCommand]
	PostLedgerEntry  Handler[commands.PostLedgerEntryCommand, *ledger.Entry]
	SettleClientDebt Handler[commands.SettleClientDebtCommand, *ledger.Entry]
	GetClientLedger  Handler[queries.GetClientLedgerQuery, queries.ClientLedgerResponse]

	// Couriers
	CreateCourier         CommandHandler[commands.CreateCourierCommand]
	SetCourierActive      CommandHandler[commands.SetCourierActiveCommand]
	UpdateCourierPosition CommandHandler[commands.UpdateCourierPositionCommand]
	GetAllCouriers        Handler[queries.GetAllCouriersQuery, []queries.CourierResponse]
	GetCourierPosition    Handler[queries.GetCourierPositionQuery, ports.Position]
	ListClaimableOrders   Handler[queries.ListClaimableOrdersQuery, []queries.ClaimableOrderResponse]

	// Orders
	CreateOrder     Handler[commands.CreateOrderCommand, *order.Order]
	ClaimOrder      Handler[commands.ClaimOrderCommand, *order.Order]
	StartTransit    Handler[commands.StartTransitCommand, *order.Order]
	ConfirmDelivery Handler[commands.ConfirmDeliveryCommand, *order.Order]
	CancelOrder     Handler[commands.CancelOrderCommand, *order.Order]
	TrackOrder      Handler[queries.TrackOrderQuery, queries.TrackOrderResponse]

	ListNotifications Handler[queries.ListNotificationsQuery, []queries.NotificationResponse]
}

var _ servers.ServerInterface = (*Server)(nil)

// Server translates HTTP requests into commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts the API, the health check and the Swagger UI on e. Parameter
// errors raised by the generated router are answered in the same Error shape as the
// handlers use.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = s.errorHandler(e.HTTPErrorHandler)
	servers.RegisterHandlers(e, s)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
