package http

import (
	"net/http"

	"waterdelivery/internal/core/application/usecases/queries"
	"waterdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListNotifications handles GET /api/v1/notifications - the in-app feed, newest first.
func (s *Server) ListNotifications(ctx echo.Context, params servers.ListNotificationsParams) error {
	notifications, err := s.h.ListNotifications.Handle(
		ctx.Request().Context(),
		queries.NewListNotificationsQuery(limitOf(params.Limit)),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Notification, len(notifications))
	for i, n := range notifications {
		response[i] = notificationOf(n)
	}

	return ctx.JSON(http.StatusOK, response)
}
