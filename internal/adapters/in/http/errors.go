package http

import (
	"errors"
	"net/http"

	"waterdelivery/internal/generated/servers"
	"waterdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// requestError is a request that could not be parsed, found before any use case runs.
type requestError struct {
	message string
	err     error
}

func (e *requestError) Error() string {
	return e.message + ": " + e.err.Error()
}

func (e *requestError) Unwrap() error {
	return e.err
}

func statusOf(code errs.Code) int {
	switch code {
	case errs.CodeNotFound:
		return http.StatusNotFound
	case errs.CodeNotPending, errs.CodeInvalidState, errs.CodeAlreadyAssigned:
		return http.StatusConflict
	case errs.CodeForbidden:
		return http.StatusForbidden
	case errs.CodeValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail answers with the status of err's code. Internal errors are logged and their
// details are not sent to the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return badRequest(ctx, reqErr.message, reqErr.err)
	}

	code := errs.CodeOf(err)
	if code == errs.CodeInternal {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    string(errs.CodeInternal),
			Message: "internal error, retry later",
		})
	}

	return ctx.JSON(statusOf(code), servers.Error{Code: string(code), Message: err.Error()})
}

// badRequest answers 400 for requests that could not be parsed at all.
func badRequest(ctx echo.Context, message string, err error) error {
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if inner, ok := httpErr.Message.(string); ok {
				message += ": " + inner
			}
		} else {
			message += ": " + err.Error()
		}
	}

	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    string(errs.CodeValidation),
		Message: message,
	})
}

// errorHandler renders the 400 and 404 errors echo and the generated router raise
// before a handler runs. Everything else goes to next.
func (s *Server) errorHandler(next echo.HTTPErrorHandler) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var httpErr *echo.HTTPError
		if ctx.Response().Committed || !errors.As(err, &httpErr) {
			next(err, ctx)
			return
		}

		var renderErr error
		switch httpErr.Code {
		case http.StatusBadRequest:
			renderErr = badRequest(ctx, "Invalid request", httpErr)
		case http.StatusNotFound:
			renderErr = ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    string(errs.CodeNotFound),
				Message: "route not found",
			})
		default:
			next(err, ctx)
			return
		}

		if renderErr != nil {
			s.logger.ErrorContext(ctx.Request().Context(), "Failed to render error", "error", renderErr)
		}
	}
}
