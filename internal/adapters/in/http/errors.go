package http

import (
	"errors"
	"log/slog"
	"net/http"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/generated/servers"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errUnauthenticated = errors.New("authentication credentials were not provided")

// Stable reason codes clients can switch on.
const (
	reasonUnauthenticated = "unauthenticated"
	reasonForbidden       = "forbidden"
	reasonNotFound        = "not_found"
	reasonCartEmpty       = "cart_empty"
	reasonAlreadyAssigned = "order_already_assigned"
	reasonInvalidRole     = "invalid_role"
	reasonSelfAssignment  = "self_assignment"
	reasonInvalidRequest  = "invalid_request"
	reasonConflict        = "conflict"
	reasonInternal        = "internal_error"
)

// classify maps an application error to its HTTP status and reason code.
// Checks run from the most to the least specific kind.
func classify(err error) (int, string) {
	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized, reasonUnauthenticated
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, reasonForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, reasonNotFound
	case errors.Is(err, cart.ErrCartIsEmpty):
		return http.StatusBadRequest, reasonCartEmpty
	case errors.Is(err, order.ErrAlreadyAssigned):
		return http.StatusConflict, reasonAlreadyAssigned
	case errors.Is(err, services.ErrAssigneeIsNotDeliveryCrew):
		return http.StatusUnprocessableEntity, reasonInvalidRole
	case errors.Is(err, services.ErrSelfAssignment):
		return http.StatusUnprocessableEntity, reasonSelfAssignment
	case errors.Is(err, ports.ErrPrincipalAlreadyExists):
		return http.StatusConflict, reasonConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, reasonInvalidRequest
	case errors.As(err, &httpErr):
		return httpErr.Code, reasonForStatus(httpErr.Code)
	default:
		return http.StatusInternalServerError, reasonInternal
	}
}

func reasonForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return reasonUnauthenticated
	case http.StatusForbidden:
		return reasonForbidden
	case http.StatusNotFound:
		return reasonNotFound
	case http.StatusConflict:
		return reasonConflict
	}
	if status >= http.StatusInternalServerError {
		return reasonInternal
	}
	return reasonInvalidRequest
}

// fail writes err as a servers.Error body. Internal errors are logged and
// their text is not exposed.
func (s *Server) fail(ctx echo.Context, err error) error {
	return writeError(ctx, s.logger, err)
}

func writeError(ctx echo.Context, logger *slog.Logger, err error) error {
	status, reason := classify(err)

	message := err.Error()
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Reason:  reason,
		Message: message,
	})
}

// ErrorHandler renders errors escaping handlers and middleware, such as
// unknown routes and request validation failures, in the servers.Error shape.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}
		_ = writeError(ctx, logger, err)
	}
}
