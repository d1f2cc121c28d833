package http

import (
	"errors"
	"net/http"

	"ustabar/internal/core/domain/model/order"
	"ustabar/internal/core/domain/services"
	"ustabar/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// badRequest responds with 400 and the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// handlerError maps errors coming out of command and query handlers to HTTP
// statuses. Command construction errors never reach here; they are rejected
// with 400 at the call site. Anything unrecognized is a store failure.
func handlerError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, order.ErrOrderNotOwnedByAccount):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Order belongs to another account",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Not found",
		})
	case errors.Is(err, services.ErrApplicationNotForOrder),
		errors.Is(err, services.ErrCannotAcceptSkip),
		errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}
