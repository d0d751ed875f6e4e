package http

import (
	"errors"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusFor maps an application error onto an HTTP status code. Not found and
// conflicts are checked before validation because a joined error may carry
// both.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStatusTransitionIsInvalid),
		errors.Is(err, services.ErrNoLocationAvailable),
		errors.Is(err, services.ErrNoSuitableLocation),
		errors.Is(err, commands.ErrDestinationHasNoCapacity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the mapped status. Internal errors are logged and their
// text is not exposed to the client.
func (s *Server) respondError(ctx echo.Context, err error, fallback string) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.log.Error(fallback,
			zap.Error(err),
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
		)
		return ctx.JSON(code, Error{Code: code, Message: fallback})
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
