package http

import (
	"errors"
	"net/http"

	"parcelroute/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps domain errors to HTTP responses at the boundary.
// Client errors carry the domain message; anything unclassified becomes a
// generic 500 with the internals logged, not leaked.
func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrAlreadyCompleted):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrMissingCredential):
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: err.Error(),
		})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
