package http

import (
	"net/http"

	"parcelroute/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// driverIDContextKey is where the driver identity middleware stores the
// parsed driver id on the echo context.
const driverIDContextKey = "driverID"

// DriverIdentity authenticates driver endpoints. The upstream auth layer
// resolves the caller and injects X-Driver-Id; an absent or unparseable
// header is rejected with 401 before any handler runs. The raw Authorization
// header is left untouched so handlers can forward it to the oracle.
func DriverIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			raw := ctx.Request().Header.Get("X-Driver-Id")
			if raw == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Driver identity is required",
				})
			}

			driverID, err := kernel.UUIDFromString(raw)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Driver identity is invalid",
				})
			}

			ctx.Set(driverIDContextKey, driverID)
			return next(ctx)
		}
	}
}

// driverID retrieves the identity stored by DriverIdentity.
func driverID(ctx echo.Context) (kernel.UUID, bool) {
	id, ok := ctx.Get(driverIDContextKey).(kernel.UUID)
	return id, ok
}
