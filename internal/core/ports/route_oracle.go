package ports

import (
	"context"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"
)

// NextStop is the oracle's recommendation for a driver's next stop.
type NextStop struct {
	ParcelID kernel.UUID
}

// RouteOracle is the boundary to the external route-optimization service.
// The oracle is advisory: it never owns persisted state, and its
// unavailability degrades recommendations instead of failing operations.
//
// Implementations report transport failures, timeouts, and non-2xx responses
// as errors wrapping errs.ErrOracleUnavailable so callers can isolate them.
type RouteOracle interface {
	// NextStop asks for the driver's next recommended stop for the lifecycle.
	// Returns (nil, nil) when the oracle has no recommendation. The delivery
	// lookup forwards the caller's credential verbatim; an empty credential
	// for that lifecycle is a caller error (errs.MissingCredentialError),
	// not an oracle error.
	NextStop(ctx context.Context, lifecycle parcel.Lifecycle, driverID kernel.UUID, credential string) (*NextStop, error)

	// NotifyCompletion reports a completed parcel back to the oracle.
	// Best-effort from the caller's perspective: failures are logged and
	// swallowed per parcel.
	NotifyCompletion(ctx context.Context, lifecycle parcel.Lifecycle, parcelID kernel.UUID) error

	// AllPickupsCompleted asks whether every pickup in the oracle's plan is
	// done. Used purely for observability.
	AllPickupsCompleted(ctx context.Context) (bool, error)
}
