package ports

import (
	"context"
	"time"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence operations for parcel aggregates.
//
// Every read and write is scoped by non-deleted rows, and list/flag
// operations are additionally scoped by the acting driver and the current
// calendar day. The two completion operations are conditional set-based
// updates: they only touch rows that are still pending, so a concurrent
// second completer observes zero affected rows instead of overwriting state.
type ParcelRepository interface {
	// GetByTrackingCode retrieves the single non-deleted parcel matching the
	// tracking code and delivery driver. A parcel assigned to a different
	// driver surfaces as errs.ObjectNotFoundError.
	GetByTrackingCode(ctx context.Context, code parcel.TrackingCode, driverID kernel.UUID) (*parcel.Parcel, error)

	// GetOwnerPickupGroup retrieves all non-deleted parcels of one shop owner
	// assigned to the pickup driver and scheduled for pickup today,
	// regardless of pickup status.
	GetOwnerPickupGroup(ctx context.Context, ownerID, driverID kernel.UUID) ([]*parcel.Parcel, error)

	// ClearNextTargets resets the lifecycle's target flag on every
	// non-deleted parcel of the driver scheduled today. Idempotent.
	ClearNextTargets(ctx context.Context, lifecycle parcel.Lifecycle, driverID kernel.UUID) error

	// SetNextTarget sets the lifecycle's target flag on the given parcel,
	// scoped to the driver so an oracle answer naming someone else's parcel
	// has no effect. Returns the number of rows affected.
	SetNextTarget(ctx context.Context, lifecycle parcel.Lifecycle, parcelID, driverID kernel.UUID) (int64, error)

	// MarkPickupGroupCompleted transitions every still-pending pickup of the
	// (owner, driver, today, non-deleted) group to completed in one
	// statement: status, completion timestamp, and cleared target flag.
	// Returns the number of parcels transitioned.
	MarkPickupGroupCompleted(ctx context.Context, ownerID, driverID kernel.UUID, completedAt time.Time) (int64, error)

	// MarkDeliveryCompleted transitions a still-pending delivery matching
	// (trackingCode, driver, non-deleted) to completed. Returns the number of
	// rows affected; zero means a concurrent completer won.
	MarkDeliveryCompleted(ctx context.Context, code parcel.TrackingCode, driverID kernel.UUID, completedAt time.Time) (int64, error)

	// ListActiveDriverIDs returns the distinct drivers that have non-deleted,
	// still-pending parcels scheduled today for the lifecycle. Used by the
	// periodic target refresh.
	ListActiveDriverIDs(ctx context.Context, lifecycle parcel.Lifecycle) ([]kernel.UUID, error)
}
