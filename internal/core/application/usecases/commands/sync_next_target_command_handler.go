package commands

import (
	"context"
	"errors"
	"log/slog"

	"parcelroute/internal/core/ports"
	"parcelroute/internal/pkg/errs"
)

// SyncNextTargetCommandHandler keeps a driver's target flags consistent with
// the oracle's recommendation.
//
// The reconciliation is clear-then-set inside one transaction: every
// today-scheduled parcel of the driver has its flag reset, then the
// recommended parcel (if any, and if it belongs to this driver) is flagged.
// An unreachable oracle degrades to "no parcel flagged" (stale flags are
// worse than no recommendation), and the handler stays idempotent: re-running
// it under the same conditions produces the same flag state.
type SyncNextTargetCommandHandler struct {
	uowFactory UoWFactory
	oracle     ports.RouteOracle
	logger     *slog.Logger
}

// NewSyncNextTargetCommandHandler creates a handler for target flag
// reconciliation.
func NewSyncNextTargetCommandHandler(
	uowFactory UoWFactory,
	oracle ports.RouteOracle,
	logger *slog.Logger,
) SyncNextTargetCommandHandler {
	return SyncNextTargetCommandHandler{
		uowFactory: uowFactory,
		oracle:     oracle,
		logger:     logger.With("component", "sync_next_target"),
	}
}

// Handle processes the reconciliation command.
//
// Oracle unavailability is isolated here: it is logged and treated as "no
// recommendation", never surfaced to the caller. A missing credential for
// the delivery lookup is a caller error and does propagate.
func (h SyncNextTargetCommandHandler) Handle(ctx context.Context, command SyncNextTargetCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	stop, err := h.oracle.NextStop(ctx, command.Lifecycle(), command.DriverID(), command.Credential())
	if err != nil {
		if errors.Is(err, errs.ErrMissingCredential) {
			return err
		}
		h.logger.WarnContext(ctx, "Oracle next-stop lookup failed, degrading to no recommendation",
			"lifecycle", command.Lifecycle().String(),
			"driver_id", command.DriverID().String(),
			"error", err)
		stop = nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()

	if err = repo.ClearNextTargets(ctx, command.Lifecycle(), command.DriverID()); err != nil {
		return err
	}

	if stop != nil {
		rows, setErr := repo.SetNextTarget(ctx, command.Lifecycle(), stop.ParcelID, command.DriverID())
		if setErr != nil {
			return setErr
		}
		if rows == 0 {
			h.logger.WarnContext(ctx, "Oracle recommendation did not match any eligible parcel",
				"lifecycle", command.Lifecycle().String(),
				"driver_id", command.DriverID().String(),
				"parcel_id", stop.ParcelID.String())
		}
	}

	return uow.Commit(ctx)
}
