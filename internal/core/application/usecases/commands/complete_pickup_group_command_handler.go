package commands

import (
	"context"
	"log/slog"
	"time"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"
	"parcelroute/internal/core/ports"
	"parcelroute/internal/pkg/errs"
	"parcelroute/internal/pkg/fanout"
)

// PickupGroupSummary reports the outcome of a pickup group completion.
// Details carries one representative parcel's payload, the way the grouped
// list does.
type PickupGroupSummary struct {
	OwnerID        kernel.UUID
	ParcelCount    int64
	CompletedCount int64
	Details        parcel.Details
}

// CompletePickupGroupCommandHandler completes all pending pickups of a shop
// owner for the acting driver in one transaction.
//
// The completion itself is a conditional set-based update scoped to
// still-pending rows, so two drivers (or a retry) racing on the same group
// cannot double-complete it: the loser observes zero affected rows and gets
// AlreadyCompletedError. Oracle notifications happen strictly after the
// commit and are best-effort per parcel.
type CompletePickupGroupCommandHandler struct {
	uowFactory UoWFactory
	oracle     ports.RouteOracle
	logger     *slog.Logger
}

// NewCompletePickupGroupCommandHandler creates a handler for pickup group
// completion.
func NewCompletePickupGroupCommandHandler(
	uowFactory UoWFactory,
	oracle ports.RouteOracle,
	logger *slog.Logger,
) CompletePickupGroupCommandHandler {
	return CompletePickupGroupCommandHandler{
		uowFactory: uowFactory,
		oracle:     oracle,
		logger:     logger.With("component", "complete_pickup_group"),
	}
}

// Handle processes the pickup group completion command.
func (h CompletePickupGroupCommandHandler) Handle(
	ctx context.Context,
	command CompletePickupGroupCommand,
) (PickupGroupSummary, error) {
	if err := command.Validate(); err != nil {
		return PickupGroupSummary{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PickupGroupSummary{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()

	group, err := repo.GetOwnerPickupGroup(ctx, command.OwnerID(), command.DriverID())
	if err != nil {
		return PickupGroupSummary{}, err
	}
	if len(group) == 0 {
		return PickupGroupSummary{}, errs.NewObjectNotFoundError("ownerId", command.OwnerID())
	}

	pending := make([]kernel.UUID, 0, len(group))
	for _, p := range group {
		if p.PickupStatus().IsPending() {
			pending = append(pending, p.ID())
		}
	}
	if len(pending) == 0 {
		return PickupGroupSummary{}, errs.NewAlreadyCompletedError("ownerId", command.OwnerID())
	}

	completed, err := repo.MarkPickupGroupCompleted(ctx, command.OwnerID(), command.DriverID(), time.Now().UTC())
	if err != nil {
		return PickupGroupSummary{}, err
	}
	if completed == 0 {
		// A concurrent completer won between the read and the update.
		return PickupGroupSummary{}, errs.NewAlreadyCompletedError("ownerId", command.OwnerID())
	}

	if err = uow.Commit(ctx); err != nil {
		return PickupGroupSummary{}, err
	}

	h.notifyOracle(ctx, pending)

	return PickupGroupSummary{
		OwnerID:        command.OwnerID(),
		ParcelCount:    int64(len(group)),
		CompletedCount: completed,
		Details:        group[0].Details(),
	}, nil
}

// notifyOracle reports each completed pickup to the oracle and checks the
// plan-wide milestone. Runs after the commit: the local state is already
// durable, so every failure here is logged and swallowed.
func (h CompletePickupGroupCommandHandler) notifyOracle(ctx context.Context, parcelIDs []kernel.UUID) {
	outcomes := fanout.Broadcast(ctx, parcelIDs, func(ctx context.Context, id kernel.UUID) error {
		return h.oracle.NotifyCompletion(ctx, parcel.LifecyclePickup, id)
	})
	for _, failure := range fanout.Failed(outcomes) {
		h.logger.WarnContext(ctx, "Oracle pickup completion notification failed",
			"parcel_id", failure.Item.String(),
			"error", failure.Err)
	}

	allCompleted, err := h.oracle.AllPickupsCompleted(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "Oracle all-pickups-completed check failed", "error", err)
		return
	}
	if allCompleted {
		h.logger.InfoContext(ctx, "All pickups in the oracle plan are completed")
	}
}
