package commands

import (
	"context"
	"log/slog"
	"time"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"
	"parcelroute/internal/core/ports"
	"parcelroute/internal/pkg/errs"
)

// CompletedDelivery reports the outcome of a delivery completion, carrying
// the parcel's payload for the response view.
type CompletedDelivery struct {
	ParcelID     kernel.UUID
	TrackingCode parcel.TrackingCode
	Details      parcel.Details
	CompletedAt  time.Time
}

// CompleteDeliveryCommandHandler completes a single delivery inside one
// transaction. Like the pickup completion, the update is conditional on the
// row still being pending, so a retried or concurrent completion surfaces as
// AlreadyCompletedError instead of rewriting the timestamp. The oracle is
// notified after the commit, best-effort.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	oracle     ports.RouteOracle
	logger     *slog.Logger
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory UoWFactory,
	oracle ports.RouteOracle,
	logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		oracle:     oracle,
		logger:     logger.With("component", "complete_delivery"),
	}
}

// Handle processes the delivery completion command.
func (h CompleteDeliveryCommandHandler) Handle(
	ctx context.Context,
	command CompleteDeliveryCommand,
) (CompletedDelivery, error) {
	if err := command.Validate(); err != nil {
		return CompletedDelivery{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompletedDelivery{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()

	target, err := repo.GetByTrackingCode(ctx, command.TrackingCode(), command.DriverID())
	if err != nil {
		return CompletedDelivery{}, err
	}
	if !target.DeliveryStatus().IsPending() {
		return CompletedDelivery{}, errs.NewAlreadyCompletedError("trackingCode", command.TrackingCode().String())
	}

	completedAt := time.Now().UTC()
	rows, err := repo.MarkDeliveryCompleted(ctx, command.TrackingCode(), command.DriverID(), completedAt)
	if err != nil {
		return CompletedDelivery{}, err
	}
	if rows == 0 {
		// A concurrent completer won between the read and the update.
		return CompletedDelivery{}, errs.NewAlreadyCompletedError("trackingCode", command.TrackingCode().String())
	}

	if err = uow.Commit(ctx); err != nil {
		return CompletedDelivery{}, err
	}

	if err = h.oracle.NotifyCompletion(ctx, parcel.LifecycleDelivery, target.ID()); err != nil {
		h.logger.WarnContext(ctx, "Oracle delivery completion notification failed",
			"parcel_id", target.ID().String(),
			"error", err)
	}

	return CompletedDelivery{
		ParcelID:     target.ID(),
		TrackingCode: command.TrackingCode(),
		Details:      target.Details(),
		CompletedAt:  completedAt,
	}, nil
}
