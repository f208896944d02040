package jobs

import (
	"context"
	"log/slog"

	"parcelroute/internal/core/application/usecases/commands"
	"parcelroute/internal/core/domain/model/parcel"
	"parcelroute/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// TargetRefreshJob periodically reconciles target flags with the oracle for
// every driver that still has eligible parcels today. This converges flags
// for drivers that are not actively polling their lists, and heals state
// after oracle outages.
//
// The delivery lookup requires a credential; the job forwards the configured
// service credential and skips the delivery lifecycle when none is set.
type TargetRefreshJob struct {
	handler           commands.SyncNextTargetCommandHandler
	parcels           ports.ParcelRepository
	serviceCredential string
	cron              *cron.Cron
	logger            *slog.Logger
}

// NewTargetRefreshJob creates a job that refreshes target flags every 30 seconds.
func NewTargetRefreshJob(
	handler commands.SyncNextTargetCommandHandler,
	parcels ports.ParcelRepository,
	serviceCredential string,
	logger *slog.Logger,
) *TargetRefreshJob {
	return &TargetRefreshJob{
		handler:           handler,
		parcels:           parcels,
		serviceCredential: serviceCredential,
		cron:              cron.New(cron.WithSeconds()),
		logger:            logger.With("component", "target_refresh_job"),
	}
}

// Start begins the target refresh job to run every 30 seconds.
func (j *TargetRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		j.refresh(ctx, parcel.LifecyclePickup, "")
		if j.serviceCredential != "" {
			j.refresh(ctx, parcel.LifecycleDelivery, j.serviceCredential)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Target refresh job started (running every 30 seconds)",
		"delivery_refresh_enabled", j.serviceCredential != "")
	return nil
}

// Stop stops the target refresh job.
func (j *TargetRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Target refresh job stopped")
}

// refresh runs the synchronizer for every active driver of the lifecycle.
// Per-driver failures are isolated: one driver's error never blocks the rest.
func (j *TargetRefreshJob) refresh(ctx context.Context, lifecycle parcel.Lifecycle, credential string) {
	driverIDs, err := j.parcels.ListActiveDriverIDs(ctx, lifecycle)
	if err != nil {
		j.logger.ErrorContext(ctx, "Target refresh failed to list active drivers",
			"lifecycle", lifecycle.String(),
			"error", err)
		return
	}

	for _, driverID := range driverIDs {
		cmd, cmdErr := commands.NewSyncNextTargetCommand(lifecycle, driverID, credential)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Target refresh skipped driver",
				"lifecycle", lifecycle.String(),
				"driver_id", driverID.String(),
				"error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Target refresh failed for driver",
				"lifecycle", lifecycle.String(),
				"driver_id", driverID.String(),
				"error", handleErr)
		}
	}
}
