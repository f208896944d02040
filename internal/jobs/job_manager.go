package jobs

import (
	"fmt"
	"log/slog"

	"parcelroute/internal/core/application/usecases/commands"
	"parcelroute/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	targetRefreshJob *TargetRefreshJob
	pickupMilestone  *PickupMilestoneJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the synchronizer handler, a parcel repository for driver discovery,
// and the oracle port as dependencies.
func NewJobManager(
	syncHandler commands.SyncNextTargetCommandHandler,
	parcels ports.ParcelRepository,
	oracle ports.RouteOracle,
	serviceCredential string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		targetRefreshJob: NewTargetRefreshJob(syncHandler, parcels, serviceCredential, logger),
		pickupMilestone:  NewPickupMilestoneJob(oracle, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.targetRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start target refresh job: %w", err)
	}

	if err := jm.pickupMilestone.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.targetRefreshJob.Stop()
		return fmt.Errorf("failed to start pickup milestone job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.targetRefreshJob.Stop()
	jm.pickupMilestone.Stop()
}
