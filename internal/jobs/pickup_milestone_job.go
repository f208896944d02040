package jobs

import (
	"context"
	"log/slog"
	"sync"

	"parcelroute/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PickupMilestoneJob periodically asks the oracle whether every pickup in the
// plan is completed and logs the milestone once per flip to true. Purely
// observational; no state in this service changes.
type PickupMilestoneJob struct {
	oracle ports.RouteOracle
	cron   *cron.Cron
	logger *slog.Logger

	// mu guards reported: cron does not serialize overlapping runs, and a
	// slow oracle call can outlive the tick interval.
	mu sync.Mutex
	// reported tracks the last observed flag so the milestone is logged
	// once per flip, not every minute.
	reported bool
}

// NewPickupMilestoneJob creates a job that checks the pickup milestone every minute.
func NewPickupMilestoneJob(oracle ports.RouteOracle, logger *slog.Logger) *PickupMilestoneJob {
	return &PickupMilestoneJob{
		oracle: oracle,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "pickup_milestone_job"),
	}
}

// Start begins the pickup milestone job to run every minute.
func (j *PickupMilestoneJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.check(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup milestone job started (running every minute)")
	return nil
}

// Stop stops the pickup milestone job.
func (j *PickupMilestoneJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup milestone job stopped")
}

// check runs one milestone tick: ask the oracle, log the milestone on a flip
// to true.
func (j *PickupMilestoneJob) check(ctx context.Context) {
	completed, err := j.oracle.AllPickupsCompleted(ctx)
	if err != nil {
		j.logger.WarnContext(ctx, "Pickup milestone check failed", "error", err)
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if completed && !j.reported {
		j.logger.InfoContext(ctx, "All pickups in the oracle plan are completed")
	}
	j.reported = completed
}
