// Package jobs provides scheduled background tasks for the route service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep routing state fresh between driver requests.
//
// # Available Jobs
//
// 1. TargetRefreshJob - Runs every 30 seconds to reconcile target flags with
// the oracle for every driver that still has eligible parcels today
// 2. PickupMilestoneJob - Runs every minute to check the oracle's plan-wide
// pickup completion and log the milestone when it flips to completed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(syncHandler, parcels, oracle, serviceCredential, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs never abort on per-driver failures: each driver's refresh is isolated
// and logged, and oracle unavailability is already degraded inside the
// synchronizer. A failed tick leaves the previous flags in place; the next
// tick converges them.
package jobs
