// Package jobs provides scheduled background tasks for the parcel delivery
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. AssignmentReconciliationJob - Runs every minute to remove assignments
// whose parcel never left pending, which can only result from an interrupted
// assignment workflow.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileHandler, gracePeriod, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reconciliation job uses the cron expression "0 * * * * *", running once
// a minute. Assignments younger than the configured grace period are left
// alone so in-flight workflows are never disturbed.
//
// # Error Handling
//
// Reconciliation failures are logged and retried on the next tick; a partial
// failure is logged distinctly because it means some orphaned rows survived
// the sweep.
package jobs
