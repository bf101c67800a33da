package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// AssignmentReconciliationJob manages the scheduled cleanup of orphaned
// assignments. Runs every minute to delete assignment rows whose parcel is
// still pending past the grace period.
type AssignmentReconciliationJob struct {
	handler     commands.ReconcileAssignmentsCommandHandler
	gracePeriod time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewAssignmentReconciliationJob creates a new job for reconciling assignments.
// Assignments younger than gracePeriod are never touched.
func NewAssignmentReconciliationJob(
	handler commands.ReconcileAssignmentsCommandHandler,
	gracePeriod time.Duration,
	logger *slog.Logger,
) *AssignmentReconciliationJob {
	return &AssignmentReconciliationJob{
		handler:     handler,
		gracePeriod: gracePeriod,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "assignment_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run every minute.
func (j *AssignmentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewReconcileAssignmentsCommand(j.gracePeriod)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Assignment reconciliation misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// A partial failure means some orphaned rows survived the sweep
			// and will be retried on the next tick.
			if errors.Is(handleErr, errs.ErrPartialFailure) {
				j.logger.ErrorContext(ctx, "Assignment reconciliation partially failed", "error", handleErr)
				return
			}
			j.logger.ErrorContext(ctx, "Assignment reconciliation job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *AssignmentReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment reconciliation job stopped")
}
