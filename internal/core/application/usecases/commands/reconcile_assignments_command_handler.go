package commands

import (
	"context"
	"time"

	"courier/internal/pkg/errs"
)

// ReconcileAssignmentsCommandHandler removes orphaned assignment records.
// Runs inside a single transaction; if any removal fails the whole batch
// rolls back and is reported as a partial failure for the next run to retry.
type ReconcileAssignmentsCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewReconcileAssignmentsCommandHandler creates a handler for assignment cleanup.
func NewReconcileAssignmentsCommandHandler(uowFactory AssignmentUoWFactory) ReconcileAssignmentsCommandHandler {
	return ReconcileAssignmentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
func (h ReconcileAssignmentsCommandHandler) Handle(ctx context.Context, cmd ReconcileAssignmentsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.GracePeriod())
	orphaned, err := uow.AssignmentRepository().GetOrphaned(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, record := range orphaned {
		if err = uow.AssignmentRepository().Remove(ctx, record.ID()); err != nil {
			return errs.NewPartialFailureError("assignment reconciliation", err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
