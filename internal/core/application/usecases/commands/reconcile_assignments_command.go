package commands

import (
	"errors"
	"time"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrReconcileAssignmentsCommandIsNotConstructed = errors.New(
	"ReconcileAssignmentsCommand must be created via NewReconcileAssignmentsCommand constructor",
)

// ReconcileAssignmentsCommand triggers cleanup of orphaned assignment records.
// An assignment is orphaned when it was written but its parcel never left
// "pending", which can only happen if an assignment workflow was interrupted
// between steps. The grace period keeps in-flight workflows out of scope.
//
// Example:
//
//	cmd, _ := NewReconcileAssignmentsCommand(10 * time.Minute)
//	handler := NewReconcileAssignmentsCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Reconciliation failed: %v", err)
//	}
type ReconcileAssignmentsCommand struct { //nolint:recvcheck //using for validation
	gracePeriod time.Duration

	guard guard.ConstructorGuard
}

// NewReconcileAssignmentsCommand creates a command to clean up orphaned
// assignments older than the grace period. The period must be positive.
func NewReconcileAssignmentsCommand(gracePeriod time.Duration) (ReconcileAssignmentsCommand, error) {
	command := ReconcileAssignmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setGracePeriod(gracePeriod); err != nil {
		return ReconcileAssignmentsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcileAssignmentsCommandIsNotConstructed if validation fails.
func (c ReconcileAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileAssignmentsCommandIsNotConstructed)
}

// GracePeriod returns how old an orphaned assignment must be before cleanup.
func (c ReconcileAssignmentsCommand) GracePeriod() time.Duration {
	return c.gracePeriod
}

func (c *ReconcileAssignmentsCommand) setGracePeriod(gracePeriod time.Duration) error {
	if gracePeriod <= 0 {
		return errs.NewValueIsInvalidError("gracePeriod")
	}

	c.gracePeriod = gracePeriod
	return nil
}
