package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/model/assignment"
	"courier/internal/core/domain/model/parcel"
)

// AssignParcelCommandHandler orchestrates the parcel assignment workflow.
// Writes the assignment record and moves the parcel to "on_the_way" in a
// single transaction, so a failure at any step leaves no dangling record.
//
// Example:
//
//	handler := NewAssignParcelCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such parcel")
//	case errors.Is(err, errs.ErrConflict):
//	    log.Println("Another assignment won the race")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignParcelCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignParcelCommandHandler creates a handler for parcel assignment operations.
// Requires an AssignmentUoWFactory for coordinating transactional updates.
func NewAssignParcelCommandHandler(uowFactory AssignmentUoWFactory) AssignParcelCommandHandler {
	return AssignParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel assignment command.
// Loads the parcel, writes the assignment record and transitions the parcel
// to "on_the_way". The parcel row is updated only if it is still pending,
// so two concurrent assignments cannot both take the same parcel: the loser
// gets errs.ErrConflict.
func (h AssignParcelCommandHandler) Handle(ctx context.Context, cmd AssignParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	record, err := assignment.NewAssignment(
		cmd.AssignmentID(),
		cmd.ParcelID(),
		cmd.AgentID(),
		cmd.AgentContact(),
		cmd.ApproximateDeliveryDate(),
		now,
	)
	if err != nil {
		return err
	}

	if err = aggregate.Assign(cmd.AssignmentID(), now); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = parcelRepo.UpdateWhereStatus(ctx, aggregate, parcel.Pending); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
