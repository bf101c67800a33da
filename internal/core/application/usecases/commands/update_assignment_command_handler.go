package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/model/assignment"
	"courier/internal/core/domain/model/parcel"
)

// UpdateAssignmentCommandHandler handles replacement of a parcel's active
// assignment. Only parcels in "on_the_way" status qualify; the domain model
// rejects everything else with an invalid state error.
type UpdateAssignmentCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewUpdateAssignmentCommandHandler creates a handler for assignment replacement.
func NewUpdateAssignmentCommandHandler(uowFactory AssignmentUoWFactory) UpdateAssignmentCommandHandler {
	return UpdateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment replacement command.
// Writes a fresh assignment record and repoints the parcel at it. The parcel
// row is updated only if it is still "on_the_way", so a concurrent delivery
// or replacement surfaces as errs.ErrConflict instead of a silent overwrite.
func (h UpdateAssignmentCommandHandler) Handle(ctx context.Context, cmd UpdateAssignmentCommand) error {
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
		cmd.NewAssignmentID(),
		cmd.ParcelID(),
		cmd.AgentID(),
		cmd.AgentContact(),
		cmd.ApproximateDeliveryDate(),
		now,
	)
	if err != nil {
		return err
	}

	if err = aggregate.ReplaceAssignment(cmd.NewAssignmentID(), now); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = parcelRepo.UpdateWhereStatus(ctx, aggregate, parcel.OnTheWay); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
