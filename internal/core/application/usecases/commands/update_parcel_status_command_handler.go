package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/model/parcel"
	"courier/internal/pkg/errs"
)

// UpdateParcelStatusCommandHandler handles lifecycle status changes.
// Delegates transition rules to the parcel aggregate and persists the result
// with a compare-and-swap on the previous status, so concurrent writers
// cannot both apply a transition from the same starting state.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateParcelStatusCommandHandler creates a handler for status change operations.
func NewUpdateParcelStatusCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// A request for "on_the_way" is rejected with a missing assignment error:
// that transition only happens through the assignment workflow, which
// records which agent took the parcel.
func (h UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) error {
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

	previous := aggregate.Status()
	now := time.Now().UTC()

	switch cmd.TargetStatus() {
	case parcel.Delivered:
		err = aggregate.Deliver(now)
	case parcel.Canceled:
		err = aggregate.Cancel(now)
	case parcel.OnTheWay:
		return errs.NewMissingAssignmentError(cmd.ParcelID().String())
	default:
		_, err = previous.TransitionTo(cmd.TargetStatus())
	}
	if err != nil {
		return err
	}

	if err = parcelRepo.UpdateWhereStatus(ctx, aggregate, previous); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
