package commands

import (
	"context"
	"time"
)

// MarkParcelPaidCommandHandler records payment for a parcel.
// Canceled parcels reject payment; paying an already-paid parcel is a no-op.
// The row is written with a compare-and-swap on the status read in this
// transaction, so a concurrent lifecycle transition cannot be overwritten
// by the payment write; the loser gets errs.ErrConflict and may retry.
type MarkParcelPaidCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewMarkParcelPaidCommandHandler creates a handler for payment recording.
func NewMarkParcelPaidCommandHandler(uowFactory ParcelUoWFactory) MarkParcelPaidCommandHandler {
	return MarkParcelPaidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command within a transaction.
func (h MarkParcelPaidCommandHandler) Handle(ctx context.Context, cmd MarkParcelPaidCommand) error {
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
	if err = aggregate.MarkPaid(time.Now().UTC()); err != nil {
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
