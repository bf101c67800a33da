package commands

import (
	"context"
	"time"

	"courier/internal/core/domain/model/parcel"
)

// BookParcelCommandHandler handles the business logic for parcel booking.
// Creates new parcels in "pending" status, unpaid and unassigned.
type BookParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewBookParcelCommandHandler creates a handler for parcel booking operations.
// Requires a ParcelUoWFactory for transactional persistence.
func NewBookParcelCommandHandler(uowFactory ParcelUoWFactory) BookParcelCommandHandler {
	return BookParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel booking command.
// Creates the parcel in "pending" status and persists it within a transaction.
func (h *BookParcelCommandHandler) Handle(ctx context.Context, cmd BookParcelCommand) error {
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

	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.Sender(),
		cmd.Receiver(),
		cmd.WeightKg(),
		cmd.Cost(),
		cmd.RequestedDeliveryDate(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
