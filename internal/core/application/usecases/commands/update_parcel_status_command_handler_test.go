package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateParcelStatusCommandHandler_Handle_Deliver(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	inTransit := onTheWayParcel(t, parcelID, kernel.NewUUID())
	cmd, _ := commands.NewUpdateParcelStatusCommand(parcelID, parcel.Delivered)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, parcelID).Return(inTransit, nil).Once(),
		parcelRepo.On("UpdateWhereStatus", mock.Anything, inTransit, parcel.OnTheWay).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, parcel.Delivered, inTransit.Status())
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateParcelStatusCommandHandler_Handle_Cancel(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	pending := pendingParcel(t, parcelID)
	cmd, _ := commands.NewUpdateParcelStatusCommand(parcelID, parcel.Canceled)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, parcelID).Return(pending, nil).Once(),
		parcelRepo.On("UpdateWhereStatus", mock.Anything, pending, parcel.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, parcel.Canceled, pending.Status())
}

func TestUpdateParcelStatusCommandHandler_Handle_OnTheWayNeedsAssignment(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	pending := pendingParcel(t, parcelID)
	cmd, _ := commands.NewUpdateParcelStatusCommand(parcelID, parcel.OnTheWay)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, parcelID).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrMissingAssignment)
	assert.Equal(t, parcel.Pending, pending.Status())
}

func TestUpdateParcelStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	done := deliveredParcel(t, parcelID, kernel.NewUUID())
	cmd, _ := commands.NewUpdateParcelStatusCommand(parcelID, parcel.Canceled)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, parcelID).Return(done, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "from delivered to canceled")
}

func TestUpdateParcelStatusCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	inTransit := onTheWayParcel(t, parcelID, kernel.NewUUID())
	cmd, _ := commands.NewUpdateParcelStatusCommand(parcelID, parcel.Delivered)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, parcelID).Return(inTransit, nil).Once(),
		parcelRepo.On("UpdateWhereStatus", mock.Anything, inTransit, parcel.OnTheWay).
			Return(errs.NewConflictError("parcel", parcelID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
}
