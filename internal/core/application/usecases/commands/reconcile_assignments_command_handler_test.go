package commands_test

import (
	"errors"
	"testing"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/assignment"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewReconcileAssignmentsCommand(t *testing.T) {
	cmd, err := commands.NewReconcileAssignmentsCommand(10 * time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, cmd.GracePeriod())

	_, err = commands.NewReconcileAssignmentsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewReconcileAssignmentsCommand(-time.Minute)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var notConstructed commands.ReconcileAssignmentsCommand
	require.ErrorIs(t, notConstructed.Validate(), commands.ErrReconcileAssignmentsCommandIsNotConstructed)
}

func TestReconcileAssignmentsCommandHandler_Handle_RemovesOrphans(t *testing.T) {
	ctx := t.Context()
	first := testAssignment(t, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	second := testAssignment(t, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	cmd, _ := commands.NewReconcileAssignmentsCommand(10 * time.Minute)

	repo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(repo).Once(),
		repo.On("GetOrphaned", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*assignment.Assignment{first, second}, nil).Once(),
		uow.On("AssignmentRepository").Return(repo).Once(),
		repo.On("Remove", mock.Anything, first.ID()).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(repo).Once(),
		repo.On("Remove", mock.Anything, second.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileAssignmentsCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReconcileAssignmentsCommandHandler_Handle_NothingToClean(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReconcileAssignmentsCommand(10 * time.Minute)

	repo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(repo).Once(),
		repo.On("GetOrphaned", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*assignment.Assignment{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileAssignmentsCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
}

func TestReconcileAssignmentsCommandHandler_Handle_RemoveError(t *testing.T) {
	ctx := t.Context()
	orphan := testAssignment(t, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	cmd, _ := commands.NewReconcileAssignmentsCommand(10 * time.Minute)

	repo := new(MockAssignmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(repo).Once(),
		repo.On("GetOrphaned", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*assignment.Assignment{orphan}, nil).Once(),
		uow.On("AssignmentRepository").Return(repo).Once(),
		repo.On("Remove", mock.Anything, orphan.ID()).Return(errors.New("remove error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReconcileAssignmentsCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPartialFailure)
}
