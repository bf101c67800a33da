package commands_test

import (
	"testing"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignParcelCommand_ValidInput(t *testing.T) {
	assignmentID := kernel.NewUUID()
	parcelID := kernel.NewUUID()
	agentID := kernel.NewUUID()
	contact := testContact(t, "carol")

	cmd, err := commands.NewAssignParcelCommand(assignmentID, parcelID, agentID, contact, testDeliveryDate())
	require.NoError(t, err)
	assert.Equal(t, assignmentID, cmd.AssignmentID())
	assert.Equal(t, parcelID, cmd.ParcelID())
	assert.Equal(t, agentID, cmd.AgentID())
	assert.True(t, cmd.AgentContact().IsEqual(contact))
	assert.Equal(t, testDeliveryDate(), cmd.ApproximateDeliveryDate())
}

func TestNewAssignParcelCommand_InvalidIDs(t *testing.T) {
	var missing kernel.UUID
	contact := testContact(t, "carol")

	_, err := commands.NewAssignParcelCommand(missing, kernel.NewUUID(), kernel.NewUUID(), contact, testDeliveryDate())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewAssignParcelCommand(kernel.NewUUID(), missing, kernel.NewUUID(), contact, testDeliveryDate())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewAssignParcelCommand(kernel.NewUUID(), kernel.NewUUID(), missing, contact, testDeliveryDate())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAssignParcelCommand_MissingDate(t *testing.T) {
	_, err := commands.NewAssignParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testContact(t, "carol"), time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAssignParcelCommand_NotConstructed(t *testing.T) {
	var cmd commands.AssignParcelCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrAssignParcelCommandIsNotConstructed)
}
