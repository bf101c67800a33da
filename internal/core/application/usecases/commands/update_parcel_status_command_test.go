package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateParcelStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateParcelStatusCommand(id, parcel.Delivered)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ParcelID())
	assert.Equal(t, parcel.Delivered, cmd.TargetStatus())
}

func TestNewUpdateParcelStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateParcelStatusCommand(kernel.NewUUID(), parcel.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateParcelStatusCommand_InvalidParcelID(t *testing.T) {
	_, err := commands.NewUpdateParcelStatusCommand(kernel.UUID{}, parcel.Delivered)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUpdateParcelStatusCommand_NotConstructed(t *testing.T) {
	var cmd commands.UpdateParcelStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateParcelStatusCommandIsNotConstructed)
}
