package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents a request to move a parcel to a new
// lifecycle status, typically "delivered" or "canceled". Transitions into
// "on_the_way" go through the assignment workflow instead, since they need
// an assignment record.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID     kernel.UUID
	targetStatus parcel.Status

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to change a parcel's status.
// The target status must be one of the known lifecycle statuses.
func NewUpdateParcelStatusCommand(parcelID kernel.UUID, targetStatus parcel.Status) (UpdateParcelStatusCommand, error) {
	command := UpdateParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setTargetStatus(targetStatus),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelStatusCommandIsNotConstructed if validation fails.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to update.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// TargetStatus returns the requested lifecycle status.
func (c UpdateParcelStatusCommand) TargetStatus() parcel.Status {
	return c.targetStatus
}

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setTargetStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.targetStatus = status
	return nil
}
