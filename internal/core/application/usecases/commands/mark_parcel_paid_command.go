package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrMarkParcelPaidCommandIsNotConstructed = errors.New(
	"MarkParcelPaidCommand must be created via NewMarkParcelPaidCommand constructor",
)

// MarkParcelPaidCommand represents a request to record payment for a parcel.
// Payment is orthogonal to the delivery lifecycle; the command is idempotent.
type MarkParcelPaidCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkParcelPaidCommand creates a command to record payment for a parcel.
func NewMarkParcelPaidCommand(parcelID kernel.UUID) (MarkParcelPaidCommand, error) {
	command := MarkParcelPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setParcelID(parcelID); err != nil {
		return MarkParcelPaidCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkParcelPaidCommandIsNotConstructed if validation fails.
func (c MarkParcelPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkParcelPaidCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being paid for.
func (c MarkParcelPaidCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *MarkParcelPaidCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
