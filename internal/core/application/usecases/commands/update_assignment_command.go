package commands

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrUpdateAssignmentCommandIsNotConstructed = errors.New(
	"UpdateAssignmentCommand must be created via NewUpdateAssignmentCommand constructor",
)

// UpdateAssignmentCommand represents a request to replace the active
// assignment on a parcel that is already in transit, for example to hand
// the delivery to a different agent or correct the estimated date.
//
// Assignment records are immutable, so replacing one writes a fresh record
// and repoints the parcel; the superseded record stays behind for audit.
type UpdateAssignmentCommand struct { //nolint:recvcheck //using for validation
	newAssignmentID         kernel.UUID
	parcelID                kernel.UUID
	agentID                 kernel.UUID
	agentContact            kernel.Contact
	approximateDeliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewUpdateAssignmentCommand creates a command to replace a parcel's assignment.
func NewUpdateAssignmentCommand(
	newAssignmentID kernel.UUID,
	parcelID kernel.UUID,
	agentID kernel.UUID,
	agentContact kernel.Contact,
	approximateDeliveryDate time.Time,
) (UpdateAssignmentCommand, error) {
	command := UpdateAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNewAssignmentID(newAssignmentID),
		command.setParcelID(parcelID),
		command.setAgentID(agentID),
		command.setAgentContact(agentContact),
		command.setApproximateDeliveryDate(approximateDeliveryDate),
	); err != nil {
		return UpdateAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateAssignmentCommandIsNotConstructed if validation fails.
func (c UpdateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAssignmentCommandIsNotConstructed)
}

// NewAssignmentID returns the identifier for the replacement assignment record.
func (c UpdateAssignmentCommand) NewAssignmentID() kernel.UUID {
	return c.newAssignmentID
}

// ParcelID returns the identifier of the parcel whose assignment is replaced.
func (c UpdateAssignmentCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// AgentID returns the identifier of the delivery agent.
func (c UpdateAssignmentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// AgentContact returns the snapshot of the agent's contact details.
func (c UpdateAssignmentCommand) AgentContact() kernel.Contact {
	return c.agentContact
}

// ApproximateDeliveryDate returns the estimated delivery date.
func (c UpdateAssignmentCommand) ApproximateDeliveryDate() time.Time {
	return c.approximateDeliveryDate
}

func (c *UpdateAssignmentCommand) setNewAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.newAssignmentID = id
	return nil
}

func (c *UpdateAssignmentCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateAssignmentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *UpdateAssignmentCommand) setAgentContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}

	c.agentContact = contact
	return nil
}

func (c *UpdateAssignmentCommand) setApproximateDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("approximateDeliveryDate")
	}

	c.approximateDeliveryDate = date
	return nil
}
