package commands

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrAssignParcelCommandIsNotConstructed = errors.New(
	"AssignParcelCommand must be created via NewAssignParcelCommand constructor",
)

// AssignParcelCommand represents a request to assign a pending parcel to a
// delivery agent. Carries a snapshot of the agent's contact details so the
// assignment record stays readable even if the agent is later edited.
type AssignParcelCommand struct { //nolint:recvcheck //using for validation
	assignmentID            kernel.UUID
	parcelID                kernel.UUID
	agentID                 kernel.UUID
	agentContact            kernel.Contact
	approximateDeliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewAssignParcelCommand creates a command to assign a parcel to an agent.
// All identifiers must be valid and the approximate delivery date must be set.
func NewAssignParcelCommand(
	assignmentID kernel.UUID,
	parcelID kernel.UUID,
	agentID kernel.UUID,
	agentContact kernel.Contact,
	approximateDeliveryDate time.Time,
) (AssignParcelCommand, error) {
	command := AssignParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setParcelID(parcelID),
		command.setAgentID(agentID),
		command.setAgentContact(agentContact),
		command.setApproximateDeliveryDate(approximateDeliveryDate),
	); err != nil {
		return AssignParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignParcelCommandIsNotConstructed if validation fails.
func (c AssignParcelCommand) Validate() error {
	return c.guard.Validate(ErrAssignParcelCommandIsNotConstructed)
}

// AssignmentID returns the identifier for the new assignment record.
func (c AssignParcelCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// ParcelID returns the identifier of the parcel being assigned.
func (c AssignParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// AgentID returns the identifier of the delivery agent.
func (c AssignParcelCommand) AgentID() kernel.UUID {
	return c.agentID
}

// AgentContact returns the snapshot of the agent's contact details.
func (c AssignParcelCommand) AgentContact() kernel.Contact {
	return c.agentContact
}

// ApproximateDeliveryDate returns the estimated delivery date.
func (c AssignParcelCommand) ApproximateDeliveryDate() time.Time {
	return c.approximateDeliveryDate
}

func (c *AssignParcelCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *AssignParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AssignParcelCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *AssignParcelCommand) setAgentContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}

	c.agentContact = contact
	return nil
}

func (c *AssignParcelCommand) setApproximateDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("approximateDeliveryDate")
	}

	c.approximateDeliveryDate = date
	return nil
}
