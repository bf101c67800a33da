// Package assignment implements the assignment aggregate: an immutable
// record binding a parcel to the delivery agent responsible for it.
//
// An assignment exists only for parcels that are or were in transit, and at
// most one assignment is active per parcel at any time. Records are never
// mutated after creation; correcting an assignment means writing a new
// record and repointing the parcel, keeping the old one for audit.
package assignment

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment instance was
// not created through the NewAssignment or RestoreAssignment factory functions.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment is the immutable link between a parcel and a delivery agent.
// All fields are fixed at creation; there are no mutating methods.
type Assignment struct {
	// id is the unique identifier of the assignment
	id kernel.UUID

	// parcelID references the parcel being delivered
	parcelID kernel.UUID

	// agentID references the delivery agent responsible for the parcel
	agentID kernel.UUID

	// agentContact snapshots the agent's contact at assignment time
	agentContact kernel.Contact

	// approximateDeliveryDate is the computed estimate communicated on assignment
	approximateDeliveryDate time.Time

	createdAt time.Time

	// isConstructed ensures the assignment was created via a factory function
	isConstructed bool
}

// NewAssignment creates a validated, immutable assignment record.
// All parameters are required; the approximate delivery date must be set.
func NewAssignment(
	id kernel.UUID,
	parcelID kernel.UUID,
	agentID kernel.UUID,
	agentContact kernel.Contact,
	approximateDeliveryDate time.Time,
	createdAt time.Time,
) (*Assignment, error) {
	a := &Assignment{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setParcelID(parcelID),
		a.setAgentID(agentID),
		a.setAgentContact(agentContact),
		a.setApproximateDeliveryDate(approximateDeliveryDate),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id kernel.UUID,
	parcelID kernel.UUID,
	agentID kernel.UUID,
	agentContact kernel.Contact,
	approximateDeliveryDate time.Time,
	createdAt time.Time,
) (*Assignment, error) {
	return NewAssignment(id, parcelID, agentID, agentContact, approximateDeliveryDate, createdAt)
}

// Validate ensures the Assignment was built through a factory function.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two assignments by their unique identifiers.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// ParcelID returns the id of the parcel being delivered.
func (a *Assignment) ParcelID() kernel.UUID {
	return a.parcelID
}

// AgentID returns the id of the responsible delivery agent.
func (a *Assignment) AgentID() kernel.UUID {
	return a.agentID
}

// AgentContact returns the agent contact snapshot taken at assignment time.
func (a *Assignment) AgentContact() kernel.Contact {
	return a.agentContact
}

// ApproximateDeliveryDate returns the delivery estimate.
func (a *Assignment) ApproximateDeliveryDate() time.Time {
	return a.approximateDeliveryDate
}

// CreatedAt returns the assignment timestamp.
func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}

// setID validates and sets the assignment's unique identifier.
func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// setParcelID validates and sets the parcel reference.
func (a *Assignment) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	a.parcelID = parcelID
	return nil
}

// setAgentID validates and sets the agent reference.
func (a *Assignment) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("agentId", err)
	}
	a.agentID = agentID
	return nil
}

// setAgentContact validates and sets the agent contact snapshot.
func (a *Assignment) setAgentContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("agentContact", err)
	}
	a.agentContact = contact
	return nil
}

// setApproximateDeliveryDate validates and sets the delivery estimate.
func (a *Assignment) setApproximateDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("approximateDeliveryDate")
	}
	a.approximateDeliveryDate = date
	return nil
}
