package parcel

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
// through the NewParcel or RestoreParcel factory functions.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel represents a shipment request moving through the delivery lifecycle.
// It is the aggregate root that owns the state machine from booking through
// assignment to delivery or cancellation.
//
// Parcel maintains these invariants:
//   - Status transitions follow the table in Status (monotonic, no cycles)
//   - The assignment reference is non-nil iff status is OnTheWay or Delivered
//   - Weight is positive; cost is non-negative
//   - Paid is orthogonal to delivery status and never part of the enum
//   - Can only be created through NewParcel / RestoreParcel
//
// All fields are private; mutation happens only through validated methods,
// each of which refreshes the update timestamp.
type Parcel struct {
	// id is the unique identifier of the parcel
	id kernel.UUID

	// sender and receiver carry identity and contact info for both parties
	sender   kernel.Contact
	receiver kernel.Contact

	// weightKg is the declared parcel weight (must be positive)
	weightKg float64

	// cost is the delivery charge (must be non-negative)
	cost float64

	// requestedDeliveryDate is the date the customer asked for
	requestedDeliveryDate time.Time

	// status is the current state in the delivery lifecycle
	status Status

	// assignmentID references the active assignment (nil until assigned)
	assignmentID *kernel.UUID

	// paid records payment independently of delivery progression
	paid bool

	bookedAt  time.Time
	updatedAt time.Time

	// isConstructed ensures the parcel was created via a factory function
	isConstructed bool
}

// NewParcel books a new parcel in Pending status. This is the only way to
// create a valid Parcel; all business invariants are checked here.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - sender, receiver: validated contacts for both parties
//   - weightKg: declared weight, must be greater than 0
//   - cost: delivery charge, must not be negative
//   - requestedDeliveryDate: requested date, must not be zero
//   - bookedAt: booking timestamp supplied by the caller
func NewParcel(
	id kernel.UUID,
	sender kernel.Contact,
	receiver kernel.Contact,
	weightKg float64,
	cost float64,
	requestedDeliveryDate time.Time,
	bookedAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:        Pending,
		bookedAt:      bookedAt,
		updatedAt:     bookedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSender(sender),
		p.setReceiver(receiver),
		p.setWeight(weightKg),
		p.setCost(cost),
		p.setRequestedDeliveryDate(requestedDeliveryDate),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence. It re-checks the
// structural invariants, including the status/assignment consistency rule,
// so corrupt rows surface as errors instead of invalid aggregates.
func RestoreParcel(
	id kernel.UUID,
	sender kernel.Contact,
	receiver kernel.Contact,
	weightKg float64,
	cost float64,
	requestedDeliveryDate time.Time,
	status Status,
	assignmentID *kernel.UUID,
	paid bool,
	bookedAt time.Time,
	updatedAt time.Time,
) (*Parcel, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveAssignment(assignmentID != nil); err != nil {
		return nil, err
	}
	if assignmentID != nil {
		if err := assignmentID.Validate(); err != nil {
			return nil, err
		}
	}

	p := &Parcel{
		status:        status,
		assignmentID:  assignmentID,
		paid:          paid,
		bookedAt:      bookedAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSender(sender),
		p.setReceiver(receiver),
		p.setWeight(weightKg),
		p.setCost(cost),
		p.setRequestedDeliveryDate(requestedDeliveryDate),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Parcel was built through a factory function.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Sender returns the booking party's contact.
func (p *Parcel) Sender() kernel.Contact {
	return p.sender
}

// Receiver returns the receiving party's contact.
func (p *Parcel) Receiver() kernel.Contact {
	return p.receiver
}

// WeightKg returns the declared weight.
func (p *Parcel) WeightKg() float64 {
	return p.weightKg
}

// Cost returns the delivery charge.
func (p *Parcel) Cost() float64 {
	return p.cost
}

// RequestedDeliveryDate returns the delivery date the customer asked for.
func (p *Parcel) RequestedDeliveryDate() time.Time {
	return p.requestedDeliveryDate
}

// Status returns the current delivery lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// AssignmentID returns the active assignment reference, or nil while the
// parcel is unassigned.
func (p *Parcel) AssignmentID() *kernel.UUID {
	return p.assignmentID
}

// IsPaid reports whether payment has been recorded for this parcel.
func (p *Parcel) IsPaid() bool {
	return p.paid
}

// BookedAt returns the booking timestamp.
func (p *Parcel) BookedAt() time.Time {
	return p.bookedAt
}

// UpdatedAt returns the timestamp of the last validated mutation.
func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

// Assign moves the parcel to OnTheWay, binding it to the given assignment.
//
// The assignment reference is mandatory: a transition to OnTheWay without
// one is rejected with a MissingAssignment error, so the lifecycle can never
// show a parcel in transit that no agent is responsible for. The transition
// itself is validated against the status table (only Pending qualifies).
func (p *Parcel) Assign(assignmentID kernel.UUID, at time.Time) error {
	if err := assignmentID.Validate(); err != nil {
		return errs.NewMissingAssignmentError(p.id.String())
	}

	newStatus, err := p.status.TransitionTo(OnTheWay)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.assignmentID = &assignmentID
	p.updatedAt = at
	return nil
}

// ReplaceAssignment swaps the active assignment reference on a parcel that
// is already in transit, keeping the status unchanged. Used when correcting
// the agent or the approximate delivery date.
//
// Returns an InvalidState error unless the parcel is OnTheWay.
func (p *Parcel) ReplaceAssignment(assignmentID kernel.UUID, at time.Time) error {
	if err := assignmentID.Validate(); err != nil {
		return errs.NewMissingAssignmentError(p.id.String())
	}

	if p.status != OnTheWay {
		return errs.NewInvalidStateError(fmt.Sprintf("parcel %s", p.id), p.status.String())
	}

	p.assignmentID = &assignmentID
	p.updatedAt = at
	return nil
}

// Deliver marks the parcel as delivered. Only an OnTheWay parcel qualifies;
// Delivered is terminal.
func (p *Parcel) Deliver(at time.Time) error {
	newStatus, err := p.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.updatedAt = at
	return nil
}

// Cancel cancels the booking. Only a Pending parcel can be canceled;
// canceled parcels are retained for audit, never deleted.
func (p *Parcel) Cancel(at time.Time) error {
	newStatus, err := p.status.TransitionTo(Canceled)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.updatedAt = at
	return nil
}

// MarkPaid records payment for the parcel. Payment is orthogonal to the
// delivery lifecycle and may arrive before, during, or after delivery;
// only a canceled parcel rejects it. Marking an already-paid parcel paid
// again is a no-op.
func (p *Parcel) MarkPaid(at time.Time) error {
	if p.status == Canceled {
		return errs.NewInvalidStateError(fmt.Sprintf("parcel %s", p.id), p.status.String())
	}
	if p.paid {
		return nil
	}

	p.paid = true
	p.updatedAt = at
	return nil
}

// setID validates and sets the parcel's unique identifier.
func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setSender validates and sets the sender contact.
func (p *Parcel) setSender(sender kernel.Contact) error {
	if err := sender.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("sender", err)
	}
	p.sender = sender
	return nil
}

// setReceiver validates and sets the receiver contact.
func (p *Parcel) setReceiver(receiver kernel.Contact) error {
	if err := receiver.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("receiver", err)
	}
	p.receiver = receiver
	return nil
}

// setWeight validates and sets the weight. Weight must be positive.
func (p *Parcel) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg", fmt.Errorf("%v is not greater than 0", weightKg))
	}
	p.weightKg = weightKg
	return nil
}

// setCost validates and sets the cost. Cost must not be negative.
func (p *Parcel) setCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%v is negative", cost))
	}
	p.cost = cost
	return nil
}

// setRequestedDeliveryDate validates and sets the requested delivery date.
func (p *Parcel) setRequestedDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("requestedDeliveryDate")
	}
	p.requestedDeliveryDate = date
	return nil
}
