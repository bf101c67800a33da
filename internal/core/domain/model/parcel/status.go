package parcel

import "courier/internal/pkg/errs"

// Status represents the delivery lifecycle state of a parcel.
// It implements a state machine with an explicit transition table so the
// lifecycle invariant lives in one place instead of scattered conditionals.
//
// State transitions:
//
//	Pending ──┬──> OnTheWay ──> Delivered
//	          │
//	          └──> Canceled
//
// Delivered and Canceled are terminal; no transition leaves them.
// Payment is deliberately not part of this enum: whether a parcel is paid
// is an orthogonal attribute on the aggregate, since a parcel may be paid
// before, during, or after delivery progression.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a parcel is booked.
	// Parcels in this status are waiting to be assigned to a delivery agent.
	Pending

	// OnTheWay indicates the parcel has been assigned and is in transit.
	OnTheWay

	// Delivered indicates the parcel reached its receiver.
	// This is a terminal state.
	Delivered

	// Canceled indicates the booking was canceled before assignment.
	// This is a terminal state.
	Canceled
)

// statusStrings maps every Status to its wire representation.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		OnTheWay:  "on_the_way",
		Delivered: "delivered",
		Canceled:  "canceled",
	}
}

// validStatusStrings maps only valid Status values, to support validation
// and parsing of external input.
func validStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		OnTheWay:  "on_the_way",
		Delivered: "delivered",
		Canceled:  "canceled",
	}
}

// transitions is the exhaustive transition table of the delivery lifecycle.
// A (current, requested) pair is allowed iff it appears here.
func transitions() map[Status]map[Status]bool {
	return map[Status]map[Status]bool{
		Pending: {
			OnTheWay: true,
			Canceled: true,
		},
		OnTheWay: {
			Delivered: true,
		},
	}
}

// StatusFromString parses a wire-format status name ("pending",
// "on_the_way", "delivered", "canceled"). Returns an error for anything else.
func StatusFromString(s string) (Status, error) {
	for status, name := range validStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// Validate checks that the Status is one of the four valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer and
// is safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition can leave this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// CanTransitionTo reports whether the transition table permits moving from
// the current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	return transitions()[s][target]
}

// TransitionTo validates the requested transition against the table and
// returns the new status. On rejection the error names both the current
// and the requested state.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

// ValidateCanHaveAssignment enforces consistency between status and
// assignment reference: a parcel carries an assignment iff it is or was
// in transit.
//
// Rules:
//   - Pending and Canceled parcels must not reference an assignment
//   - OnTheWay and Delivered parcels must reference an assignment
func (s Status) ValidateCanHaveAssignment(assigned bool) error {
	if assigned && s != OnTheWay && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errs.NewInvalidStateError("parcel with assignment", s.String()),
		)
	}

	if !assigned && (s == OnTheWay || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errs.NewInvalidStateError("parcel without assignment", s.String()),
		)
	}

	return nil
}
