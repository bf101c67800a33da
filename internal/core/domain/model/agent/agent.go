// Package agent implements the delivery agent aggregate and its embedded
// rating aggregate.
//
// The rating aggregate is a running mean: the agent record carries
// totalReviews and averageRating, and RecordRating folds one more rating
// into the pair without rescanning past reviews. The incremental update is
// exact, not approximate: after any sequence of accepted ratings the stored
// average equals the arithmetic mean of all of them to floating-point
// precision. Keeping the pair consistent under concurrent submissions is
// the persistence layer's job (conditional update on totalReviews); the
// aggregate itself only knows how to fold.
package agent

import (
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// Rating bounds accepted from reviewers.
const (
	MinRating = 1
	MaxRating = 5
)

// ErrAgentIsNotConstructed is returned when an Agent instance was not created
// through the NewAgent or RestoreAgent factory functions.
var ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")

// Agent represents a delivery agent responsible for transporting parcels.
// Besides identity and contact details it embeds the rating aggregate
// (totalReviews, averageRating) that customer reviews fold into.
//
// Invariants:
//   - totalReviews is non-negative
//   - averageRating is within [MinRating, MaxRating] once totalReviews > 0,
//     and zero while no review has been recorded
//   - averageRating equals the arithmetic mean of every rating ever recorded
type Agent struct {
	// id is the unique identifier of the agent
	id kernel.UUID

	// contact carries the agent's name and reachability details
	contact kernel.Contact

	// totalReviews counts accepted reviews; drives the incremental mean
	totalReviews int

	// averageRating is the running mean of all accepted ratings
	averageRating float64

	createdAt time.Time

	// isConstructed ensures the agent was created via a factory function
	isConstructed bool
}

// NewAgent registers a new delivery agent with a zero rating aggregate.
func NewAgent(id kernel.UUID, contact kernel.Contact, createdAt time.Time) (*Agent, error) {
	a := &Agent{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setContact(contact),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent reconstructs an agent from persistence, re-checking the
// rating aggregate's structural invariants.
func RestoreAgent(
	id kernel.UUID,
	contact kernel.Contact,
	totalReviews int,
	averageRating float64,
	createdAt time.Time,
) (*Agent, error) {
	if totalReviews < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalReviews",
			fmt.Errorf("%d is negative", totalReviews))
	}
	if totalReviews == 0 && averageRating != 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("averageRating",
			fmt.Errorf("%v with no reviews", averageRating))
	}
	if totalReviews > 0 && (averageRating < MinRating || averageRating > MaxRating) {
		return nil, errs.NewValueIsOutOfRangeError("averageRating", averageRating, MinRating, MaxRating)
	}

	a := &Agent{
		totalReviews:  totalReviews,
		averageRating: averageRating,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setContact(contact),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Agent was built through a factory function.
func (a *Agent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}
	return nil
}

// IsEqual compares two agents by their unique identifiers.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Contact returns the agent's contact details.
func (a *Agent) Contact() kernel.Contact {
	return a.contact
}

// TotalReviews returns the number of reviews folded into the aggregate.
func (a *Agent) TotalReviews() int {
	return a.totalReviews
}

// AverageRating returns the running mean of all accepted ratings, or 0
// while no review has been recorded.
func (a *Agent) AverageRating() float64 {
	return a.averageRating
}

// CreatedAt returns the registration timestamp.
func (a *Agent) CreatedAt() time.Time {
	return a.createdAt
}

// RecordRating folds one more rating into the running aggregate:
//
//	newAverage = (averageRating*totalReviews + rating) / (totalReviews+1)
//
// The rating must be an integer in [MinRating, MaxRating]; anything else is
// rejected with a ValueIsOutOfRange error and leaves the aggregate unchanged.
func (a *Agent) RecordRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	a.averageRating = (a.averageRating*float64(a.totalReviews) + float64(rating)) / float64(a.totalReviews+1)
	a.totalReviews++
	return nil
}

// setID validates and sets the agent's unique identifier.
func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// setContact validates and sets the agent's contact details.
func (a *Agent) setContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("contact", err)
	}
	a.contact = contact
	return nil
}
