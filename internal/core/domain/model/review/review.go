// Package review implements the review aggregate: an immutable customer
// rating of a delivery agent for a single delivered parcel.
//
// At most one review exists per (parcel, reviewer) pair; the duplicate check
// and the fold into the agent's rating aggregate happen in the submit
// workflow, not here. Reviews are never mutated or deleted.
package review

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// ErrReviewIsNotConstructed is returned when a Review instance was not
// created through the NewReview or RestoreReview factory functions.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is an immutable record of a reviewer's rating and comment for the
// agent that delivered a parcel.
type Review struct {
	// id is the unique identifier of the review
	id kernel.UUID

	// parcelID references the delivered parcel being reviewed
	parcelID kernel.UUID

	// agentID references the rated delivery agent
	agentID kernel.UUID

	// reviewerID identifies the submitting customer
	reviewerID kernel.UUID

	// rating is an integer in [agent.MinRating, agent.MaxRating]
	rating int

	// comment is the reviewer's free-text feedback (may be empty)
	comment string

	createdAt time.Time

	// isConstructed ensures the review was created via a factory function
	isConstructed bool
}

// NewReview creates a validated, immutable review.
func NewReview(
	id kernel.UUID,
	parcelID kernel.UUID,
	agentID kernel.UUID,
	reviewerID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	r := &Review{
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setParcelID(parcelID),
		r.setAgentID(agentID),
		r.setReviewerID(reviewerID),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a review from persistence.
func RestoreReview(
	id kernel.UUID,
	parcelID kernel.UUID,
	agentID kernel.UUID,
	reviewerID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	return NewReview(id, parcelID, agentID, reviewerID, rating, comment, createdAt)
}

// Validate ensures the Review was built through a factory function.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// ParcelID returns the id of the reviewed parcel.
func (r *Review) ParcelID() kernel.UUID {
	return r.parcelID
}

// AgentID returns the id of the rated delivery agent.
func (r *Review) AgentID() kernel.UUID {
	return r.agentID
}

// ReviewerID returns the id of the submitting customer.
func (r *Review) ReviewerID() kernel.UUID {
	return r.reviewerID
}

// Rating returns the submitted rating.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the reviewer's free-text feedback.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns the submission timestamp.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

// setID validates and sets the review's unique identifier.
func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setParcelID validates and sets the parcel reference.
func (r *Review) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	r.parcelID = parcelID
	return nil
}

// setAgentID validates and sets the agent reference.
func (r *Review) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("agentId", err)
	}
	r.agentID = agentID
	return nil
}

// setReviewerID validates and sets the reviewer reference.
func (r *Review) setReviewerID(reviewerID kernel.UUID) error {
	if err := reviewerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("reviewerId", err)
	}
	r.reviewerID = reviewerID
	return nil
}

// setRating validates and sets the rating.
func (r *Review) setRating(rating int) error {
	if rating < agent.MinRating || rating > agent.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, agent.MinRating, agent.MaxRating)
	}
	r.rating = rating
	return nil
}
