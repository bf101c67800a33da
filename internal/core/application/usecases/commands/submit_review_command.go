package commands

import (
	"errors"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand represents a request to review the agent who delivered
// a parcel. The reviewed agent is resolved from the parcel's assignment, not
// supplied by the caller, so a review can never land on the wrong agent.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID   kernel.UUID
	parcelID   kernel.UUID
	reviewerID kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a command to submit a delivery review.
// The rating must fall within the agent rating scale; the comment may be empty.
func NewSubmitReviewCommand(
	reviewID kernel.UUID,
	parcelID kernel.UUID,
	reviewerID kernel.UUID,
	rating int,
	comment string,
) (SubmitReviewCommand, error) {
	command := SubmitReviewCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setReviewID(reviewID),
		command.setParcelID(parcelID),
		command.setReviewerID(reviewerID),
		command.setRating(rating),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitReviewCommandIsNotConstructed if validation fails.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier for the new review record.
func (c SubmitReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// ParcelID returns the identifier of the delivered parcel being reviewed.
func (c SubmitReviewCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ReviewerID returns the identifier of the reviewer.
func (c SubmitReviewCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

// Rating returns the rating on the agent rating scale.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the free-text feedback, possibly empty.
func (c SubmitReviewCommand) Comment() string {
	return c.comment
}

func (c *SubmitReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *SubmitReviewCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *SubmitReviewCommand) setReviewerID(reviewerID kernel.UUID) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	c.reviewerID = reviewerID
	return nil
}

func (c *SubmitReviewCommand) setRating(rating int) error {
	if rating < agent.MinRating || rating > agent.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, agent.MinRating, agent.MaxRating)
	}

	c.rating = rating
	return nil
}
