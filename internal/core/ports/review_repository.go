package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review records.
type ReviewRepository interface {
	// Add persists a new review record to storage.
	// Returns errs.ErrDuplicateReview when the reviewer has already
	// reviewed the parcel.
	Add(ctx context.Context, aggregate *review.Review) error

	// GetByParcelAndReviewer retrieves the review a reviewer left for a
	// parcel, if any.
	GetByParcelAndReviewer(ctx context.Context, parcelID, reviewerID kernel.UUID) (*review.Review, error)

	// GetAllByAgent retrieves all reviews recorded for an agent, newest first.
	GetAllByAgent(ctx context.Context, agentID kernel.UUID) ([]*review.Review, error)
}
