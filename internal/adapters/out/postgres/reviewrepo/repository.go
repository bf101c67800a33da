package reviewrepo

import (
	"context"
	"errors"
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/review"
	"courier/internal/pkg/db"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review to the database. The unique index on
// (parcel_id, reviewer_id) is the last line of defense against duplicate
// reviews; violations are reported as DuplicateReview errors.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if db.IsUniqueViolation(err, "ux_reviews_parcel_reviewer") {
			return errs.NewDuplicateReviewError(
				aggregate.ParcelID().String(),
				aggregate.ReviewerID().String(),
			)
		}
		return storeError(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByParcelAndReviewer retrieves the review a reviewer left for a parcel.
func (r *GormReviewRepository) GetByParcelAndReviewer(
	ctx context.Context,
	parcelID, reviewerID kernel.UUID,
) (*review.Review, error) {
	if err := errors.Join(parcelID.Validate(), reviewerID.Validate()); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	err := r.db.WithContext(ctx).
		First(&dto, "parcel_id = ? AND reviewer_id = ?", parcelID.Bytes(), reviewerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(
				"review",
				fmt.Sprintf("parcel %s by reviewer %s", parcelID, reviewerID),
			)
		}
		return nil, storeError(err)
	}

	return toDomain(dto)
}

// GetAllByAgent retrieves all reviews recorded for an agent, newest first.
func (r *GormReviewRepository) GetAllByAgent(
	ctx context.Context,
	agentID kernel.UUID,
) ([]*review.Review, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReviewDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "agent_id = ?", agentID.Bytes()).Error
	if err != nil {
		return nil, storeError(err)
	}

	reviews := make([]*review.Review, 0, len(dtos))
	for _, dto := range dtos {
		rv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	return reviews, nil
}

// storeError classifies connection-level driver failures as store unavailability.
func storeError(err error) error {
	if db.IsConnectionFailure(err) {
		return errs.NewStoreUnavailableError(err)
	}
	return err
}
