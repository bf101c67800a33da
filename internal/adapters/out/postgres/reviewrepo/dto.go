// Package reviewrepo provides data transfer objects and mapping functions for
// review persistence. A unique index on (parcel_id, reviewer_id) backs the
// one-review-per-reviewer-per-parcel rule at the storage level.
package reviewrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_reviews_parcel_reviewer"`
	AgentID    uuid.UUID `gorm:"type:uuid;index"`
	ReviewerID uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_reviews_parcel_reviewer"`
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review domain aggregate to its database representation.
func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:         aggregate.ID().Bytes(),
		ParcelID:   aggregate.ParcelID().Bytes(),
		AgentID:    aggregate.AgentID().Bytes(),
		ReviewerID: aggregate.ReviewerID().Bytes(),
		Rating:     aggregate.Rating(),
		Comment:    aggregate.Comment(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a review domain aggregate.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	reviewerID, err := kernel.UUIDFromBytes(dto.ReviewerID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(
		id,
		parcelID,
		agentID,
		reviewerID,
		dto.Rating,
		dto.Comment,
		dto.CreatedAt,
	)
}
