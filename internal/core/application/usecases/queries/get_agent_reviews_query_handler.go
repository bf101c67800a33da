package queries

import (
	"context"

	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentReviewsQueryHandler retrieves an agent's review history.
type GetAgentReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentReviewsQueryHandler creates a handler for agent review queries.
// Requires a GORM database connection for query execution.
func NewGetAgentReviewsQueryHandler(db *gorm.DB) GetAgentReviewsQueryHandler {
	return GetAgentReviewsQueryHandler{db: db}
}

// Handle executes the query to retrieve an agent's reviews, newest first.
func (h GetAgentReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetAgentReviewsQuery,
) ([]GetAgentReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reviews := make([]GetAgentReviewsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			reviewer_id,
			rating,
			comment,
			created_at
		FROM reviews
		WHERE agent_id = ?
		ORDER BY created_at DESC
	`, query.AgentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var reviewResp GetAgentReviewsQueryResponse
		var id, parcelID, reviewerID uuid.UUID

		err = rows.Scan(
			&id,
			&parcelID,
			&reviewerID,
			&reviewResp.Rating,
			&reviewResp.Comment,
			&reviewResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if reviewResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if reviewResp.ParcelID, err = kernel.UUIDFromBytes(parcelID[:]); err != nil {
			return nil, err
		}
		if reviewResp.ReviewerID, err = kernel.UUIDFromBytes(reviewerID[:]); err != nil {
			return nil, err
		}
		reviews = append(reviews, reviewResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
