package queries

import (
	"context"

	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TopAgentsQueryHandler retrieves the agent leaderboard from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type TopAgentsQueryHandler struct {
	db *gorm.DB
}

// NewTopAgentsQueryHandler creates a handler for agent ranking queries.
// Requires a GORM database connection for query execution.
func NewTopAgentsQueryHandler(db *gorm.DB) TopAgentsQueryHandler {
	return TopAgentsQueryHandler{db: db}
}

// Handle executes the query to retrieve the top rated agents.
// Orders by average rating descending with agent id as a stable tie-break.
// Agents without reviews rank last among themselves by id.
func (h TopAgentsQueryHandler) Handle(
	ctx context.Context,
	query TopAgentsQuery,
) ([]TopAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents := make([]TopAgentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			total_reviews,
			average_rating
		FROM agents
		ORDER BY average_rating DESC, id ASC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var agent TopAgentsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&agent.Name,
			&agent.Email,
			&agent.Phone,
			&agent.TotalReviews,
			&agent.AverageRating,
		)
		if err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		agent.ID = agentID
		agents = append(agents, agent)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
