package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetAgentReviewsQueryIsNotConstructed = errors.New(
	"GetAgentReviewsQuery must be created via NewGetAgentReviewsQuery constructor",
)

// GetAgentReviewsQuery retrieves all reviews recorded for one delivery agent,
// newest first.
type GetAgentReviewsQuery struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentReviewsQuery creates a query for an agent's reviews.
func NewGetAgentReviewsQuery(agentID kernel.UUID) (GetAgentReviewsQuery, error) {
	query := GetAgentReviewsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setAgentID(agentID); err != nil {
		return GetAgentReviewsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentReviewsQueryIsNotConstructed if validation fails.
func (q GetAgentReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentReviewsQueryIsNotConstructed)
}

// AgentID returns the identifier of the agent whose reviews are requested.
func (q GetAgentReviewsQuery) AgentID() kernel.UUID {
	return q.agentID
}

func (q *GetAgentReviewsQuery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	q.agentID = agentID
	return nil
}

// GetAgentReviewsQueryResponse represents one review in the read model.
type GetAgentReviewsQueryResponse struct {
	ID         kernel.UUID
	ParcelID   kernel.UUID
	ReviewerID kernel.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
