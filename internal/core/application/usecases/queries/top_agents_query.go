// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrTopAgentsQueryIsNotConstructed = errors.New(
	"TopAgentsQuery must be created via NewTopAgentsQuery constructor",
)

// TopAgentsQuery retrieves the best-rated delivery agents.
// Agents are ordered by average rating, highest first; ties are broken by
// agent id ascending so the ranking is stable across calls.
//
// Example:
//
//	query, _ := NewTopAgentsQuery(5)
//	handler := NewTopAgentsQueryHandler(db)
//
//	agents, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve top agents: %w", err)
//	}
type TopAgentsQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewTopAgentsQuery creates a query for the top rated agents.
// The limit must be positive.
func NewTopAgentsQuery(limit int) (TopAgentsQuery, error) {
	query := TopAgentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setLimit(limit); err != nil {
		return TopAgentsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTopAgentsQueryIsNotConstructed if validation fails.
func (q TopAgentsQuery) Validate() error {
	return q.guard.Validate(ErrTopAgentsQueryIsNotConstructed)
}

// Limit returns the maximum number of agents to retrieve.
func (q TopAgentsQuery) Limit() int {
	return q.limit
}

func (q *TopAgentsQuery) setLimit(limit int) error {
	if limit <= 0 {
		return errs.NewValueIsInvalidError("limit")
	}

	q.limit = limit
	return nil
}

// TopAgentsQueryResponse represents agent ranking information in the read model.
type TopAgentsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Email         string
	Phone         string
	TotalReviews  int
	AverageRating float64
}
