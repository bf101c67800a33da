package ports

import (
	"context"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agent aggregates.
type AgentRepository interface {
	// Add persists a new agent aggregate to storage.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// UpdateWhereTotalReviews persists changes to an existing agent only if its
	// stored review count still equals expected. Rating aggregates are updated
	// under this guard so two concurrent reviews cannot both fold into the same
	// running average. Returns errs.ErrConflict when the count moved.
	UpdateWhereTotalReviews(ctx context.Context, aggregate *agent.Agent, expected int) error

	// Get retrieves an agent aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)
}
