// Package agentrepo provides data transfer objects and mapping functions for
// delivery agent persistence.
package agentrepo

import (
	"time"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent aggregates.
// The rating aggregate (total_reviews, average_rating) lives on the same row
// so it can be updated with a single conditional statement.
type AgentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Email         string `gorm:"uniqueIndex"`
	Phone         string
	TotalReviews  int
	AverageRating float64
	CreatedAt     time.Time
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(aggregate *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Contact().Name(),
		Email:         aggregate.Contact().Email(),
		Phone:         aggregate.Contact().Phone(),
		TotalReviews:  aggregate.TotalReviews(),
		AverageRating: aggregate.AverageRating(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	contact, err := kernel.NewContact(dto.Name, dto.Email, dto.Phone)
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(id, contact, dto.TotalReviews, dto.AverageRating, dto.CreatedAt)
}
