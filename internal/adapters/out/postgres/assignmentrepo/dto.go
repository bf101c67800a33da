// Package assignmentrepo provides data transfer objects and mapping functions
// for assignment persistence. Assignment rows are immutable; superseded
// records are kept for audit and only orphan cleanup ever deletes them.
package assignmentrepo

import (
	"time"

	"courier/internal/core/domain/model/assignment"
	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignments.
type AssignmentDTO struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID                uuid.UUID `gorm:"type:uuid;index"`
	AgentID                 uuid.UUID `gorm:"type:uuid;index"`
	AgentName               string
	AgentEmail              string
	AgentPhone              string
	ApproximateDeliveryDate time.Time
	CreatedAt               time.Time
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain aggregate to its database representation.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:                      aggregate.ID().Bytes(),
		ParcelID:                aggregate.ParcelID().Bytes(),
		AgentID:                 aggregate.AgentID().Bytes(),
		AgentName:               aggregate.AgentContact().Name(),
		AgentEmail:              aggregate.AgentContact().Email(),
		AgentPhone:              aggregate.AgentContact().Phone(),
		ApproximateDeliveryDate: aggregate.ApproximateDeliveryDate(),
		CreatedAt:               aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
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

	agentContact, err := kernel.NewContact(dto.AgentName, dto.AgentEmail, dto.AgentPhone)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id,
		parcelID,
		agentID,
		agentContact,
		dto.ApproximateDeliveryDate,
		dto.CreatedAt,
	)
}
