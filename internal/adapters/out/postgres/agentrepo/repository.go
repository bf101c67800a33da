package agentrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/db"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAgentRepository implements AgentRepository using GORM.
type GormAgentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAgentRepository creates a new GORM agent repository.
func NewGormAgentRepository(db *gorm.DB, tracker aggregateTracker) *GormAgentRepository {
	return &GormAgentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new agent to the database.
func (r *GormAgentRepository) Add(ctx context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if db.IsUniqueViolation(err, "") {
			return errs.NewConflictError("agent", aggregate.ID().String())
		}
		return storeError(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateWhereTotalReviews saves an existing agent only if its stored review
// count still equals expected. The rating aggregate moves once per review, so
// the count doubles as a version guard; zero affected rows means a concurrent
// review landed first and is reported as a Conflict error.
func (r *GormAgentRepository) UpdateWhereTotalReviews(
	ctx context.Context,
	aggregate *agent.Agent,
	expected int,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AgentDTO{}).
		Where("id = ? AND total_reviews = ?", dto.ID, expected).
		Updates(map[string]any{
			"total_reviews":  dto.TotalReviews,
			"average_rating": dto.AverageRating,
		})
	if result.Error != nil {
		return storeError(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("agent", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an agent by ID.
func (r *GormAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AgentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agent", id.String())
		}
		return nil, storeError(err)
	}

	return toDomain(dto)
}

// storeError classifies connection-level driver failures as store unavailability.
func storeError(err error) error {
	if db.IsConnectionFailure(err) {
		return errs.NewStoreUnavailableError(err)
	}
	return err
}
