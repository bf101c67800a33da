package assignmentrepo

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/domain/model/assignment"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/pkg/db"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return storeError(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, storeError(err)
	}

	return toDomain(dto)
}

// GetByParcelID retrieves the assignment the parcel currently points to.
func (r *GormAssignmentRepository) GetByParcelID(
	ctx context.Context,
	parcelID kernel.UUID,
) (*assignment.Assignment, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN parcels ON parcels.assignment_id = assignments.id").
		First(&dto, "assignments.parcel_id = ?", parcelID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment for parcel", parcelID.String())
		}
		return nil, storeError(err)
	}

	return toDomain(dto)
}

// GetOrphaned retrieves assignments created before the cutoff whose parcel
// never left pending. Such rows can only result from an interrupted
// assignment workflow.
func (r *GormAssignmentRepository) GetOrphaned(
	ctx context.Context,
	cutoff time.Time,
) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN parcels ON parcels.id = assignments.parcel_id").
		Where("parcels.status = ? AND assignments.created_at < ?", int(parcel.Pending), cutoff).
		Find(&dtos).Error
	if err != nil {
		return nil, storeError(err)
	}

	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// Remove deletes an assignment record.
func (r *GormAssignmentRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AssignmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return storeError(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", id.String())
	}

	return nil
}

// storeError classifies connection-level driver failures as store unavailability.
func storeError(err error) error {
	if db.IsConnectionFailure(err) {
		return errs.NewStoreUnavailableError(err)
	}
	return err
}
