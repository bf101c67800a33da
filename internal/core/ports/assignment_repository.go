package ports

import (
	"context"
	"time"

	"courier/internal/core/domain/model/assignment"
	"courier/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assignment records.
// Assignments are immutable once written; replacing one means adding a new
// record and repointing the parcel.
type AssignmentRepository interface {
	// Add persists a new assignment record to storage.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetByParcelID retrieves the assignment a parcel currently points to.
	GetByParcelID(ctx context.Context, parcelID kernel.UUID) (*assignment.Assignment, error)

	// GetOrphaned retrieves assignments created before the cutoff whose
	// parcels never left pending status. Used by the reconciliation job to
	// clean up after interrupted assignment workflows.
	GetOrphaned(ctx context.Context, cutoff time.Time) ([]*assignment.Assignment, error)

	// Remove deletes an assignment record.
	Remove(ctx context.Context, id kernel.UUID) error
}
