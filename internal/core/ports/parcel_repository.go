// Package ports defines repository interfaces for the parcel delivery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// UpdateWhereStatus persists changes to an existing parcel only if its
	// stored status still equals expected. Returns errs.ErrConflict when a
	// concurrent writer changed the status first.
	UpdateWhereStatus(ctx context.Context, aggregate *parcel.Parcel, expected parcel.Status) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)
}
