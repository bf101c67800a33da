package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves one parcel snapshot, including the assignment it
// currently points to when the parcel is or was in transit.
type GetParcelQuery struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query for a single parcel snapshot.
func NewGetParcelQuery(parcelID kernel.UUID) (GetParcelQuery, error) {
	query := GetParcelQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setParcelID(parcelID); err != nil {
		return GetParcelQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelQueryIsNotConstructed if validation fails.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the identifier of the requested parcel.
func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

func (q *GetParcelQuery) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	q.parcelID = parcelID
	return nil
}

// GetParcelQueryResponse represents one parcel snapshot in the read model.
// Assignment is nil for parcels that were never assigned.
type GetParcelQueryResponse struct {
	ID                    kernel.UUID
	Sender                kernel.Contact
	Receiver              kernel.Contact
	WeightKg              float64
	Cost                  float64
	RequestedDeliveryDate time.Time
	Status                parcel.Status
	Paid                  bool
	BookedAt              time.Time
	UpdatedAt             time.Time
	Assignment            *ParcelAssignmentResponse
}

// ParcelAssignmentResponse represents the active assignment within a parcel
// snapshot.
type ParcelAssignmentResponse struct {
	ID                      kernel.UUID
	AgentID                 kernel.UUID
	AgentContact            kernel.Contact
	ApproximateDeliveryDate time.Time
	CreatedAt               time.Time
}
