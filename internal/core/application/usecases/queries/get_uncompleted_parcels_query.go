package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/pkg/guard"
)

var ErrGetUncompletedParcelsQueryIsNotConstructed = errors.New(
	"GetUncompletedParcelsQuery must be created via NewGetUncompletedParcelsQuery constructor",
)

// GetUncompletedParcelsQuery retrieves parcels still moving through the
// lifecycle, i.e. pending or on the way. Delivered and canceled parcels are
// excluded.
type GetUncompletedParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedParcelsQuery creates a query to retrieve active parcels.
// This is a parameterless query.
func NewGetUncompletedParcelsQuery() GetUncompletedParcelsQuery {
	return GetUncompletedParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUncompletedParcelsQueryIsNotConstructed if validation fails.
func (q GetUncompletedParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedParcelsQueryIsNotConstructed)
}

// GetUncompletedParcelsQueryResponse represents an active parcel in the read model.
type GetUncompletedParcelsQueryResponse struct {
	ID                    kernel.UUID
	SenderName            string
	ReceiverName          string
	WeightKg              float64
	Cost                  float64
	RequestedDeliveryDate time.Time
	Status                parcel.Status
	Paid                  bool
	BookedAt              time.Time
}
