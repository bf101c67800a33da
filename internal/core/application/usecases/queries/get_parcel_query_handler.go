package queries

import (
	"context"

	"courier/internal/core/domain/model/assignment"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
)

// parcelReader is the read contract needed to load one parcel aggregate.
type parcelReader interface {
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)
}

// assignmentReader resolves the assignment a parcel currently points to.
type assignmentReader interface {
	GetByParcelID(ctx context.Context, parcelID kernel.UUID) (*assignment.Assignment, error)
}

// GetParcelQueryHandler retrieves a single parcel snapshot. Unlike the list
// queries, this read goes through the repositories: the snapshot carries the
// full aggregate plus its active assignment, both of which the write-side
// repositories already reconstruct.
type GetParcelQueryHandler struct {
	parcels     parcelReader
	assignments assignmentReader
}

// NewGetParcelQueryHandler creates a handler for single parcel snapshots.
func NewGetParcelQueryHandler(parcels parcelReader, assignments assignmentReader) GetParcelQueryHandler {
	return GetParcelQueryHandler{
		parcels:     parcels,
		assignments: assignments,
	}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the parcel
// id does not resolve.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	aggregate, err := h.parcels.Get(ctx, query.ParcelID())
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	response := GetParcelQueryResponse{
		ID:                    aggregate.ID(),
		Sender:                aggregate.Sender(),
		Receiver:              aggregate.Receiver(),
		WeightKg:              aggregate.WeightKg(),
		Cost:                  aggregate.Cost(),
		RequestedDeliveryDate: aggregate.RequestedDeliveryDate(),
		Status:                aggregate.Status(),
		Paid:                  aggregate.IsPaid(),
		BookedAt:              aggregate.BookedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}

	if aggregate.AssignmentID() == nil {
		return response, nil
	}

	record, err := h.assignments.GetByParcelID(ctx, aggregate.ID())
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	response.Assignment = &ParcelAssignmentResponse{
		ID:                      record.ID(),
		AgentID:                 record.AgentID(),
		AgentContact:            record.AgentContact(),
		ApproximateDeliveryDate: record.ApproximateDeliveryDate(),
		CreatedAt:               record.CreatedAt(),
	}

	return response, nil
}
