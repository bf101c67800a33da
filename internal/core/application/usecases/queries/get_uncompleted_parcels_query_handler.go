package queries

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedParcelsQueryHandler retrieves parcels pending delivery from
// the database. Filters out parcels in terminal statuses to provide active
// workload visibility.
type GetUncompletedParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedParcelsQueryHandler creates a handler for active parcel queries.
// Requires a GORM database connection for query execution.
func NewGetUncompletedParcelsQueryHandler(db *gorm.DB) GetUncompletedParcelsQueryHandler {
	return GetUncompletedParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve all uncompleted parcels.
// Returns parcels in "pending" or "on_the_way" status, ordered by booking time.
func (h GetUncompletedParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedParcelsQuery,
) ([]GetUncompletedParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetUncompletedParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender_name,
			receiver_name,
			weight_kg,
			cost,
			requested_delivery_date,
			status,
			paid,
			booked_at
		FROM parcels
		WHERE status NOT IN (?, ?)
		ORDER BY booked_at
	`, parcel.Delivered, parcel.Canceled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var parcelResp GetUncompletedParcelsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&parcelResp.SenderName,
			&parcelResp.ReceiverName,
			&parcelResp.WeightKg,
			&parcelResp.Cost,
			&parcelResp.RequestedDeliveryDate,
			&parcelResp.Status,
			&parcelResp.Paid,
			&parcelResp.BookedAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		parcelResp.ID = parcelID
		parcels = append(parcels, parcelResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
