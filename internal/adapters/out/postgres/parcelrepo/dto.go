// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. This package implements the repository pattern for the
// parcel domain aggregate, handling the conversion between domain entities and
// database representations.
package parcelrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Indexed by status for lifecycle queries and by assignment for audit lookups.
type ParcelDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Sender                ContactDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver              ContactDTO `gorm:"embedded;embeddedPrefix:receiver_"`
	WeightKg              float64
	Cost                  float64
	RequestedDeliveryDate time.Time
	Status                int        `gorm:"index"`
	AssignmentID          *uuid.UUID `gorm:"type:uuid;index"`
	Paid                  bool
	BookedAt              time.Time
	UpdatedAt             time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// ContactDTO represents an embedded party contact within the parcel table.
type ContactDTO struct {
	Name  string
	Email string
	Phone string
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var assignmentID *uuid.UUID
	if id := aggregate.AssignmentID(); id != nil {
		raw := id.Bytes()
		assignmentID = &raw
	}

	return ParcelDTO{
		ID: aggregate.ID().Bytes(),
		Sender: ContactDTO{
			Name:  aggregate.Sender().Name(),
			Email: aggregate.Sender().Email(),
			Phone: aggregate.Sender().Phone(),
		},
		Receiver: ContactDTO{
			Name:  aggregate.Receiver().Name(),
			Email: aggregate.Receiver().Email(),
			Phone: aggregate.Receiver().Phone(),
		},
		WeightKg:              aggregate.WeightKg(),
		Cost:                  aggregate.Cost(),
		RequestedDeliveryDate: aggregate.RequestedDeliveryDate(),
		Status:                int(aggregate.Status()),
		AssignmentID:          assignmentID,
		Paid:                  aggregate.IsPaid(),
		BookedAt:              aggregate.BookedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate using RestoreParcel, which re-checks
// the status/assignment consistency rule on the stored row.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var assignmentID *kernel.UUID
	if dto.AssignmentID != nil {
		aID, assignmentErr := kernel.UUIDFromBytes((*dto.AssignmentID)[:])
		if assignmentErr != nil {
			return nil, assignmentErr
		}

		assignmentID = &aID
	}

	sender, err := kernel.NewContact(dto.Sender.Name, dto.Sender.Email, dto.Sender.Phone)
	if err != nil {
		return nil, err
	}

	receiver, err := kernel.NewContact(dto.Receiver.Name, dto.Receiver.Email, dto.Receiver.Phone)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		sender,
		receiver,
		dto.WeightKg,
		dto.Cost,
		dto.RequestedDeliveryDate,
		parcel.Status(dto.Status),
		assignmentID,
		dto.Paid,
		dto.BookedAt,
		dto.UpdatedAt,
	)
}
