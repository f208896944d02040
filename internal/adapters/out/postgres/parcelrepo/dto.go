// Package parcelrepo provides the data transfer object and mapping functions
// for parcel persistence. It implements the repository pattern for the parcel
// aggregate, handling the conversion between domain entities and database
// rows, plus the set-based conditional updates the route workflows rely on.
package parcelrepo

import (
	"time"

	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcels.
// Indexed for the hot query paths: by driver and scheduled date for the
// daily lists, by owner for pickup grouping, and by tracking code for
// delivery completion.
type ParcelDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingCode string    `gorm:"uniqueIndex;not null"`

	OwnerID          uuid.UUID `gorm:"type:uuid;index"`
	PickupDriverID   uuid.UUID `gorm:"type:uuid;index"`
	DeliveryDriverID uuid.UUID `gorm:"type:uuid;index"`

	PickupStatus   int
	DeliveryStatus int

	PickupScheduledDate   time.Time `gorm:"type:date"`
	DeliveryScheduledDate time.Time `gorm:"type:date"`

	IsNextPickupTarget   bool
	IsNextDeliveryTarget bool

	RecipientAddress   string
	DetailAddress      string
	PickupTimeWindow   string
	DeliveryTimeWindow string
	ProductName        string

	PickupCompletedAt   *time.Time
	DeliveryCompletedAt *time.Time

	IsDeleted bool `gorm:"index"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:                    p.ID().Bytes(),
		TrackingCode:          p.TrackingCode().String(),
		OwnerID:               p.OwnerID().Bytes(),
		PickupDriverID:        p.PickupDriverID().Bytes(),
		DeliveryDriverID:      p.DeliveryDriverID().Bytes(),
		PickupStatus:          int(p.PickupStatus()),
		DeliveryStatus:        int(p.DeliveryStatus()),
		PickupScheduledDate:   p.Schedule().PickupDate,
		DeliveryScheduledDate: p.Schedule().DeliveryDate,
		IsNextPickupTarget:    p.IsNextPickupTarget(),
		IsNextDeliveryTarget:  p.IsNextDeliveryTarget(),
		RecipientAddress:      p.Details().RecipientAddress,
		DetailAddress:         p.Details().DetailAddress,
		PickupTimeWindow:      p.Details().PickupTimeWindow,
		DeliveryTimeWindow:    p.Details().DeliveryTimeWindow,
		ProductName:           p.Details().ProductName,
		PickupCompletedAt:     p.PickupCompletedAt(),
		DeliveryCompletedAt:   p.DeliveryCompletedAt(),
		IsDeleted:             p.IsDeleted(),
	}
}

// toDomain converts a database row to a parcel aggregate using RestoreParcel,
// so corrupt rows (invalid statuses, zero identifiers) are rejected at the
// adapter boundary.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := parcel.NewTrackingCode(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	pickupDriverID, err := kernel.UUIDFromBytes(dto.PickupDriverID[:])
	if err != nil {
		return nil, err
	}

	deliveryDriverID, err := kernel.UUIDFromBytes(dto.DeliveryDriverID[:])
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		code,
		ownerID,
		pickupDriverID,
		deliveryDriverID,
		parcel.PickupStatus(dto.PickupStatus),
		parcel.DeliveryStatus(dto.DeliveryStatus),
		parcel.Schedule{
			PickupDate:   dto.PickupScheduledDate,
			DeliveryDate: dto.DeliveryScheduledDate,
		},
		parcel.Details{
			RecipientAddress:   dto.RecipientAddress,
			DetailAddress:      dto.DetailAddress,
			PickupTimeWindow:   dto.PickupTimeWindow,
			DeliveryTimeWindow: dto.DeliveryTimeWindow,
			ProductName:        dto.ProductName,
		},
		dto.IsNextPickupTarget,
		dto.IsNextDeliveryTarget,
		dto.PickupCompletedAt,
		dto.DeliveryCompletedAt,
		dto.IsDeleted,
	)
}
