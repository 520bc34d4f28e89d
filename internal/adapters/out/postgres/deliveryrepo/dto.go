// Package deliveryrepo persists deliveries, the courier proposals made on
// announcements.
package deliveryrepo

import (
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/delivery"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DeliveryDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Reference         string          `gorm:"size:10;uniqueIndex"`
	ValidationCode    string          `gorm:"size:6"`
	AnnouncementID    uuid.UUID       `gorm:"type:uuid;index"`
	CourierID         uuid.UUID       `gorm:"type:uuid;index"`
	ClientID          uuid.UUID       `gorm:"type:uuid;index"`
	Description       string
	Weight            decimal.Decimal `gorm:"type:numeric(10,2)"`
	Dimensions        string          `gorm:"size:100"`
	ScheduledPickup   time.Time
	ScheduledDelivery time.Time
	PickedUpAt        *time.Time
	DeliveredAt       *time.Time
	StorageBoxID      *uuid.UUID `gorm:"type:uuid"`
	Status            int        `gorm:"index"`
	CreatedAt         time.Time
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	parcel := d.Parcel()
	return DeliveryDTO{
		ID:                d.ID().Bytes(),
		Reference:         d.Reference(),
		ValidationCode:    d.ValidationCode(),
		AnnouncementID:    d.AnnouncementID().Bytes(),
		CourierID:         d.CourierID().Bytes(),
		ClientID:          d.ClientID().Bytes(),
		Description:       parcel.Description,
		Weight:            parcel.Weight,
		Dimensions:        parcel.Dimensions,
		ScheduledPickup:   d.Schedule().Departure(),
		ScheduledDelivery: d.Schedule().Arrival(),
		PickedUpAt:        d.PickedUpAt(),
		DeliveredAt:       d.DeliveredAt(),
		StorageBoxID:      kernel.BytesPtr(d.StorageBoxID()),
		Status:            int(d.Status()),
		CreatedAt:         d.CreatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.AnnouncementID, dto.CourierID, dto.ClientID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	boxID, err := kernel.UUIDPtrFromBytes(dto.StorageBoxID)
	if err != nil {
		return nil, err
	}

	schedule, err := kernel.NewSchedule(dto.ScheduledPickup, dto.ScheduledDelivery)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(delivery.RestoreParams{
		ID:             ids[0],
		Reference:      dto.Reference,
		ValidationCode: dto.ValidationCode,
		AnnouncementID: ids[1],
		CourierID:      ids[2],
		ClientID:       ids[3],
		Parcel: delivery.Parcel{
			Description: dto.Description,
			Weight:      dto.Weight,
			Dimensions:  dto.Dimensions,
		},
		Schedule:     schedule,
		PickedUpAt:   dto.PickedUpAt,
		DeliveredAt:  dto.DeliveredAt,
		StorageBoxID: boxID,
		Status:       delivery.Status(dto.Status),
		CreatedAt:    dto.CreatedAt,
	})
}
