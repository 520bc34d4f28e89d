package commands

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/delivery"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrProposeDeliveryCommandIsNotConstructed = errors.New(
	"ProposeDeliveryCommand must be created via NewProposeDeliveryCommand constructor",
)

// ProposeDeliveryCommand is a courier's offer to carry an announcement.
type ProposeDeliveryCommand struct {
	deliveryID     kernel.UUID
	courierID      kernel.UUID
	announcementID kernel.UUID
	parcel         delivery.Parcel

	guard guard.ConstructorGuard
}

func NewProposeDeliveryCommand(
	deliveryID, courierID, announcementID kernel.UUID, parcel delivery.Parcel,
) (ProposeDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), courierID.Validate(), announcementID.Validate()); err != nil {
		return ProposeDeliveryCommand{}, err
	}

	return ProposeDeliveryCommand{
		deliveryID:     deliveryID,
		courierID:      courierID,
		announcementID: announcementID,
		parcel:         parcel,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c ProposeDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrProposeDeliveryCommandIsNotConstructed)
}

func (c ProposeDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c ProposeDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c ProposeDeliveryCommand) AnnouncementID() kernel.UUID {
	return c.announcementID
}

func (c ProposeDeliveryCommand) Parcel() delivery.Parcel {
	return c.parcel
}
