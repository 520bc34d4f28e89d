package queries

import (
	"errors"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListMyDeliveriesQueryIsNotConstructed = errors.New(
	"ListMyDeliveriesQuery must be created via NewListMyDeliveriesQuery constructor",
)

// ListMyDeliveriesQuery lists the deliveries a user takes part in, as
// courier or as client.
type ListMyDeliveriesQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListMyDeliveriesQuery(userID kernel.UUID) (ListMyDeliveriesQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListMyDeliveriesQuery{}, err
	}

	return ListMyDeliveriesQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListMyDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListMyDeliveriesQueryIsNotConstructed)
}

func (q ListMyDeliveriesQuery) UserID() kernel.UUID {
	return q.userID
}

// DeliveryResponse is the listing view of a delivery. ValidationCode is only
// filled for the client, who hands it to the courier on arrival.
type DeliveryResponse struct {
	ID                kernel.UUID
	Reference         string
	AnnouncementID    kernel.UUID
	AnnouncementTitle string
	CourierID         kernel.UUID
	ClientID          kernel.UUID
	Status            string
	ValidationCode    string
	Weight            decimal.Decimal
	ScheduledPickup   time.Time
	ScheduledDelivery time.Time
	DeliveredAt       *time.Time
	Price             decimal.Decimal
}
