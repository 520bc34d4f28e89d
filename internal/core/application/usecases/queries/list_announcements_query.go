package queries

import (
	"errors"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListMyAnnouncementsQueryIsNotConstructed = errors.New(
		"ListMyAnnouncementsQuery must be created via NewListMyAnnouncementsQuery constructor",
	)
	ErrListAvailableAnnouncementsQueryIsNotConstructed = errors.New(
		"ListAvailableAnnouncementsQuery must be created via NewListAvailableAnnouncementsQuery constructor",
	)
)

// ListMyAnnouncementsQuery lists what a client or merchant published.
type ListMyAnnouncementsQuery struct {
	authorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListMyAnnouncementsQuery(authorID kernel.UUID) (ListMyAnnouncementsQuery, error) {
	if err := authorID.Validate(); err != nil {
		return ListMyAnnouncementsQuery{}, err
	}

	return ListMyAnnouncementsQuery{
		authorID: authorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListMyAnnouncementsQuery) Validate() error {
	return q.guard.Validate(ErrListMyAnnouncementsQueryIsNotConstructed)
}

func (q ListMyAnnouncementsQuery) AuthorID() kernel.UUID {
	return q.authorID
}

// ListAvailableAnnouncementsQuery lists the announcements a courier can still
// propose on: open, without an accepted delivery, and not already bid on by
// the courier.
type ListAvailableAnnouncementsQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListAvailableAnnouncementsQuery(courierID kernel.UUID) (ListAvailableAnnouncementsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return ListAvailableAnnouncementsQuery{}, err
	}

	return ListAvailableAnnouncementsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListAvailableAnnouncementsQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableAnnouncementsQueryIsNotConstructed)
}

func (q ListAvailableAnnouncementsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// AnnouncementResponse is the listing view of an announcement.
type AnnouncementResponse struct {
	ID          kernel.UUID
	AuthorID    kernel.UUID
	Title       string
	Kind        string
	Origin      string
	Destination string
	Departure   time.Time
	Arrival     time.Time
	Price       decimal.Decimal
	Urgent      bool
	Weight      decimal.Decimal
	Views       int
	Status      string
	Proposals   int
	CreatedAt   time.Time
}
