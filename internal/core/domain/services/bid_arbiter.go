package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/announcement"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/delivery"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

var (
	// ErrDuplicateBid is returned when a courier proposes twice on the same announcement.
	ErrDuplicateBid = fmt.Errorf("%w: courier already has a delivery on this announcement", errs.ErrStateConflict)

	// ErrAnnouncementAlreadyAssigned is returned once a delivery of the
	// announcement was accepted.
	ErrAnnouncementAlreadyAssigned = fmt.Errorf("%w: announcement already has an accepted delivery", errs.ErrStateConflict)

	ErrDeliveryNotOnAnnouncement = errors.New("delivery does not belong to the announcement")
)

// BidArbiter decides between courier proposals on an announcement.
//
// Business rules:
//   - a courier holds at most one non-cancelled delivery per announcement
//   - once a delivery is in progress or delivered, no other delivery of the
//     announcement stays active and no proposal is accepted
//
// The arbiter works on the full delivery list of one announcement, which the
// caller loads under the announcement row lock.
type BidArbiter struct{}

func NewBidArbiter() BidArbiter {
	return BidArbiter{}
}

// CheckProposal validates that courierID may propose on a.
func (BidArbiter) CheckProposal(courierID kernel.UUID, a *announcement.Announcement, existing []*delivery.Delivery) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := a.AcceptsProposals(); err != nil {
		return err
	}

	for _, d := range existing {
		if d.Status().IsEngaged() {
			return ErrAnnouncementAlreadyAssigned
		}
		if d.CourierID().IsEqual(courierID) && d.Status().IsActive() {
			return ErrDuplicateBid
		}
	}
	return nil
}

// Award is the outcome of accepting a proposal.
type Award struct {
	// Changed is false when the winner was already accepted.
	Changed bool

	// Losers are the competing deliveries cancelled by this award.
	Losers []*delivery.Delivery
}

// Accept turns winner into the announcement's delivery and cancels every
// other active delivery of the announcement.
func (BidArbiter) Accept(
	winner *delivery.Delivery, a *announcement.Announcement, all []*delivery.Delivery, now time.Time,
) (Award, error) {
	if err := errors.Join(winner.Validate(), a.Validate()); err != nil {
		return Award{}, err
	}
	if !winner.AnnouncementID().IsEqual(a.ID()) {
		return Award{}, ErrDeliveryNotOnAnnouncement
	}
	if winner.Status() == delivery.InProgress {
		return Award{}, nil
	}
	if err := a.AcceptsProposals(); err != nil {
		return Award{}, err
	}

	for _, d := range all {
		if !d.ID().IsEqual(winner.ID()) && d.Status().IsEngaged() {
			return Award{}, ErrAnnouncementAlreadyAssigned
		}
	}

	changed, err := winner.Accept(now)
	if err != nil {
		return Award{}, err
	}

	award := Award{Changed: changed}
	for _, d := range all {
		if d.ID().IsEqual(winner.ID()) || !d.Status().IsActive() {
			continue
		}
		if _, err = d.Cancel(); err != nil {
			return Award{}, err
		}
		award.Losers = append(award.Losers, d)
	}

	if _, err = a.MarkInProgress(); err != nil {
		return Award{}, err
	}
	return award, nil
}
