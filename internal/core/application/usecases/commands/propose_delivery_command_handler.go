package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/delivery"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/domain/services"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

type ProposeDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   Notifier
	pusher     Pusher
}

func NewProposeDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory, notifier Notifier, pusher Pusher,
) ProposeDeliveryCommandHandler {
	return ProposeDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		pusher:     pusher,
	}
}

// Handle records a pending delivery for a verified courier. The announcement
// row stays locked until commit, so two proposals on the same announcement
// are checked one after the other.
//
// Errors:
//   - errs.ErrForbidden: the actor is not a verified courier
//   - services.ErrDuplicateBid: the courier already has an active delivery on the announcement
//   - services.ErrAnnouncementAlreadyAssigned: a delivery was already accepted
//   - errs.ErrStateConflict: the announcement is completed or cancelled
func (h *ProposeDeliveryCommandHandler) Handle(ctx context.Context, cmd ProposeDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	const action = "propose deliveries"
	if _, err := requireRole(ctx, uow, cmd.CourierID(), action, user.Courier); err != nil {
		return err
	}
	courierProfile, err := uow.ProfileRepository().GetCourier(ctx, cmd.CourierID())
	if isNotFound(err) || (err == nil && !courierProfile.IsVerified()) {
		return errs.NewAuthorizationError(cmd.CourierID().String(), action)
	}
	if err != nil {
		return err
	}

	announcementRepo := uow.AnnouncementRepository()
	a, err := announcementRepo.GetForUpdate(ctx, cmd.AnnouncementID())
	if err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	existing, err := deliveryRepo.ListByAnnouncement(ctx, a.ID())
	if err != nil {
		return err
	}
	if err = services.NewBidArbiter().CheckProposal(cmd.CourierID(), a, existing); err != nil {
		return err
	}

	d, err := delivery.NewDelivery(cmd.DeliveryID(), a.ID(), cmd.CourierID(), a.AuthorID(),
		cmd.Parcel(), a.Schedule(), time.Now())
	if err != nil {
		return err
	}
	if err = deliveryRepo.Add(ctx, d); err != nil {
		return err
	}

	changed, err := a.MarkInProgress()
	if err != nil {
		return err
	}
	if changed {
		if err = announcementRepo.Update(ctx, a); err != nil {
			return err
		}
	}

	if err = refreshDeliveryCount(ctx, uow, cmd.CourierID()); err != nil {
		return err
	}

	if err = h.notifier.Notify(ctx, uow, a.AuthorID(),
		notification.ProposalReceived(d.Reference(), a.Details().Title), deliveryLink(d.ID())); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.pusher.PushTracked(ctx, uow.TrackedAggregates())
	return nil
}
