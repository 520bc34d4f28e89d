package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/delivery"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
	"github.com/Keloce-2005/Back-office/internal/core/domain/services"
)

type AcceptDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   Notifier
	pusher     Pusher
}

func NewAcceptDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory, notifier Notifier, pusher Pusher,
) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		pusher:     pusher,
	}
}

// Handle starts the delivery and cancels the competing proposals under the
// announcement row lock. The winner, every loser and the client are
// notified. Accepting an in-progress delivery changes nothing.
func (h *AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	target, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	announcementRepo := uow.AnnouncementRepository()
	a, err := announcementRepo.GetForUpdate(ctx, target.AnnouncementID())
	if err != nil {
		return err
	}
	if err = requireAuthorOrAdmin(ctx, uow, cmd.ActorID(), a, "accept delivery "+target.ID().String()); err != nil {
		return err
	}

	// reload under the lock so the arbiter sees the committed state
	all, err := deliveryRepo.ListByAnnouncement(ctx, a.ID())
	if err != nil {
		return err
	}
	winner := target
	for _, d := range all {
		if d.ID().IsEqual(target.ID()) {
			winner = d
			break
		}
	}

	award, err := services.NewBidArbiter().Accept(winner, a, all, time.Now())
	if err != nil || !award.Changed {
		return err
	}

	for _, d := range append([]*delivery.Delivery{winner}, award.Losers...) {
		if err = deliveryRepo.Update(ctx, d); err != nil {
			return err
		}
		if err = refreshDeliveryCount(ctx, uow, d.CourierID()); err != nil {
			return err
		}
	}
	if err = announcementRepo.Update(ctx, a); err != nil {
		return err
	}

	if err = h.notifyParticipants(ctx, uow, winner, award.Losers); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.pusher.PushTracked(ctx, uow.TrackedAggregates())
	return nil
}

func (h *AcceptDeliveryCommandHandler) notifyParticipants(
	ctx context.Context, uow DeliveryUoW, winner *delivery.Delivery, losers []*delivery.Delivery,
) error {
	link := deliveryLink(winner.ID())
	if err := h.notifier.Notify(ctx, uow, winner.CourierID(), notification.DeliveryAccepted(winner.Reference()), link); err != nil {
		return err
	}
	if err := h.notifier.Notify(ctx, uow, winner.ClientID(),
		notification.DeliveryStarted(winner.Reference(), winner.ValidationCode()), link); err != nil {
		return err
	}
	for _, d := range losers {
		if err := h.notifier.Notify(ctx, uow, d.CourierID(),
			notification.ProposalDeclined(d.Reference()), deliveryLink(d.ID())); err != nil {
			return err
		}
	}
	return nil
}
