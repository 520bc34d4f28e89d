package commands

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
)

type CancelAnnouncementCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   Notifier
	pusher     Pusher
}

func NewCancelAnnouncementCommandHandler(
	uowFactory DeliveryUoWFactory, notifier Notifier, pusher Pusher,
) CancelAnnouncementCommandHandler {
	return CancelAnnouncementCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		pusher:     pusher,
	}
}

// Handle withdraws the announcement and cancels its active deliveries. Each
// affected courier is notified. A completed announcement cannot be cancelled.
func (h *CancelAnnouncementCommandHandler) Handle(ctx context.Context, cmd CancelAnnouncementCommand) error {
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

	announcementRepo := uow.AnnouncementRepository()
	a, err := announcementRepo.GetForUpdate(ctx, cmd.AnnouncementID())
	if err != nil {
		return err
	}
	if err = requireAuthorOrAdmin(ctx, uow, cmd.ActorID(), a, "cancel announcement "+a.ID().String()); err != nil {
		return err
	}

	changed, err := a.Cancel()
	if err != nil || !changed {
		return err
	}
	if err = announcementRepo.Update(ctx, a); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	deliveries, err := deliveryRepo.ListByAnnouncement(ctx, a.ID())
	if err != nil {
		return err
	}
	for _, d := range deliveries {
		if !d.Status().IsActive() {
			continue
		}
		if _, err = d.Cancel(); err != nil {
			return err
		}
		if err = deliveryRepo.Update(ctx, d); err != nil {
			return err
		}
		if err = refreshDeliveryCount(ctx, uow, d.CourierID()); err != nil {
			return err
		}
		if err = h.notifier.Notify(ctx, uow, d.CourierID(),
			notification.ProposalDeclined(d.Reference()), deliveryLink(d.ID())); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.pusher.PushTracked(ctx, uow.TrackedAggregates())
	return nil
}
