package commands

import (
	"context"
)

type RescheduleAnnouncementCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewRescheduleAnnouncementCommandHandler(uowFactory DeliveryUoWFactory) RescheduleAnnouncementCommandHandler {
	return RescheduleAnnouncementCommandHandler{uowFactory: uowFactory}
}

// Handle moves the announcement dates and copies them onto every delivery
// of the announcement that is still pending or in progress.
func (h *RescheduleAnnouncementCommandHandler) Handle(ctx context.Context, cmd RescheduleAnnouncementCommand) error {
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
	if err = requireAuthorOrAdmin(ctx, uow, cmd.ActorID(), a, "reschedule announcement "+a.ID().String()); err != nil {
		return err
	}

	changed, err := a.Reschedule(cmd.Schedule())
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
		resynced, resyncErr := d.Resync(a.Schedule())
		if resyncErr != nil {
			return resyncErr
		}
		if !resynced {
			continue
		}
		if err = deliveryRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
