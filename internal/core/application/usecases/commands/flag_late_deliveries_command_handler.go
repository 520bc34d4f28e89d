package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
)

type FlagLateDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   Notifier
	pusher     Pusher
}

func NewFlagLateDeliveriesCommandHandler(
	uowFactory DeliveryUoWFactory, notifier Notifier, pusher Pusher,
) FlagLateDeliveriesCommandHandler {
	return FlagLateDeliveriesCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		pusher:     pusher,
	}
}

// Handle notifies the client of every late active delivery. A client is
// told about a given delivery at most once per calendar day (UTC).
func (h *FlagLateDeliveriesCommandHandler) Handle(ctx context.Context, cmd FlagLateDeliveriesCommand) error {
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

	active, err := uow.DeliveryRepository().ListActive(ctx)
	if err != nil {
		return err
	}

	now := cmd.Now().UTC()
	dayStart := now.Truncate(24 * time.Hour)
	notifications := uow.NotificationRepository()
	for _, d := range active {
		if !d.IsLate(now) {
			continue
		}

		link := trackingLink(d.ID())
		sent, existsErr := notifications.ExistsSince(ctx, d.ClientID(), notification.Delivery, link, dayStart)
		if existsErr != nil {
			return existsErr
		}
		if sent {
			continue
		}
		if err = h.notifier.Notify(ctx, uow, d.ClientID(), notification.DeliveryLate(d.Reference()), link); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.pusher.PushTracked(ctx, uow.TrackedAggregates())
	return nil
}
