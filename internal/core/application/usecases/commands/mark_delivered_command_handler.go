package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/delivery"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/payment"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

type MarkDeliveredCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   Notifier
	pusher     Pusher
}

func NewMarkDeliveredCommandHandler(
	uowFactory DeliveryUoWFactory, notifier Notifier, pusher Pusher,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		pusher:     pusher,
	}
}

// Handle completes an in-progress delivery: the announcement is completed,
// the storage box released and a pending payment from the client to the
// courier is recorded at the announcement price. Marking a delivered
// delivery again changes nothing.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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
	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	if err = h.authorize(ctx, uow, cmd, d); err != nil {
		return err
	}

	announcementRepo := uow.AnnouncementRepository()
	a, err := announcementRepo.GetForUpdate(ctx, d.AnnouncementID())
	if err != nil {
		return err
	}

	now := time.Now()
	changed, err := d.MarkDelivered(cmd.Code(), now)
	if err != nil || !changed {
		return err
	}
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	if _, err = a.Complete(); err != nil {
		return err
	}
	if err = announcementRepo.Update(ctx, a); err != nil {
		return err
	}

	if err = releaseStorageBox(ctx, uow, d); err != nil {
		return err
	}

	if a.Price().IsPositive() {
		deliveryID := d.ID()
		p, payErr := payment.NewPayment(cmd.PaymentID(), "", d.ClientID(), d.CourierID(),
			payment.Subject{DeliveryID: &deliveryID}, a.Price(), payment.Card, payment.Pending, now)
		if payErr != nil {
			return payErr
		}
		if err = uow.PaymentRepository().Add(ctx, p); err != nil {
			return err
		}
	}

	if err = h.notifier.Notify(ctx, uow, d.ClientID(),
		notification.DeliveryCompleted(d.Reference()), deliveryLink(d.ID())); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.pusher.PushTracked(ctx, uow.TrackedAggregates())
	return nil
}

// authorize lets the assigned courier, the client or an admin through.
func (h *MarkDeliveredCommandHandler) authorize(
	ctx context.Context, uow DeliveryUoW, cmd MarkDeliveredCommand, d *delivery.Delivery,
) error {
	if d.CourierID().IsEqual(cmd.ActorID()) || d.ClientID().IsEqual(cmd.ActorID()) {
		return nil
	}
	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}
	if actor.IsActive() && actor.HasRole(user.Admin) {
		return nil
	}
	return errs.NewAuthorizationError(cmd.ActorID().String(), "mark delivery "+d.ID().String()+" delivered")
}

func releaseStorageBox(ctx context.Context, uow DeliveryUoW, d *delivery.Delivery) error {
	boxID := d.StorageBoxID()
	if boxID == nil {
		return nil
	}

	warehouseRepo := uow.WarehouseRepository()
	w, err := warehouseRepo.GetByBox(ctx, *boxID)
	if err != nil {
		return err
	}
	box, err := w.Box(*boxID)
	if err != nil {
		return err
	}
	if !box.Release(d.ID()) {
		return nil
	}
	return warehouseRepo.Update(ctx, w)
}
