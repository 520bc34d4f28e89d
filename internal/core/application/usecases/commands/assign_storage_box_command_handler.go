package commands

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
)

type AssignStorageBoxCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewAssignStorageBoxCommandHandler(uowFactory DeliveryUoWFactory) AssignStorageBoxCommandHandler {
	return AssignStorageBoxCommandHandler{uowFactory: uowFactory}
}

// Handle reserves the box for an active delivery. The assigned courier or
// an admin may do it.
func (h *AssignStorageBoxCommandHandler) Handle(ctx context.Context, cmd AssignStorageBoxCommand) error {
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
	if !d.CourierID().IsEqual(cmd.ActorID()) {
		if _, err = requireRole(ctx, uow, cmd.ActorID(), "assign storage boxes", user.Admin); err != nil {
			return err
		}
	}

	if current := d.StorageBoxID(); current != nil && current.IsEqual(cmd.BoxID()) {
		return nil
	}

	warehouseRepo := uow.WarehouseRepository()
	w, err := warehouseRepo.GetByBox(ctx, cmd.BoxID())
	if err != nil {
		return err
	}
	box, err := w.Box(cmd.BoxID())
	if err != nil {
		return err
	}

	if err = d.AssignStorageBox(box.ID()); err != nil {
		return err
	}
	if err = box.Reserve(d.ID()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}
	if err = warehouseRepo.Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

