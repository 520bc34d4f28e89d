package commands

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/warehouse"
)

type CreateWarehouseCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCreateWarehouseCommandHandler(uowFactory DeliveryUoWFactory) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{uowFactory: uowFactory}
}

func (h *CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseCommand) error {
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

	if _, err := requireRole(ctx, uow, cmd.AdminID(), "create warehouses", user.Admin); err != nil {
		return err
	}

	w, err := warehouse.NewWarehouse(cmd.WarehouseID(), cmd.Site(), cmd.TotalCapacity(), cmd.IsOffice())
	if err != nil {
		return err
	}
	if err = uow.WarehouseRepository().Add(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type AddStorageBoxCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewAddStorageBoxCommandHandler(uowFactory DeliveryUoWFactory) AddStorageBoxCommandHandler {
	return AddStorageBoxCommandHandler{uowFactory: uowFactory}
}

func (h *AddStorageBoxCommandHandler) Handle(ctx context.Context, cmd AddStorageBoxCommand) error {
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

	if _, err := requireRole(ctx, uow, cmd.AdminID(), "add storage boxes", user.Admin); err != nil {
		return err
	}

	repo := uow.WarehouseRepository()
	w, err := repo.Get(ctx, cmd.WarehouseID())
	if err != nil {
		return err
	}
	if _, err = w.AddBox(cmd.Reference(), cmd.Capacity(), cmd.DailyRate()); err != nil {
		return err
	}
	if err = repo.Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
