package commands

import (
	"context"
)

type RegisterAnnouncementViewCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewRegisterAnnouncementViewCommandHandler(uowFactory DeliveryUoWFactory) RegisterAnnouncementViewCommandHandler {
	return RegisterAnnouncementViewCommandHandler{uowFactory: uowFactory}
}

func (h *RegisterAnnouncementViewCommandHandler) Handle(ctx context.Context, cmd RegisterAnnouncementViewCommand) error {
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

	repo := uow.AnnouncementRepository()
	a, err := repo.GetForUpdate(ctx, cmd.AnnouncementID())
	if err != nil {
		return err
	}

	a.RegisterView()
	if err = repo.Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
