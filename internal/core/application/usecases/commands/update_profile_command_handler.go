package commands

import (
	"context"
)

type UpdateProfileCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewUpdateProfileCommandHandler(uowFactory NotificationUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
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

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	c := cmd.Contact()
	u.UpdateContact(c.FirstName, c.LastName, c.Phone, c.Address)
	if err = u.SetLanguage(c.Language); err != nil {
		return err
	}
	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
