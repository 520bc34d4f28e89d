package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/ports"
)

type CreateAdminCommandHandler struct {
	uowFactory NotificationUoWFactory
	hasher     ports.PasswordHasher
}

func NewCreateAdminCommandHandler(uowFactory NotificationUoWFactory, hasher ports.PasswordHasher) CreateAdminCommandHandler {
	return CreateAdminCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h *CreateAdminCommandHandler) Handle(ctx context.Context, cmd CreateAdminCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	taken, err := userRepo.Exists(ctx, cmd.Username(), cmd.Email())
	if err != nil {
		return err
	}
	if taken {
		return ErrAccountAlreadyExists
	}

	admin, err := user.NewUser(cmd.UserID(), cmd.Username(), cmd.Email(), hash, user.Admin, time.Now())
	if err != nil {
		return err
	}
	if err = userRepo.Add(ctx, admin); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
