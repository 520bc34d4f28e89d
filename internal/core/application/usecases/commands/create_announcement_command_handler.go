package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/announcement"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
)

type CreateAnnouncementCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCreateAnnouncementCommandHandler(uowFactory DeliveryUoWFactory) CreateAnnouncementCommandHandler {
	return CreateAnnouncementCommandHandler{uowFactory: uowFactory}
}

// Handle publishes an announcement. Only clients and merchants may publish.
func (h *CreateAnnouncementCommandHandler) Handle(ctx context.Context, cmd CreateAnnouncementCommand) error {
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

	if _, err := requireRole(ctx, uow, cmd.AuthorID(), "publish announcements", user.Client, user.Merchant); err != nil {
		return err
	}

	a, err := announcement.NewAnnouncement(cmd.AnnouncementID(), cmd.AuthorID(), cmd.Details(), time.Now())
	if err != nil {
		return err
	}
	if err = uow.AnnouncementRepository().Add(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
