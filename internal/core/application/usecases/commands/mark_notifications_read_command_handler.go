package commands

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

type MarkNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationsReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationsReadCommandHandler {
	return MarkNotificationsReadCommandHandler{uowFactory: uowFactory}
}

func (h *MarkNotificationsReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationsReadCommand) error {
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

	repo := uow.NotificationRepository()

	var targets []*notification.Notification
	if id := cmd.NotificationID(); id != nil {
		n, err := repo.Get(ctx, *id)
		if err != nil {
			return err
		}
		if !n.RecipientID().IsEqual(cmd.RecipientID()) {
			return errs.NewAuthorizationError(cmd.RecipientID().String(), "read notification "+id.String())
		}
		targets = append(targets, n)
	} else {
		unread, err := repo.ListByRecipient(ctx, cmd.RecipientID(), true)
		if err != nil {
			return err
		}
		targets = unread
	}

	for _, n := range targets {
		if !n.MarkRead() {
			continue
		}
		if err := repo.Update(ctx, n); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
