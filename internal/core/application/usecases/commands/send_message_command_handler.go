package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/message"
)

type SendMessageCommandHandler struct {
	uowFactory MessageUoWFactory
}

func NewSendMessageCommandHandler(uowFactory MessageUoWFactory) SendMessageCommandHandler {
	return SendMessageCommandHandler{uowFactory: uowFactory}
}

// Handle stores the message once the receiver and the announcement it
// refers to are known.
func (h *SendMessageCommandHandler) Handle(ctx context.Context, cmd SendMessageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	m, err := message.NewMessage(cmd.MessageID(), cmd.SenderID(), cmd.ReceiverID(),
		cmd.AnnouncementID(), cmd.Content(), time.Now())
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

	if _, err = uow.UserRepository().Get(ctx, cmd.ReceiverID()); err != nil {
		return err
	}

	if announcementID := cmd.AnnouncementID(); announcementID != nil {
		if _, err = uow.AnnouncementRepository().Get(ctx, *announcementID); err != nil {
			return err
		}
	}

	if err = uow.MessageRepository().Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
