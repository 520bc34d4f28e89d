package commands

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrSendMessageCommandIsNotConstructed = errors.New(
	"SendMessageCommand must be created via NewSendMessageCommand constructor",
)

type SendMessageCommand struct {
	messageID      kernel.UUID
	senderID       kernel.UUID
	receiverID     kernel.UUID
	announcementID *kernel.UUID
	content        string

	guard guard.ConstructorGuard
}

func NewSendMessageCommand(
	messageID, senderID, receiverID kernel.UUID, announcementID *kernel.UUID, content string,
) (SendMessageCommand, error) {
	errList := []error{messageID.Validate(), senderID.Validate(), receiverID.Validate()}
	if announcementID != nil {
		errList = append(errList, announcementID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return SendMessageCommand{}, err
	}

	return SendMessageCommand{
		messageID:      messageID,
		senderID:       senderID,
		receiverID:     receiverID,
		announcementID: announcementID,
		content:        content,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c SendMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendMessageCommandIsNotConstructed)
}

func (c SendMessageCommand) MessageID() kernel.UUID {
	return c.messageID
}

func (c SendMessageCommand) SenderID() kernel.UUID {
	return c.senderID
}

func (c SendMessageCommand) ReceiverID() kernel.UUID {
	return c.receiverID
}

func (c SendMessageCommand) AnnouncementID() *kernel.UUID {
	return c.announcementID
}

func (c SendMessageCommand) Content() string {
	return c.content
}
