package commands

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrMarkNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkNotificationsReadCommand must be created via NewMarkNotificationsReadCommand constructor",
)

// MarkNotificationsReadCommand marks one notification read, or every unread
// notification of the recipient when notificationID is nil.
type MarkNotificationsReadCommand struct {
	recipientID    kernel.UUID
	notificationID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkNotificationsReadCommand(recipientID kernel.UUID, notificationID *kernel.UUID) (MarkNotificationsReadCommand, error) {
	errList := []error{recipientID.Validate()}
	if notificationID != nil {
		errList = append(errList, notificationID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return MarkNotificationsReadCommand{}, err
	}

	return MarkNotificationsReadCommand{
		recipientID:    recipientID,
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c MarkNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationsReadCommandIsNotConstructed)
}

func (c MarkNotificationsReadCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

func (c MarkNotificationsReadCommand) NotificationID() *kernel.UUID {
	return c.notificationID
}
