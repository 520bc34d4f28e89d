package commands

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrCancelAnnouncementCommandIsNotConstructed = errors.New(
	"CancelAnnouncementCommand must be created via NewCancelAnnouncementCommand constructor",
)

type CancelAnnouncementCommand struct {
	announcementID kernel.UUID
	actorID        kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelAnnouncementCommand(announcementID, actorID kernel.UUID) (CancelAnnouncementCommand, error) {
	if err := errors.Join(announcementID.Validate(), actorID.Validate()); err != nil {
		return CancelAnnouncementCommand{}, err
	}

	return CancelAnnouncementCommand{
		announcementID: announcementID,
		actorID:        actorID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CancelAnnouncementCommand) Validate() error {
	return c.guard.Validate(ErrCancelAnnouncementCommandIsNotConstructed)
}

func (c CancelAnnouncementCommand) AnnouncementID() kernel.UUID {
	return c.announcementID
}

func (c CancelAnnouncementCommand) ActorID() kernel.UUID {
	return c.actorID
}
