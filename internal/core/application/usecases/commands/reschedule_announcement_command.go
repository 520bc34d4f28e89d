package commands

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrRescheduleAnnouncementCommandIsNotConstructed = errors.New(
	"RescheduleAnnouncementCommand must be created via NewRescheduleAnnouncementCommand constructor",
)

type RescheduleAnnouncementCommand struct {
	announcementID kernel.UUID
	actorID        kernel.UUID
	schedule       kernel.Schedule

	guard guard.ConstructorGuard
}

func NewRescheduleAnnouncementCommand(
	announcementID, actorID kernel.UUID, schedule kernel.Schedule,
) (RescheduleAnnouncementCommand, error) {
	if err := errors.Join(announcementID.Validate(), actorID.Validate(), schedule.Validate()); err != nil {
		return RescheduleAnnouncementCommand{}, err
	}

	return RescheduleAnnouncementCommand{
		announcementID: announcementID,
		actorID:        actorID,
		schedule:       schedule,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c RescheduleAnnouncementCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleAnnouncementCommandIsNotConstructed)
}

func (c RescheduleAnnouncementCommand) AnnouncementID() kernel.UUID {
	return c.announcementID
}

func (c RescheduleAnnouncementCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c RescheduleAnnouncementCommand) Schedule() kernel.Schedule {
	return c.schedule
}
