package commands

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrRegisterAnnouncementViewCommandIsNotConstructed = errors.New(
	"RegisterAnnouncementViewCommand must be created via NewRegisterAnnouncementViewCommand constructor",
)

type RegisterAnnouncementViewCommand struct {
	announcementID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRegisterAnnouncementViewCommand(announcementID kernel.UUID) (RegisterAnnouncementViewCommand, error) {
	if err := announcementID.Validate(); err != nil {
		return RegisterAnnouncementViewCommand{}, err
	}

	return RegisterAnnouncementViewCommand{
		announcementID: announcementID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterAnnouncementViewCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAnnouncementViewCommandIsNotConstructed)
}

func (c RegisterAnnouncementViewCommand) AnnouncementID() kernel.UUID {
	return c.announcementID
}
