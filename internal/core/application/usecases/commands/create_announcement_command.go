package commands

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/announcement"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrCreateAnnouncementCommandIsNotConstructed = errors.New(
	"CreateAnnouncementCommand must be created via NewCreateAnnouncementCommand constructor",
)

type CreateAnnouncementCommand struct {
	announcementID kernel.UUID
	authorID       kernel.UUID
	details        announcement.Details

	guard guard.ConstructorGuard
}

// NewCreateAnnouncementCommand only checks identifiers; the details are
// validated by the announcement itself.
func NewCreateAnnouncementCommand(
	announcementID, authorID kernel.UUID, details announcement.Details,
) (CreateAnnouncementCommand, error) {
	if err := errors.Join(announcementID.Validate(), authorID.Validate()); err != nil {
		return CreateAnnouncementCommand{}, err
	}

	return CreateAnnouncementCommand{
		announcementID: announcementID,
		authorID:       authorID,
		details:        details,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAnnouncementCommand) Validate() error {
	return c.guard.Validate(ErrCreateAnnouncementCommandIsNotConstructed)
}

func (c CreateAnnouncementCommand) AnnouncementID() kernel.UUID {
	return c.announcementID
}

func (c CreateAnnouncementCommand) AuthorID() kernel.UUID {
	return c.authorID
}

func (c CreateAnnouncementCommand) Details() announcement.Details {
	return c.details
}
