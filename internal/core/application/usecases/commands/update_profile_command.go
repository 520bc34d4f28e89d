package commands

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// Contact is the editable part of an account.
type Contact struct {
	FirstName string
	LastName  string
	Phone     string
	Address   string
	Language  user.Language
}

type UpdateProfileCommand struct {
	userID  kernel.UUID
	contact Contact

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(userID kernel.UUID, contact Contact) (UpdateProfileCommand, error) {
	lang, err := user.ParseLanguage(string(contact.Language))
	if err = errors.Join(userID.Validate(), err); err != nil {
		return UpdateProfileCommand{}, err
	}
	contact.Language = lang

	return UpdateProfileCommand{
		userID:  userID,
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateProfileCommand) Contact() Contact {
	return c.contact
}
