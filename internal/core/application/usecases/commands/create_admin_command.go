package commands

import (
	"errors"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrCreateAdminCommandIsNotConstructed = errors.New(
	"CreateAdminCommand must be created via NewCreateAdminCommand constructor",
)

// CreateAdminCommand is the superuser path. It is only reachable from the
// command line.
type CreateAdminCommand struct {
	userID   kernel.UUID
	username string
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewCreateAdminCommand(userID kernel.UUID, username, email, password string) (CreateAdminCommand, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	var errList []error
	errList = append(errList, userID.Validate())
	if username == "" {
		errList = append(errList, errs.NewValueIsRequiredError("username"))
	}
	if email == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	}
	if len(password) < MinPasswordLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateAdminCommand{}, err
	}

	return CreateAdminCommand{
		userID:   userID,
		username: username,
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAdminCommand) Validate() error {
	return c.guard.Validate(ErrCreateAdminCommandIsNotConstructed)
}

func (c CreateAdminCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreateAdminCommand) Username() string {
	return c.username
}

func (c CreateAdminCommand) Email() string {
	return c.email
}

func (c CreateAdminCommand) Password() string {
	return c.password
}
