package commands

import (
	"errors"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New("LoginCommand must be created via NewLoginCommand constructor")

// LoginCommand authenticates by username or email. The client address and
// user agent go to the login audit trail.
type LoginCommand struct {
	login     string
	password  string
	ip        string
	userAgent string

	guard guard.ConstructorGuard
}

func NewLoginCommand(login, password, ip, userAgent string) (LoginCommand, error) {
	login = strings.TrimSpace(login)

	var errList []error
	if login == "" {
		errList = append(errList, errs.NewValueIsRequiredError("login"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(errList...); err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{
		login:     login,
		password:  password,
		ip:        ip,
		userAgent: userAgent,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Login() string {
	return c.login
}

func (c LoginCommand) Password() string {
	return c.password
}

func (c LoginCommand) IP() string {
	return c.ip
}

func (c LoginCommand) UserAgent() string {
	return c.userAgent
}
