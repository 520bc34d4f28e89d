package commands

import (
	"errors"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

const MinPasswordLength = 8

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrRoleIsNotRegistrable = errs.NewValueIsInvalidError("role")
)

// Registration is the account data submitted at sign-up.
type Registration struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
	Role      user.Role
	Language  user.Language
}

// RoleDetails carries the profile data of the registered role. Only the
// fields of that role are read.
type RoleDetails struct {
	VehicleType string

	CompanyName    string
	Siret          string
	CompanyAddress string

	Specialties string
	HourlyRate  kernel.Money

	IdentityCard   *Upload
	DrivingLicense *Upload
}

// RegisterUserCommand creates a client, merchant, service provider or
// courier account together with its profile. Admins are created through
// CreateAdminCommand.
type RegisterUserCommand struct {
	userID       kernel.UUID
	registration Registration
	details      RoleDetails

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(userID kernel.UUID, r Registration, details RoleDetails) (RegisterUserCommand, error) {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)

	var errList []error
	errList = append(errList, userID.Validate())
	if r.Username == "" {
		errList = append(errList, errs.NewValueIsRequiredError("username"))
	}
	if r.Email == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	}
	if len(r.Password) < MinPasswordLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("password length", len(r.Password), MinPasswordLength, "unbounded"))
	}
	switch r.Role {
	case user.Client, user.Merchant, user.ServiceProvider, user.Courier:
	default:
		errList = append(errList, ErrRoleIsNotRegistrable)
	}
	if r.Role == user.Merchant && strings.TrimSpace(details.CompanyName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("company name"))
	}
	if r.Role == user.ServiceProvider && details.HourlyRate.Validate() != nil {
		details.HourlyRate = kernel.ZeroMoney()
	}
	for _, u := range []*Upload{details.IdentityCard, details.DrivingLicense} {
		if u != nil {
			errList = append(errList, u.validate())
		}
	}
	if err := errors.Join(errList...); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		userID:       userID,
		registration: r,
		details:      details,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RegisterUserCommand) Registration() Registration {
	return c.registration
}

func (c RegisterUserCommand) Details() RoleDetails {
	return c.details
}
