package user

import (
	"fmt"

	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

// Role is fixed when a user is created. Superusers are created directly
// with the Admin role.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota
	Admin
	Courier
	Merchant
	Client
	ServiceProvider
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:     "unknown",
		Admin:           "admin",
		Courier:         "courier",
		Merchant:        "merchant",
		Client:          "client",
		ServiceProvider: "service_provider",
	}
}

// ParseRole converts the wire name of a role.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != UnknownRole && name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if r <= UnknownRole || r > ServiceProvider {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// CanPublishAnnouncements reports whether the role may post delivery requests.
func (r Role) CanPublishAnnouncements() bool {
	return r == Client || r == Merchant
}

// Language is the preferred language of notifications.
type Language string

const (
	French  Language = "fr"
	English Language = "en"

	DefaultLanguage = French
)

func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case French, English:
		return Language(s), nil
	case "":
		return DefaultLanguage, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("language", fmt.Errorf("%q is not supported", s))
	}
}
