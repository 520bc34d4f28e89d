package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	ErrUsernameIsRequired   = errs.NewValueIsRequiredError("username")
	ErrPasswordIsRequired   = errs.NewValueIsRequiredError("password hash")
)

// User is the account aggregate. It owns identity, role, wallet balance and
// preferences. Role specific data lives in the profile aggregates.
//
// Invariants:
//   - username and email are unique (enforced by the store)
//   - the role never changes after creation
//   - the wallet balance is never negative and only grows through Credit
type User struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	firstName    string
	lastName     string
	phone        string
	address      string
	role         Role
	wallet       kernel.Money
	lastLogin    *time.Time
	language     Language
	active       bool
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser creates an active account with an empty wallet.
//
// Parameters:
//   - id: identifier of the new account
//   - username: unique login name
//   - email: unique contact address
//   - passwordHash: hash produced by the password hasher, never the raw password
//   - role: immutable role of the account
//   - now: creation timestamp
//
// Example:
//
//	u, err := user.NewUser(kernel.NewUUID(), "jdoe", "jdoe@example.com", hash, user.Courier, time.Now())
func NewUser(id kernel.UUID, username, email, passwordHash string, role Role, now time.Time) (*User, error) {
	u := &User{
		wallet:    kernel.ZeroMoney(),
		language:  DefaultLanguage,
		active:    true,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreParams carries the persisted state of a User.
type RestoreParams struct {
	ID           kernel.UUID
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	Role         Role
	Wallet       kernel.Money
	LastLogin    *time.Time
	Language     Language
	Active       bool
	CreatedAt    time.Time
}

// RestoreUser rebuilds a User loaded from the store.
func RestoreUser(p RestoreParams) (*User, error) {
	u := &User{
		firstName: p.FirstName,
		lastName:  p.LastName,
		phone:     p.Phone,
		address:   p.Address,
		lastLogin: p.LastLogin,
		active:    p.Active,
		createdAt: p.CreatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(p.ID),
		u.setUsername(p.Username),
		u.setEmail(p.Email),
		u.setPasswordHash(p.PasswordHash),
		u.setRole(p.Role),
		u.setWallet(p.Wallet),
		u.SetLanguage(p.Language),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) Address() string {
	return u.address
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) Wallet() kernel.Money {
	return u.wallet
}

func (u *User) LastLogin() *time.Time {
	return u.lastLogin
}

func (u *User) Language() Language {
	return u.language
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) IsAdmin() bool {
	return u.role == Admin
}

func (u *User) HasRole(role Role) bool {
	return u.role == role
}

// FullName falls back to the username when no name was provided.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.firstName + " " + u.lastName)
	if name == "" {
		return u.username
	}
	return name
}

// UpdateContact replaces the optional personal details.
func (u *User) UpdateContact(firstName, lastName, phone, address string) {
	u.firstName = strings.TrimSpace(firstName)
	u.lastName = strings.TrimSpace(lastName)
	u.phone = strings.TrimSpace(phone)
	u.address = strings.TrimSpace(address)
}

// SetLanguage changes the notification language. An empty value selects the default.
func (u *User) SetLanguage(language Language) error {
	parsed, err := ParseLanguage(string(language))
	if err != nil {
		return err
	}
	u.language = parsed
	return nil
}

// StampLogin records a successful authentication.
func (u *User) StampLogin(now time.Time) {
	at := now.UTC()
	u.lastLogin = &at
}

// Credit adds a strictly positive amount to the wallet. It is only called by
// the payment cascade.
func (u *User) Credit(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errs.NewValueIsOutOfRangeError("credit", amount.String(), "0.01", "unbounded")
	}

	u.wallet = u.wallet.Add(amount)
	return nil
}

// Deactivate blocks future logins without deleting history.
func (u *User) Deactivate() {
	u.active = false
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameIsRequired
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordIsRequired
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setWallet(wallet kernel.Money) error {
	if err := wallet.Validate(); err != nil {
		return err
	}
	u.wallet = wallet
	return nil
}
