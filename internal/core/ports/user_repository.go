// Package ports defines the contracts between the application core and its
// adapters: repositories bound to a unit of work, and the external
// collaborators (document storage, push transport, invoice rendering,
// localization, credentials).
package ports

import (
	"context"
	"fmt"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/profile"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

// ErrUserAlreadyExists is returned by UserRepository.Add when the username or
// the email hits a unique constraint.
var ErrUserAlreadyExists = fmt.Errorf("%w: username or email is already registered", errs.ErrStateConflict)

// UserRepository persists users.
type UserRepository interface {
	// Add fails with ErrUserAlreadyExists when the username or email is taken.
	Add(ctx context.Context, aggregate *user.User) error
	Update(ctx context.Context, aggregate *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetForUpdate loads the user and locks its row until the transaction
	// ends. Used before wallet credits.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*user.User, error)

	// FindByLogin looks a user up by username or email.
	FindByLogin(ctx context.Context, login string) (*user.User, error)

	// Exists reports whether the username or the email is already taken.
	Exists(ctx context.Context, username, email string) (bool, error)

	// ListByRole returns every active user of the role.
	ListByRole(ctx context.Context, role user.Role) ([]*user.User, error)
}

// ProfileRepository persists the role-specific profiles. Profiles share
// their user's ID.
type ProfileRepository interface {
	AddCourier(ctx context.Context, p *profile.CourierProfile) error
	UpdateCourier(ctx context.Context, p *profile.CourierProfile) error
	GetCourier(ctx context.Context, userID kernel.UUID) (*profile.CourierProfile, error)

	AddMerchant(ctx context.Context, p *profile.MerchantProfile) error
	UpdateMerchant(ctx context.Context, p *profile.MerchantProfile) error
	GetMerchant(ctx context.Context, userID kernel.UUID) (*profile.MerchantProfile, error)

	AddProvider(ctx context.Context, p *profile.ProviderProfile) error
	UpdateProvider(ctx context.Context, p *profile.ProviderProfile) error
	GetProvider(ctx context.Context, userID kernel.UUID) (*profile.ProviderProfile, error)
}
