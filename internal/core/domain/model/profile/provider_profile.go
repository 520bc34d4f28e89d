package profile

import (
	"errors"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProviderProfileIsNotConstructed = errors.New("ProviderProfile must be created via NewProviderProfile constructor")

// ProviderProfile holds the offering of a User(role=service_provider).
type ProviderProfile struct {
	userID      kernel.UUID
	specialties string
	hourlyRate  kernel.Money
	available   bool
	verified    bool
	rating      decimal.Decimal

	guard guard.ConstructorGuard
}

func NewProviderProfile(userID kernel.UUID, specialties string, hourlyRate kernel.Money) (*ProviderProfile, error) {
	if err := errors.Join(userID.Validate(), hourlyRate.Validate()); err != nil {
		return nil, err
	}

	return &ProviderProfile{
		userID:      userID,
		specialties: strings.TrimSpace(specialties),
		hourlyRate:  hourlyRate,
		available:   true,
		rating:      decimal.Zero,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreProviderProfile rebuilds a profile loaded from the store.
func RestoreProviderProfile(
	userID kernel.UUID, specialties string, hourlyRate kernel.Money, available, verified bool, rating decimal.Decimal,
) (*ProviderProfile, error) {
	p, err := NewProviderProfile(userID, specialties, hourlyRate)
	if err != nil {
		return nil, err
	}
	p.available = available
	p.verified = verified
	if err = p.UpdateRating(rating); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ProviderProfile) Validate() error {
	if p == nil {
		return ErrProviderProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProviderProfileIsNotConstructed)
}

func (p *ProviderProfile) UserID() kernel.UUID {
	return p.userID
}

func (p *ProviderProfile) Specialties() string {
	return p.specialties
}

func (p *ProviderProfile) HourlyRate() kernel.Money {
	return p.hourlyRate
}

func (p *ProviderProfile) IsAvailable() bool {
	return p.available
}

func (p *ProviderProfile) IsVerified() bool {
	return p.verified
}

func (p *ProviderProfile) Rating() decimal.Decimal {
	return p.rating
}

func (p *ProviderProfile) SetAvailability(available bool) {
	p.available = available
}

// UpdateRating stores a recomputed average score, rounded to two decimals.
func (p *ProviderProfile) UpdateRating(rating decimal.Decimal) error {
	if rating.IsNegative() || rating.GreaterThan(maxRating) {
		return errs.NewValueIsOutOfRangeError("rating", rating.String(), 0, 5)
	}
	p.rating = rating.Round(2)
	return nil
}
