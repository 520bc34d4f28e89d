package profilerepo

import (
	"context"
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/profile"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProfileRepository implements ports.ProfileRepository using GORM.
type GormProfileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProfileRepository(db *gorm.DB, tracker aggregateTracker) *GormProfileRepository {
	return &GormProfileRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormProfileRepository) AddCourier(ctx context.Context, p *profile.CourierProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := courierFromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.UserID(), p)
	return nil
}

func (r *GormProfileRepository) UpdateCourier(ctx context.Context, p *profile.CourierProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := courierFromDomain(p)
	if err := r.update(ctx, &CourierProfileDTO{}, dto.UserID, &dto, "courier profile"); err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.UserID(), p)
	return nil
}

func (r *GormProfileRepository) GetCourier(ctx context.Context, userID kernel.UUID) (*profile.CourierProfile, error) {
	var dto CourierProfileDTO
	if err := r.first(ctx, &dto, userID, "courier profile"); err != nil {
		return nil, err
	}

	return courierToDomain(dto)
}

func (r *GormProfileRepository) AddMerchant(ctx context.Context, p *profile.MerchantProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := merchantFromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.UserID(), p)
	return nil
}

func (r *GormProfileRepository) UpdateMerchant(ctx context.Context, p *profile.MerchantProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := merchantFromDomain(p)
	if err := r.update(ctx, &MerchantProfileDTO{}, dto.UserID, &dto, "merchant profile"); err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.UserID(), p)
	return nil
}

func (r *GormProfileRepository) GetMerchant(ctx context.Context, userID kernel.UUID) (*profile.MerchantProfile, error) {
	var dto MerchantProfileDTO
	if err := r.first(ctx, &dto, userID, "merchant profile"); err != nil {
		return nil, err
	}

	return merchantToDomain(dto)
}

func (r *GormProfileRepository) AddProvider(ctx context.Context, p *profile.ProviderProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := providerFromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.UserID(), p)
	return nil
}

func (r *GormProfileRepository) UpdateProvider(ctx context.Context, p *profile.ProviderProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := providerFromDomain(p)
	if err := r.update(ctx, &ProviderProfileDTO{}, dto.UserID, &dto, "provider profile"); err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.UserID(), p)
	return nil
}

func (r *GormProfileRepository) GetProvider(ctx context.Context, userID kernel.UUID) (*profile.ProviderProfile, error) {
	var dto ProviderProfileDTO
	if err := r.first(ctx, &dto, userID, "provider profile"); err != nil {
		return nil, err
	}

	return providerToDomain(dto)
}

func (r *GormProfileRepository) first(ctx context.Context, dest any, userID kernel.UUID, name string) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).First(dest, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError(name, userID.String())
		}
		return err
	}

	return nil
}

func (r *GormProfileRepository) update(ctx context.Context, model any, userID any, dto any, name string) error {
	result := r.db.WithContext(ctx).Model(model).Where("user_id = ?", userID).Select("*").Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(name, userID)
	}

	return nil
}
