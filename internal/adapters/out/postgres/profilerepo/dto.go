// Package profilerepo persists the role-specific profiles. Each profile row
// is keyed by its user's ID and removed together with the user.
package profilerepo

import (
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/profile"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CourierProfileDTO struct {
	UserID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Verified            bool
	Rating              decimal.Decimal `gorm:"type:numeric(3,2)"`
	VehicleType         string          `gorm:"size:50"`
	IdentityDocumentRef string          `gorm:"size:255"`
	DrivingLicenseRef   string          `gorm:"size:255"`
	Available           bool
	DeliveryCount       int
	ValidationRequestID *uuid.UUID `gorm:"type:uuid"`
}

func (CourierProfileDTO) TableName() string {
	return "courier_profiles"
}

type MerchantProfileDTO struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName    string    `gorm:"size:255"`
	Siret          string    `gorm:"size:14"`
	CompanyAddress string
	ContractSigned bool
}

func (MerchantProfileDTO) TableName() string {
	return "merchant_profiles"
}

type ProviderProfileDTO struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Specialties string
	HourlyRate  decimal.Decimal `gorm:"type:numeric(10,2)"`
	Available   bool
	Verified    bool
	Rating      decimal.Decimal `gorm:"type:numeric(3,2)"`
}

func (ProviderProfileDTO) TableName() string {
	return "provider_profiles"
}

func courierFromDomain(p *profile.CourierProfile) CourierProfileDTO {
	return CourierProfileDTO{
		UserID:              p.UserID().Bytes(),
		Verified:            p.IsVerified(),
		Rating:              p.Rating(),
		VehicleType:         p.VehicleType(),
		IdentityDocumentRef: p.IdentityDocumentRef(),
		DrivingLicenseRef:   p.DrivingLicenseRef(),
		Available:           p.IsAvailable(),
		DeliveryCount:       p.DeliveryCount(),
		ValidationRequestID: kernel.BytesPtr(p.ValidationRequestID()),
	}
}

func courierToDomain(dto CourierProfileDTO) (*profile.CourierProfile, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDPtrFromBytes(dto.ValidationRequestID)
	if err != nil {
		return nil, err
	}

	return profile.RestoreCourierProfile(profile.CourierProfileParams{
		UserID:              userID,
		Verified:            dto.Verified,
		Rating:              dto.Rating,
		VehicleType:         dto.VehicleType,
		IdentityDocumentRef: dto.IdentityDocumentRef,
		DrivingLicenseRef:   dto.DrivingLicenseRef,
		Available:           dto.Available,
		DeliveryCount:       dto.DeliveryCount,
		ValidationRequestID: requestID,
	})
}

func merchantFromDomain(p *profile.MerchantProfile) MerchantProfileDTO {
	return MerchantProfileDTO{
		UserID:         p.UserID().Bytes(),
		CompanyName:    p.CompanyName(),
		Siret:          p.Siret(),
		CompanyAddress: p.CompanyAddress(),
		ContractSigned: p.HasSignedContract(),
	}
}

func merchantToDomain(dto MerchantProfileDTO) (*profile.MerchantProfile, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return profile.RestoreMerchantProfile(userID, dto.CompanyName, dto.Siret, dto.CompanyAddress, dto.ContractSigned)
}

func providerFromDomain(p *profile.ProviderProfile) ProviderProfileDTO {
	return ProviderProfileDTO{
		UserID:      p.UserID().Bytes(),
		Specialties: p.Specialties(),
		HourlyRate:  p.HourlyRate().Decimal(),
		Available:   p.IsAvailable(),
		Verified:    p.IsVerified(),
		Rating:      p.Rating(),
	}
}

func providerToDomain(dto ProviderProfileDTO) (*profile.ProviderProfile, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	rate, err := kernel.NewMoney(dto.HourlyRate)
	if err != nil {
		return nil, err
	}

	return profile.RestoreProviderProfile(userID, dto.Specialties, rate, dto.Available, dto.Verified, dto.Rating)
}
