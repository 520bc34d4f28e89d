package profile

import (
	"errors"
	"fmt"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCourierProfileIsNotConstructed = errors.New("CourierProfile must be created via NewCourierProfile constructor")

	maxRating = decimal.NewFromInt(5)
)

// CourierProfile holds the courier specific part of a User(role=courier).
// It shares the identifier of its user.
//
// Invariants:
//   - verified is set only by the validation workflow when a request is approved
//   - rating (0..5) and deliveryCount are derived values recomputed by the
//     owning operations, never edited directly
type CourierProfile struct {
	userID              kernel.UUID
	verified            bool
	rating              decimal.Decimal
	vehicleType         string
	identityDocumentRef string
	drivingLicenseRef   string
	available           bool
	deliveryCount       int
	validationRequestID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCourierProfile creates an unverified, available profile for a freshly
// registered courier.
//
// Example:
//
//	p, err := profile.NewCourierProfile(courier.ID(), "bike")
func NewCourierProfile(userID kernel.UUID, vehicleType string) (*CourierProfile, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return &CourierProfile{
		userID:      userID,
		rating:      decimal.Zero,
		vehicleType: vehicleType,
		available:   true,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// CourierProfileParams carries the persisted state of a CourierProfile.
type CourierProfileParams struct {
	UserID              kernel.UUID
	Verified            bool
	Rating              decimal.Decimal
	VehicleType         string
	IdentityDocumentRef string
	DrivingLicenseRef   string
	Available           bool
	DeliveryCount       int
	ValidationRequestID *kernel.UUID
}

// RestoreCourierProfile rebuilds a profile loaded from the store.
func RestoreCourierProfile(p CourierProfileParams) (*CourierProfile, error) {
	profile, err := NewCourierProfile(p.UserID, p.VehicleType)
	if err != nil {
		return nil, err
	}

	profile.verified = p.Verified
	profile.identityDocumentRef = p.IdentityDocumentRef
	profile.drivingLicenseRef = p.DrivingLicenseRef
	profile.available = p.Available
	profile.validationRequestID = p.ValidationRequestID

	if err = errors.Join(
		profile.UpdateRating(p.Rating),
		profile.UpdateDeliveryCount(p.DeliveryCount),
	); err != nil {
		return nil, err
	}

	return profile, nil
}

func (p *CourierProfile) Validate() error {
	if p == nil {
		return ErrCourierProfileIsNotConstructed
	}
	return p.guard.Validate(ErrCourierProfileIsNotConstructed)
}

func (p *CourierProfile) UserID() kernel.UUID {
	return p.userID
}

// IsVerified reports whether the last terminal validation request was approved.
func (p *CourierProfile) IsVerified() bool {
	return p.verified
}

func (p *CourierProfile) Rating() decimal.Decimal {
	return p.rating
}

func (p *CourierProfile) VehicleType() string {
	return p.vehicleType
}

func (p *CourierProfile) IdentityDocumentRef() string {
	return p.identityDocumentRef
}

func (p *CourierProfile) DrivingLicenseRef() string {
	return p.drivingLicenseRef
}

func (p *CourierProfile) IsAvailable() bool {
	return p.available
}

func (p *CourierProfile) DeliveryCount() int {
	return p.deliveryCount
}

func (p *CourierProfile) ValidationRequestID() *kernel.UUID {
	return p.validationRequestID
}

// MarkVerified is called when the courier's validation request is approved.
// There is no way back: a later rejection never clears the flag.
func (p *CourierProfile) MarkVerified() {
	p.verified = true
}

// LinkValidationRequest points the profile at its most recent request.
func (p *CourierProfile) LinkValidationRequest(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	p.validationRequestID = &requestID
	return nil
}

// AttachIdentityDocument stores the file reference of the identity card
// uploaded at registration.
func (p *CourierProfile) AttachIdentityDocument(ref string) {
	p.identityDocumentRef = ref
}

// AttachDrivingLicense stores the file reference of the driving license.
func (p *CourierProfile) AttachDrivingLicense(ref string) {
	p.drivingLicenseRef = ref
}

func (p *CourierProfile) SetAvailability(available bool) {
	p.available = available
}

// UpdateRating stores a recomputed average score, rounded to two decimals.
func (p *CourierProfile) UpdateRating(rating decimal.Decimal) error {
	if rating.IsNegative() || rating.GreaterThan(maxRating) {
		return errs.NewValueIsOutOfRangeError("rating", rating.String(), 0, 5)
	}
	p.rating = rating.Round(2)
	return nil
}

// UpdateDeliveryCount stores the recomputed number of non-cancelled deliveries.
func (p *CourierProfile) UpdateDeliveryCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery count", fmt.Errorf("%d is negative", count))
	}
	p.deliveryCount = count
	return nil
}
