package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
	// through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrValidationCodeMismatch is returned when the code handed over by the
	// client does not match.
	ErrValidationCodeMismatch = errs.NewValueIsInvalidErrorWithCause(
		"validation code", errors.New("code does not match"))
)

// Parcel describes what the courier carries.
type Parcel struct {
	Description string
	Weight      decimal.Decimal
	Dimensions  string
}

func (p Parcel) validate() error {
	var errList []error
	if strings.TrimSpace(p.Description) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("package description"))
	}
	if !p.Weight.IsPositive() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("weight", p.Weight.String(), "0 (exclusive)", "unbounded"))
	}
	return errors.Join(errList...)
}

// Delivery is a courier's proposal on an announcement and, once accepted,
// the transport itself.
//
// Invariants:
//   - reference and validation code are generated once at creation
//   - the schedule mirrors the announcement schedule while the delivery is active
//   - actual pickup is stamped on acceptance, actual delivery on completion
type Delivery struct {
	id             kernel.UUID
	reference      string
	validationCode string
	announcementID kernel.UUID
	courierID      kernel.UUID
	clientID       kernel.UUID
	parcel         Parcel
	schedule       kernel.Schedule
	pickedUpAt     *time.Time
	deliveredAt    *time.Time
	storageBoxID   *kernel.UUID
	status         Status
	createdAt      time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a pending proposal with a fresh reference and
// validation code. The schedule is copied from the announcement.
//
// Example:
//
//	d, err := delivery.NewDelivery(kernel.NewUUID(), a.ID(), courierID, a.AuthorID(),
//	    delivery.Parcel{Description: "books", Weight: decimal.NewFromInt(3)},
//	    a.Schedule(), time.Now())
func NewDelivery(
	id, announcementID, courierID, clientID kernel.UUID,
	parcel Parcel,
	schedule kernel.Schedule,
	now time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		announcementID.Validate(),
		courierID.Validate(),
		clientID.Validate(),
		parcel.validate(),
		schedule.Validate(),
	); err != nil {
		return nil, err
	}

	code, err := kernel.NewValidationCode()
	if err != nil {
		return nil, err
	}

	parcel.Description = strings.TrimSpace(parcel.Description)
	return &Delivery{
		id:             id,
		reference:      kernel.NewDeliveryReference(),
		validationCode: code,
		announcementID: announcementID,
		courierID:      courierID,
		clientID:       clientID,
		parcel:         parcel,
		schedule:       schedule,
		status:         Pending,
		createdAt:      now.UTC(),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreParams carries every persisted field of a delivery.
type RestoreParams struct {
	ID             kernel.UUID
	Reference      string
	ValidationCode string
	AnnouncementID kernel.UUID
	CourierID      kernel.UUID
	ClientID       kernel.UUID
	Parcel         Parcel
	Schedule       kernel.Schedule
	PickedUpAt     *time.Time
	DeliveredAt    *time.Time
	StorageBoxID   *kernel.UUID
	Status         Status
	CreatedAt      time.Time
}

// RestoreDelivery rebuilds a delivery loaded from the store.
func RestoreDelivery(p RestoreParams) (*Delivery, error) {
	var errList []error
	if p.Reference == "" || len(p.Reference) > kernel.DeliveryReferenceMaxLen {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"reference", fmt.Errorf("%q is not a delivery reference", p.Reference)))
	}
	if len(p.ValidationCode) != kernel.ValidationCodeLen {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"validation code", fmt.Errorf("expected %d digits", kernel.ValidationCodeLen)))
	}
	errList = append(errList,
		p.ID.Validate(),
		p.AnnouncementID.Validate(),
		p.CourierID.Validate(),
		p.ClientID.Validate(),
		p.Schedule.Validate(),
		p.Status.Validate(),
	)
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Delivery{
		id:             p.ID,
		reference:      p.Reference,
		validationCode: p.ValidationCode,
		announcementID: p.AnnouncementID,
		courierID:      p.CourierID,
		clientID:       p.ClientID,
		parcel:         p.Parcel,
		schedule:       p.Schedule,
		pickedUpAt:     p.PickedUpAt,
		deliveredAt:    p.DeliveredAt,
		storageBoxID:   p.StorageBoxID,
		status:         p.Status,
		createdAt:      p.CreatedAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) Reference() string {
	return d.reference
}

func (d *Delivery) ValidationCode() string {
	return d.validationCode
}

func (d *Delivery) AnnouncementID() kernel.UUID {
	return d.announcementID
}

func (d *Delivery) CourierID() kernel.UUID {
	return d.courierID
}

func (d *Delivery) ClientID() kernel.UUID {
	return d.clientID
}

func (d *Delivery) Parcel() Parcel {
	return d.parcel
}

// Schedule holds the scheduled pickup (departure) and delivery (arrival).
func (d *Delivery) Schedule() kernel.Schedule {
	return d.schedule
}

func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

func (d *Delivery) StorageBoxID() *kernel.UUID {
	return d.storageBoxID
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// Accept turns the proposal into the announcement's delivery. Accepting an
// in-progress delivery is a no-op and reports false.
func (d *Delivery) Accept(now time.Time) (bool, error) {
	if d.status == InProgress {
		return false, nil
	}

	newStatus, err := d.status.Accept()
	if err != nil {
		return false, err
	}

	pickedUp := now.UTC()
	d.status = newStatus
	d.pickedUpAt = &pickedUp
	return true, nil
}

// Cancel withdraws a competing or abandoned delivery. Cancelling twice
// reports false.
func (d *Delivery) Cancel() (bool, error) {
	if d.status == Cancelled {
		return false, nil
	}

	newStatus, err := d.status.Cancel()
	if err != nil {
		return false, err
	}

	d.status = newStatus
	return true, nil
}

// MarkDelivered completes the delivery. A non-nil code must match the
// validation code. A delivered delivery reports false and is left untouched.
// The storage box link is kept for history; the box itself is released by
// the caller.
func (d *Delivery) MarkDelivered(code *string, now time.Time) (bool, error) {
	if d.status == Delivered {
		return false, nil
	}
	if code != nil && strings.TrimSpace(*code) != d.validationCode {
		return false, ErrValidationCodeMismatch
	}

	newStatus, err := d.status.Deliver()
	if err != nil {
		return false, err
	}

	delivered := now.UTC()
	d.status = newStatus
	d.deliveredAt = &delivered
	return true, nil
}

// Resync copies the announcement schedule onto an active delivery. It
// reports whether anything changed.
func (d *Delivery) Resync(schedule kernel.Schedule) (bool, error) {
	if err := schedule.Validate(); err != nil {
		return false, err
	}
	if !d.status.IsActive() || d.schedule.Equal(schedule) {
		return false, nil
	}
	d.schedule = schedule
	return true, nil
}

// AssignStorageBox links a box to an active delivery.
func (d *Delivery) AssignStorageBox(boxID kernel.UUID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}
	if !d.status.IsActive() {
		return d.status.conflict("assign a storage box to")
	}
	if d.storageBoxID != nil {
		return errs.NewStateConflictError("delivery", "boxed", "assign a second storage box to")
	}
	d.storageBoxID = &boxID
	return nil
}

// IsLate reports whether an active delivery has passed its scheduled
// delivery time.
func (d *Delivery) IsLate(now time.Time) bool {
	return d.status.IsActive() && now.After(d.schedule.Arrival())
}
