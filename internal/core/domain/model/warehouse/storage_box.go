package warehouse

import (
	"errors"
	"fmt"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const boxReferenceMaxLen = 10

var (
	// ErrStorageBoxIsNotConstructed is returned when a StorageBox was not built
	// by NewStorageBox or RestoreStorageBox.
	ErrStorageBoxIsNotConstructed = errors.New("StorageBox must be created via NewStorageBox constructor")
)

// StorageBox is a rentable box inside a warehouse. A box is unavailable
// while a delivery holds it.
type StorageBox struct {
	id         kernel.UUID
	reference  string
	capacity   decimal.Decimal
	dailyRate  kernel.Money
	deliveryID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewStorageBox creates an available box. Capacity is in cubic metres.
func NewStorageBox(id kernel.UUID, reference string, capacity decimal.Decimal, dailyRate kernel.Money) (*StorageBox, error) {
	box := &StorageBox{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		box.setID(id),
		box.setReference(reference),
		box.setCapacity(capacity),
		box.setDailyRate(dailyRate),
	); err != nil {
		return nil, err
	}

	return box, nil
}

// RestoreStorageBox rebuilds a box and its current holder from the store.
func RestoreStorageBox(
	id kernel.UUID, reference string, capacity decimal.Decimal, dailyRate kernel.Money, deliveryID *kernel.UUID,
) (*StorageBox, error) {
	box, err := NewStorageBox(id, reference, capacity, dailyRate)
	if err != nil {
		return nil, err
	}
	if deliveryID != nil {
		if err = deliveryID.Validate(); err != nil {
			return nil, err
		}
	}
	box.deliveryID = deliveryID
	return box, nil
}

func (b *StorageBox) Validate() error {
	if b == nil {
		return ErrStorageBoxIsNotConstructed
	}
	return b.guard.Validate(ErrStorageBoxIsNotConstructed)
}

func (b *StorageBox) ID() kernel.UUID {
	return b.id
}

func (b *StorageBox) Reference() string {
	return b.reference
}

func (b *StorageBox) Capacity() decimal.Decimal {
	return b.capacity
}

func (b *StorageBox) DailyRate() kernel.Money {
	return b.dailyRate
}

// DeliveryID returns the delivery holding the box, nil when available.
func (b *StorageBox) DeliveryID() *kernel.UUID {
	return b.deliveryID
}

func (b *StorageBox) IsAvailable() bool {
	return b.deliveryID == nil
}

// Reserve hands the box to a delivery. Reserving it again for the same
// delivery is a no-op.
func (b *StorageBox) Reserve(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	if b.deliveryID != nil {
		if b.deliveryID.IsEqual(deliveryID) {
			return nil
		}
		return errs.NewStateConflictError("storage box", "reserved", "reserve")
	}

	b.deliveryID = &deliveryID
	return nil
}

// Release frees the box when deliveryID holds it and reports whether
// anything changed.
func (b *StorageBox) Release(deliveryID kernel.UUID) bool {
	if b.deliveryID == nil || !b.deliveryID.IsEqual(deliveryID) {
		return false
	}
	b.deliveryID = nil
	return true
}

func (b *StorageBox) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *StorageBox) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	if len(reference) > boxReferenceMaxLen {
		return errs.NewValueIsInvalidErrorWithCause(
			"reference", fmt.Errorf("%q is longer than %d characters", reference, boxReferenceMaxLen))
	}
	b.reference = reference
	return nil
}

func (b *StorageBox) setCapacity(capacity decimal.Decimal) error {
	if !capacity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity", fmt.Errorf("%s is not greater than 0", capacity))
	}
	b.capacity = capacity
	return nil
}

func (b *StorageBox) setDailyRate(rate kernel.Money) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	b.dailyRate = rate
	return nil
}
