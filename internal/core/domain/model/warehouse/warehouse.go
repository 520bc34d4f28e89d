package warehouse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")
	ErrDuplicateBoxReference     = fmt.Errorf("%w: storage box reference already used in this warehouse", errs.ErrStateConflict)
)

// Site is the postal identity of a warehouse.
type Site struct {
	Name       string
	Address    string
	City       string
	PostalCode string
}

// Warehouse is the aggregate root owning its storage boxes.
type Warehouse struct {
	id            kernel.UUID
	site          Site
	totalCapacity int
	isOffice      bool
	boxes         []*StorageBox

	guard guard.ConstructorGuard
}

// NewWarehouse creates a warehouse with no boxes.
func NewWarehouse(id kernel.UUID, site Site, totalCapacity int, isOffice bool) (*Warehouse, error) {
	w := &Warehouse{
		isOffice: isOffice,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setSite(site),
		w.setTotalCapacity(totalCapacity),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWarehouse rebuilds a warehouse together with its boxes.
func RestoreWarehouse(id kernel.UUID, site Site, totalCapacity int, isOffice bool, boxes []*StorageBox) (*Warehouse, error) {
	w, err := NewWarehouse(id, site, totalCapacity, isOffice)
	if err != nil {
		return nil, err
	}

	for _, box := range boxes {
		if err = box.Validate(); err != nil {
			return nil, err
		}
	}
	w.boxes = boxes
	return w, nil
}

func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

func (w *Warehouse) Site() Site {
	return w.site
}

func (w *Warehouse) TotalCapacity() int {
	return w.totalCapacity
}

func (w *Warehouse) IsOffice() bool {
	return w.isOffice
}

// Boxes returns a copy of the box slice.
func (w *Warehouse) Boxes() []*StorageBox {
	boxes := make([]*StorageBox, len(w.boxes))
	copy(boxes, w.boxes)
	return boxes
}

// AddBox creates an available box. References are unique per warehouse.
func (w *Warehouse) AddBox(reference string, capacity decimal.Decimal, dailyRate kernel.Money) (*StorageBox, error) {
	for _, b := range w.boxes {
		if b.reference == reference {
			return nil, ErrDuplicateBoxReference
		}
	}

	box, err := NewStorageBox(kernel.NewUUID(), reference, capacity, dailyRate)
	if err != nil {
		return nil, err
	}

	w.boxes = append(w.boxes, box)
	return box, nil
}

// Box looks a box up by ID.
func (w *Warehouse) Box(boxID kernel.UUID) (*StorageBox, error) {
	for _, b := range w.boxes {
		if b.id.IsEqual(boxID) {
			return b, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("storage box", boxID.String())
}

// AvailableBoxes lists boxes no delivery holds.
func (w *Warehouse) AvailableBoxes() []*StorageBox {
	var available []*StorageBox
	for _, b := range w.boxes {
		if b.IsAvailable() {
			available = append(available, b)
		}
	}
	return available
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setSite(site Site) error {
	site.Name = strings.TrimSpace(site.Name)
	site.City = strings.TrimSpace(site.City)

	var errList []error
	if site.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if site.City == "" {
		errList = append(errList, errs.NewValueIsRequiredError("city"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	w.site = site
	return nil
}

func (w *Warehouse) setTotalCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"total capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	w.totalCapacity = capacity
	return nil
}
