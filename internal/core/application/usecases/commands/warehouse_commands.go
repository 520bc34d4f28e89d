package commands

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/warehouse"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateWarehouseCommandIsNotConstructed = errors.New(
		"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
	)
	ErrAddStorageBoxCommandIsNotConstructed = errors.New(
		"AddStorageBoxCommand must be created via NewAddStorageBoxCommand constructor",
	)
)

type CreateWarehouseCommand struct {
	warehouseID   kernel.UUID
	adminID       kernel.UUID
	site          warehouse.Site
	totalCapacity int
	isOffice      bool

	guard guard.ConstructorGuard
}

func NewCreateWarehouseCommand(
	warehouseID, adminID kernel.UUID, site warehouse.Site, totalCapacity int, isOffice bool,
) (CreateWarehouseCommand, error) {
	if err := errors.Join(warehouseID.Validate(), adminID.Validate()); err != nil {
		return CreateWarehouseCommand{}, err
	}

	return CreateWarehouseCommand{
		warehouseID:   warehouseID,
		adminID:       adminID,
		site:          site,
		totalCapacity: totalCapacity,
		isOffice:      isOffice,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

func (c CreateWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c CreateWarehouseCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c CreateWarehouseCommand) Site() warehouse.Site {
	return c.site
}

func (c CreateWarehouseCommand) TotalCapacity() int {
	return c.totalCapacity
}

func (c CreateWarehouseCommand) IsOffice() bool {
	return c.isOffice
}

type AddStorageBoxCommand struct {
	warehouseID kernel.UUID
	adminID     kernel.UUID
	reference   string
	capacity    decimal.Decimal
	dailyRate   kernel.Money

	guard guard.ConstructorGuard
}

func NewAddStorageBoxCommand(
	warehouseID, adminID kernel.UUID, reference string, capacity decimal.Decimal, dailyRate kernel.Money,
) (AddStorageBoxCommand, error) {
	if err := errors.Join(warehouseID.Validate(), adminID.Validate(), dailyRate.Validate()); err != nil {
		return AddStorageBoxCommand{}, err
	}

	return AddStorageBoxCommand{
		warehouseID: warehouseID,
		adminID:     adminID,
		reference:   reference,
		capacity:    capacity,
		dailyRate:   dailyRate,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AddStorageBoxCommand) Validate() error {
	return c.guard.Validate(ErrAddStorageBoxCommandIsNotConstructed)
}

func (c AddStorageBoxCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c AddStorageBoxCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c AddStorageBoxCommand) Reference() string {
	return c.reference
}

func (c AddStorageBoxCommand) Capacity() decimal.Decimal {
	return c.capacity
}

func (c AddStorageBoxCommand) DailyRate() kernel.Money {
	return c.dailyRate
}
