// Package warehouserepo persists warehouses together with their storage
// boxes. Boxes are saved through the warehouse association.
package warehouserepo

import (
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WarehouseDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Site          SiteDTO         `gorm:"embedded"`
	TotalCapacity int             `gorm:"type:int;not null"`
	IsOffice      bool            `gorm:"not null"`
	Boxes         []StorageBoxDTO `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

type SiteDTO struct {
	Name       string `gorm:"type:varchar(255);not null"`
	Address    string `gorm:"type:text;not null"`
	City       string `gorm:"type:varchar(100);not null"`
	PostalCode string `gorm:"type:varchar(10);not null"`
}

type StorageBoxDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WarehouseID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Reference   string          `gorm:"type:varchar(20);not null"`
	Capacity    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DailyRate   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeliveryID  *uuid.UUID      `gorm:"type:uuid"`
}

func (StorageBoxDTO) TableName() string {
	return "storage_boxes"
}

func fromDomain(w *warehouse.Warehouse) WarehouseDTO {
	site := w.Site()
	dto := WarehouseDTO{
		ID: w.ID().Bytes(),
		Site: SiteDTO{
			Name:       site.Name,
			Address:    site.Address,
			City:       site.City,
			PostalCode: site.PostalCode,
		},
		TotalCapacity: w.TotalCapacity(),
		IsOffice:      w.IsOffice(),
		Boxes:         make([]StorageBoxDTO, 0, len(w.Boxes())),
	}

	for _, box := range w.Boxes() {
		dto.Boxes = append(dto.Boxes, StorageBoxDTO{
			ID:          box.ID().Bytes(),
			WarehouseID: dto.ID,
			Reference:   box.Reference(),
			Capacity:    box.Capacity(),
			DailyRate:   box.DailyRate().Decimal(),
			DeliveryID:  kernel.BytesPtr(box.DeliveryID()),
		})
	}

	return dto
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	boxes := make([]*warehouse.StorageBox, 0, len(dto.Boxes))
	for _, boxDTO := range dto.Boxes {
		box, boxErr := boxToDomain(boxDTO)
		if boxErr != nil {
			return nil, boxErr
		}
		boxes = append(boxes, box)
	}

	site := warehouse.Site{
		Name:       dto.Site.Name,
		Address:    dto.Site.Address,
		City:       dto.Site.City,
		PostalCode: dto.Site.PostalCode,
	}
	return warehouse.RestoreWarehouse(id, site, dto.TotalCapacity, dto.IsOffice, boxes)
}

func boxToDomain(dto StorageBoxDTO) (*warehouse.StorageBox, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDPtrFromBytes(dto.DeliveryID)
	if err != nil {
		return nil, err
	}

	rate, err := kernel.NewMoney(dto.DailyRate)
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreStorageBox(id, dto.Reference, dto.Capacity, rate, deliveryID)
}
