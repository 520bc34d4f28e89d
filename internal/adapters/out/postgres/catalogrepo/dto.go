// Package catalogrepo persists the services offered by providers.
package catalogrepo

import (
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/catalog"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderID  uuid.UUID `gorm:"type:uuid;index"`
	Name        string    `gorm:"size:255"`
	Description string
	Kind        int
	Price       decimal.Decimal `gorm:"type:numeric(10,2)"`
	Available   bool
	CreatedAt   time.Time
}

func (ServiceDTO) TableName() string {
	return "services"
}

func fromDomain(s *catalog.Service) ServiceDTO {
	return ServiceDTO{
		ID:          s.ID().Bytes(),
		ProviderID:  s.ProviderID().Bytes(),
		Name:        s.Name(),
		Description: s.Description(),
		Kind:        int(s.Kind()),
		Price:       s.Price().Decimal(),
		Available:   s.IsAvailable(),
		CreatedAt:   s.CreatedAt(),
	}
}

func toDomain(dto ServiceDTO) (*catalog.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreService(
		id, providerID, dto.Name, dto.Description, catalog.Kind(dto.Kind), price, dto.Available, dto.CreatedAt)
}
