// Package membershiprepo persists contracts, subscriptions and evaluations.
package membershiprepo

import (
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/contract"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/evaluation"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/subscription"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContractDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference   string    `gorm:"size:20;uniqueIndex"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index"`
	DocumentRef string    `gorm:"size:255"`
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Status      int
}

func (ContractDTO) TableName() string {
	return "contracts"
}

type SubscriptionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;index"`
	Plan         int
	StartDate    time.Time
	EndDate      time.Time
	Active       bool
	MonthlyPrice decimal.Decimal `gorm:"type:numeric(10,2)"`
}

func (SubscriptionDTO) TableName() string {
	return "subscriptions"
}

type EvaluationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EvaluatorID uuid.UUID  `gorm:"type:uuid;not null"`
	EvaluatedID uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryID  *uuid.UUID `gorm:"type:uuid"`
	ServiceID   *uuid.UUID `gorm:"type:uuid"`
	Score       int
	Comment     string
	CreatedAt   time.Time
}

func (EvaluationDTO) TableName() string {
	return "evaluations"
}

func contractFromDomain(c *contract.Contract) ContractDTO {
	return ContractDTO{
		ID:          c.ID().Bytes(),
		Reference:   c.Reference(),
		OwnerID:     c.OwnerID().Bytes(),
		DocumentRef: c.DocumentRef(),
		Description: c.Description(),
		StartDate:   c.Period().Start,
		EndDate:     c.Period().End,
		Status:      int(c.Status()),
	}
}

func contractToDomain(dto ContractDTO) (*contract.Contract, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return contract.RestoreContract(
		id, dto.Reference, ownerID, dto.DocumentRef, dto.Description,
		contract.Period{Start: dto.StartDate, End: dto.EndDate},
		contract.Status(dto.Status),
	)
}

func subscriptionFromDomain(s *subscription.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:           s.ID().Bytes(),
		UserID:       s.UserID().Bytes(),
		Plan:         int(s.Plan()),
		StartDate:    s.Start(),
		EndDate:      s.End(),
		Active:       s.IsActive(),
		MonthlyPrice: s.MonthlyPrice().Decimal(),
	}
}

func subscriptionToDomain(dto SubscriptionDTO) (*subscription.Subscription, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.MonthlyPrice)
	if err != nil {
		return nil, err
	}

	return subscription.RestoreSubscription(
		id, userID, subscription.Plan(dto.Plan), dto.StartDate, dto.EndDate, dto.Active, price)
}

func evaluationFromDomain(e *evaluation.Evaluation) EvaluationDTO {
	return EvaluationDTO{
		ID:          e.ID().Bytes(),
		EvaluatorID: e.EvaluatorID().Bytes(),
		EvaluatedID: e.EvaluatedID().Bytes(),
		DeliveryID:  kernel.BytesPtr(e.Subject().DeliveryID),
		ServiceID:   kernel.BytesPtr(e.Subject().ServiceID),
		Score:       e.Score(),
		Comment:     e.Comment(),
		CreatedAt:   e.CreatedAt(),
	}
}
