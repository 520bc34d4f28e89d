package membershiprepo

import (
	"context"
	"errors"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/contract"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/evaluation"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/subscription"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormContractRepository implements ports.ContractRepository using GORM.
type GormContractRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormContractRepository(db *gorm.DB, tracker aggregateTracker) *GormContractRepository {
	return &GormContractRepository{db: db, tracker: tracker}
}

func (r *GormContractRepository) Add(ctx context.Context, c *contract.Contract) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := contractFromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(c.ID(), c)
	return nil
}

func (r *GormContractRepository) Update(ctx context.Context, c *contract.Contract) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := contractFromDomain(c)
	result := r.db.WithContext(ctx).Model(&ContractDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("contract", c.ID().String())
	}

	r.tracker.TrackAggregate(c.ID(), c)
	return nil
}

func (r *GormContractRepository) Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContractDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contract", id.String())
		}
		return nil, err
	}

	return contractToDomain(dto)
}

func (r *GormContractRepository) ListByOwner(ctx context.Context, ownerID kernel.UUID) ([]*contract.Contract, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	return r.list(r.db.WithContext(ctx).Where("owner_id = ?", ownerID.Bytes()))
}

func (r *GormContractRepository) ListActiveEndedBefore(ctx context.Context, t time.Time) ([]*contract.Contract, error) {
	return r.list(r.db.WithContext(ctx).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", int(contract.Active), t))
}

func (r *GormContractRepository) list(query *gorm.DB) ([]*contract.Contract, error) {
	var dtos []ContractDTO
	if err := query.Order("start_date").Find(&dtos).Error; err != nil {
		return nil, err
	}

	contracts := make([]*contract.Contract, 0, len(dtos))
	for _, dto := range dtos {
		c, err := contractToDomain(dto)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}

	return contracts, nil
}

// GormSubscriptionRepository implements ports.SubscriptionRepository using GORM.
type GormSubscriptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormSubscriptionRepository(db *gorm.DB, tracker aggregateTracker) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db, tracker: tracker}
}

func (r *GormSubscriptionRepository) Add(ctx context.Context, s *subscription.Subscription) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := subscriptionFromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(s.ID(), s)
	return nil
}

func (r *GormSubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := subscriptionFromDomain(s)
	result := r.db.WithContext(ctx).Model(&SubscriptionDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("subscription", s.ID().String())
	}

	r.tracker.TrackAggregate(s.ID(), s)
	return nil
}

func (r *GormSubscriptionRepository) ListByUser(
	ctx context.Context, userID kernel.UUID,
) ([]*subscription.Subscription, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return r.list(r.db.WithContext(ctx).Where("user_id = ?", userID.Bytes()))
}

func (r *GormSubscriptionRepository) ListActiveEndedBefore(
	ctx context.Context, t time.Time,
) ([]*subscription.Subscription, error) {
	return r.list(r.db.WithContext(ctx).Where("active = ? AND end_date < ?", true, t))
}

func (r *GormSubscriptionRepository) list(query *gorm.DB) ([]*subscription.Subscription, error) {
	var dtos []SubscriptionDTO
	if err := query.Order("start_date").Find(&dtos).Error; err != nil {
		return nil, err
	}

	subscriptions := make([]*subscription.Subscription, 0, len(dtos))
	for _, dto := range dtos {
		s, err := subscriptionToDomain(dto)
		if err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, s)
	}

	return subscriptions, nil
}

// GormEvaluationRepository implements ports.EvaluationRepository using GORM.
// Evaluations are immutable once added.
type GormEvaluationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormEvaluationRepository(db *gorm.DB, tracker aggregateTracker) *GormEvaluationRepository {
	return &GormEvaluationRepository{db: db, tracker: tracker}
}

func (r *GormEvaluationRepository) Add(ctx context.Context, e *evaluation.Evaluation) error {
	if err := e.Validate(); err != nil {
		return err
	}

	dto := evaluationFromDomain(e)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(e.ID(), e)
	return nil
}

func (r *GormEvaluationRepository) ListScores(ctx context.Context, evaluatedID kernel.UUID) ([]int, error) {
	if err := evaluatedID.Validate(); err != nil {
		return nil, err
	}

	var scores []int
	err := r.db.WithContext(ctx).Model(&EvaluationDTO{}).
		Where("evaluated_id = ?", evaluatedID.Bytes()).
		Order("created_at").
		Pluck("score", &scores).Error
	if err != nil {
		return nil, err
	}

	return scores, nil
}

func (r *GormEvaluationRepository) ExistsForDelivery(
	ctx context.Context, evaluatorID, deliveryID kernel.UUID,
) (bool, error) {
	if err := errors.Join(evaluatorID.Validate(), deliveryID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&EvaluationDTO{}).
		Where("evaluator_id = ? AND delivery_id = ?", evaluatorID.Bytes(), deliveryID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
