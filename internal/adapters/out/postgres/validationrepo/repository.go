package validationrepo

import (
	"context"
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormValidationRepository implements ports.ValidationRepository using GORM.
type GormValidationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormValidationRepository(db *gorm.DB, tracker aggregateTracker) *GormValidationRepository {
	return &GormValidationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormValidationRepository) AddRequest(ctx context.Context, req *validation.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(req)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(req.ID(), req)
	return nil
}

func (r *GormValidationRepository) UpdateRequest(ctx context.Context, req *validation.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(req)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("validation request", req.ID().String())
	}

	r.tracker.TrackAggregate(req.ID(), req)
	return nil
}

func (r *GormValidationRepository) GetRequest(ctx context.Context, id kernel.UUID) (*validation.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("validation request", id.String())
		}
		return nil, err
	}

	return requestToDomain(dto)
}

func (r *GormValidationRepository) GetLatestRequest(ctx context.Context, courierID kernel.UUID) (*validation.Request, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ?", courierID.Bytes()).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("validation request", courierID.String())
		}
		return nil, err
	}

	return requestToDomain(dto)
}

func (r *GormValidationRepository) ListRequests(
	ctx context.Context, statuses ...validation.Status,
) ([]*validation.Request, error) {
	query := r.db.WithContext(ctx).Order("created_at")
	if len(statuses) > 0 {
		values := make([]int, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, int(s))
		}
		query = query.Where("status IN ?", values)
	}

	var dtos []RequestDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	requests := make([]*validation.Request, 0, len(dtos))
	for _, dto := range dtos {
		req, err := requestToDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func (r *GormValidationRepository) AddDocument(ctx context.Context, d *validation.Document) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := documentFromDomain(d)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(d.ID(), d)
	return nil
}

func (r *GormValidationRepository) UpdateDocument(ctx context.Context, d *validation.Document) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := documentFromDomain(d)
	result := r.db.WithContext(ctx).Model(&DocumentDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("document", d.ID().String())
	}

	r.tracker.TrackAggregate(d.ID(), d)
	return nil
}

func (r *GormValidationRepository) DeleteDocument(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&DocumentDTO{}, "id = ?", id.Bytes()).Error
}

func (r *GormValidationRepository) GetDocument(ctx context.Context, id kernel.UUID) (*validation.Document, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DocumentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("document", id.String())
		}
		return nil, err
	}

	return documentToDomain(dto)
}

func (r *GormValidationRepository) ListDocumentsByOwner(
	ctx context.Context, ownerID kernel.UUID,
) ([]*validation.Document, error) {
	return r.listDocuments(ctx, "owner_id = ?", ownerID)
}

func (r *GormValidationRepository) ListDocumentsByRequest(
	ctx context.Context, requestID kernel.UUID,
) ([]*validation.Document, error) {
	return r.listDocuments(ctx, "request_id = ?", requestID)
}

func (r *GormValidationRepository) listDocuments(
	ctx context.Context, cond string, id kernel.UUID,
) ([]*validation.Document, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dtos []DocumentDTO
	if err := r.db.WithContext(ctx).Where(cond, id.Bytes()).Order("uploaded_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	docs := make([]*validation.Document, 0, len(dtos))
	for _, dto := range dtos {
		d, err := documentToDomain(dto)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}

	return docs, nil
}
