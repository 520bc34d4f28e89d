package announcementrepo

import (
	"context"
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/announcement"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAnnouncementRepository implements ports.AnnouncementRepository using GORM.
type GormAnnouncementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormAnnouncementRepository(db *gorm.DB, tracker aggregateTracker) *GormAnnouncementRepository {
	return &GormAnnouncementRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormAnnouncementRepository) Add(ctx context.Context, aggregate *announcement.Announcement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAnnouncementRepository) Update(ctx context.Context, aggregate *announcement.Announcement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AnnouncementDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("announcement", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAnnouncementRepository) Get(ctx context.Context, id kernel.UUID) (*announcement.Announcement, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormAnnouncementRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*announcement.Announcement, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormAnnouncementRepository) get(db *gorm.DB, id kernel.UUID) (*announcement.Announcement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AnnouncementDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("announcement", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByAuthor returns the author's announcements, newest first.
func (r *GormAnnouncementRepository) ListByAuthor(
	ctx context.Context, authorID kernel.UUID,
) ([]*announcement.Announcement, error) {
	if err := authorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AnnouncementDTO
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	announcements := make([]*announcement.Announcement, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}

	return announcements, nil
}
