package messagerepo

import (
	"context"
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/audit"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/message"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormMessageRepository implements ports.MessageRepository using GORM.
type GormMessageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormMessageRepository(db *gorm.DB, tracker aggregateTracker) *GormMessageRepository {
	return &GormMessageRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMessageRepository) Add(ctx context.Context, m *message.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := messageFromDomain(m)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(m.ID(), m)
	return nil
}

func (r *GormMessageRepository) Get(ctx context.Context, id kernel.UUID) (*message.Message, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MessageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("message", id.String())
		}
		return nil, err
	}

	return messageToDomain(dto)
}

// GormLoginRecordRepository implements ports.LoginRecordRepository using GORM.
// Records are not tracked: nothing is pushed for a login.
type GormLoginRecordRepository struct {
	db *gorm.DB
}

func NewGormLoginRecordRepository(db *gorm.DB) *GormLoginRecordRepository {
	return &GormLoginRecordRepository{db: db}
}

func (r *GormLoginRecordRepository) Add(ctx context.Context, record *audit.LoginRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := loginRecordFromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}
