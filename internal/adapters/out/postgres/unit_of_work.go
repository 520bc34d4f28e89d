// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work maintains the list of aggregates affected by one
// business transaction and coordinates writing them out.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.DeliveryRepository().Add(ctx, d); err != nil {
//	    return err
//	}
//
//	if err := uow.Commit(ctx); err != nil {
//	    return err
//	}
//
//	pusher.PushTracked(ctx, uow.TrackedAggregates())
//
// Each UnitOfWork instance owns at most one transaction and must not be
// shared between goroutines. Rollback after a successful Commit is a
// harmless no-op returning gorm.ErrInvalidTransaction.
package postgres

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/announcementrepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/catalogrepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/deliveryrepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/membershiprepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/messagerepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/notificationrepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/paymentrepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/profilerepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/userrepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/validationrepo"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres/warehouserepo"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with its own transaction state and
// tracking list.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		tracked: make([]trackedAggregate, 0),
	}
}

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWork coordinates one GORM transaction. Repositories obtained
// after Begin run inside the transaction; before Begin they use the plain
// connection.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	tracked []trackedAggregate
}

// Begin opens the transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Tracked aggregates are forgotten so
// nothing written in the discarded transaction is pushed.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = uow.tracked[:0]
	return err
}

// TrackAggregate is called by repositories after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.tracked = append(uow.tracked, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the written aggregates in write order.
func (uow *GormUnitOfWork) TrackedAggregates() []any {
	aggregates := make([]any, 0, len(uow.tracked))
	for _, t := range uow.tracked {
		aggregates = append(aggregates, t.Aggregate)
	}
	return aggregates
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProfileRepository() ports.ProfileRepository {
	return profilerepo.NewGormProfileRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ValidationRepository() ports.ValidationRepository {
	return validationrepo.NewGormValidationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AnnouncementRepository() ports.AnnouncementRepository {
	return announcementrepo.NewGormAnnouncementRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ContractRepository() ports.ContractRepository {
	return membershiprepo.NewGormContractRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SubscriptionRepository() ports.SubscriptionRepository {
	return membershiprepo.NewGormSubscriptionRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) EvaluationRepository() ports.EvaluationRepository {
	return membershiprepo.NewGormEvaluationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ServiceRepository() ports.ServiceRepository {
	return catalogrepo.NewGormServiceRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) MessageRepository() ports.MessageRepository {
	return messagerepo.NewGormMessageRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) LoginRecordRepository() ports.LoginRecordRepository {
	return messagerepo.NewGormLoginRecordRepository(uow.conn())
}
