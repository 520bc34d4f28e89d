package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Repositories obtained after Begin
// run inside the transaction. Aggregates added or updated through them are
// tracked and stay available after Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// TrackedAggregates returns the aggregates written in this unit of work,
	// in write order.
	TrackedAggregates() []any

	UserRepository() UserRepository
	ProfileRepository() ProfileRepository
	ValidationRepository() ValidationRepository
	AnnouncementRepository() AnnouncementRepository
	DeliveryRepository() DeliveryRepository
	WarehouseRepository() WarehouseRepository
	PaymentRepository() PaymentRepository
	NotificationRepository() NotificationRepository
	ContractRepository() ContractRepository
	SubscriptionRepository() SubscriptionRepository
	EvaluationRepository() EvaluationRepository
	ServiceRepository() ServiceRepository
	MessageRepository() MessageRepository
	LoginRecordRepository() LoginRecordRepository
}
