// Package commands contains business operations that modify system state.
// Each handler runs one transaction through a unit of work: validate the
// command, load aggregates, apply domain rules, persist, commit, then push
// the notifications recorded during the transaction.
package commands

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/application/notifications"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// Tracker exposes the aggregates written during the transaction.
	Tracker interface {
		TrackedAggregates() []any
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	ValidationRepoFactory interface {
		ValidationRepository() ports.ValidationRepository
	}

	AnnouncementRepoFactory interface {
		AnnouncementRepository() ports.AnnouncementRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	ContractRepoFactory interface {
		ContractRepository() ports.ContractRepository
	}

	SubscriptionRepoFactory interface {
		SubscriptionRepository() ports.SubscriptionRepository
	}

	EvaluationRepoFactory interface {
		EvaluationRepository() ports.EvaluationRepository
	}

	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	MessageRepoFactory interface {
		MessageRepository() ports.MessageRepository
	}

	LoginRecordRepoFactory interface {
		LoginRecordRepository() ports.LoginRecordRepository
	}

	// NotificationUoW covers commands that only touch users and notifications.
	NotificationUoW interface {
		TxManager
		Tracker
		UserRepoFactory
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// LoginUoW adds the login audit trail.
	LoginUoW interface {
		NotificationUoW
		LoginRecordRepoFactory
	}

	LoginUoWFactory interface {
		Create() LoginUoW
	}

	// MessageUoW covers messages between users.
	MessageUoW interface {
		TxManager
		Tracker
		UserRepoFactory
		AnnouncementRepoFactory
		MessageRepoFactory
	}

	MessageUoWFactory interface {
		Create() MessageUoW
	}

	// AccountUoW covers registration, login and the document validation workflow.
	AccountUoW interface {
		NotificationUoW
		ProfileRepoFactory
		ValidationRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// DeliveryUoW covers announcements, deliveries, storage boxes and the
	// pending payment created on delivery.
	DeliveryUoW interface {
		NotificationUoW
		ProfileRepoFactory
		AnnouncementRepoFactory
		DeliveryRepoFactory
		WarehouseRepoFactory
		PaymentRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// PaymentUoW covers payments, invoices and wallet credits.
	PaymentUoW interface {
		NotificationUoW
		PaymentRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// MembershipUoW covers contracts, subscriptions, evaluations and services.
	MembershipUoW interface {
		NotificationUoW
		ProfileRepoFactory
		DeliveryRepoFactory
		ContractRepoFactory
		SubscriptionRepoFactory
		EvaluationRepoFactory
		ServiceRepoFactory
	}

	MembershipUoWFactory interface {
		Create() MembershipUoW
	}
)

// Collaborators shared by handlers.
type (
	// Notifier records localized notifications in the current transaction.
	Notifier interface {
		Notify(ctx context.Context, repos notifications.Repos, recipientID kernel.UUID,
			tpl notification.Template, link string) error
		NotifyRole(ctx context.Context, repos notifications.Repos, role user.Role,
			tpl notification.Template, link string) error
	}

	// Pusher delivers the committed notifications.
	Pusher interface {
		PushTracked(ctx context.Context, tracked []any)
	}
)
