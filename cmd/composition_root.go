package cmd

import (
	"context"
	"fmt"

	httpin "github.com/Keloce-2005/Back-office/internal/adapters/in/http"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/pdf"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/postgres"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/push"
	"github.com/Keloce-2005/Back-office/internal/adapters/out/storage"
	"github.com/Keloce-2005/Back-office/internal/core/application/notifications"
	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/queries"
	"github.com/Keloce-2005/Back-office/internal/core/ports"
	"github.com/Keloce-2005/Back-office/internal/jobs"
	"github.com/Keloce-2005/Back-office/internal/pkg/auth"
	"github.com/Keloce-2005/Back-office/internal/pkg/i18n"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger

	tokens     *auth.JWTService
	hasher     auth.BcryptHasher
	storage    ports.DocumentStorage
	renderer   *pdf.ChromedpInvoiceRenderer
	dispatcher *notifications.Dispatcher
	pusher     *notifications.Pusher
}

func NewCompositionRoot(ctx context.Context, configs Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	localizer, err := i18n.NewLocalizer()
	if err != nil {
		return nil, fmt.Errorf("build notification catalog: %w", err)
	}

	documents, err := newDocumentStorage(ctx, configs, logger)
	if err != nil {
		return nil, err
	}

	transport, err := newPushTransport(configs, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		tokens:     auth.NewJWTService(configs.JWTSecret, configs.JWTIssuer, configs.JWTExpiration),
		hasher:     auth.NewBcryptHasher(configs.BcryptCost),
		storage:    documents,
		renderer: pdf.NewChromedpInvoiceRenderer(pdf.ChromedpConfig{
			RemoteURL: configs.ChromeRemoteURL,
			NoSandbox: configs.ChromeNoSandbox,
		}, logger),
		dispatcher: notifications.NewDispatcher(localizer),
		pusher:     notifications.NewPusher(transport, logger),
	}, nil
}

func newDocumentStorage(ctx context.Context, configs Config, logger *zap.Logger) (ports.DocumentStorage, error) {
	if configs.StorageDriver == StorageDriverLocal {
		return storage.NewLocalDocumentStorage(configs.LocalStorageRoot, configs.LocalStorageURL, logger)
	}

	s3Storage, err := storage.NewS3DocumentStorage(ctx, storage.S3Config{
		Endpoint:          configs.S3Endpoint,
		Region:            configs.S3Region,
		Bucket:            configs.S3Bucket,
		AccessKey:         configs.S3AccessKey,
		SecretKey:         configs.S3SecretKey,
		UsePathStyle:      configs.S3UsePathStyle,
		PresignExpiration: configs.S3PresignTTL,
	}, logger)
	if err != nil {
		return nil, err
	}
	if err = s3Storage.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return s3Storage, nil
}

// newPushTransport falls back to logging pushes when OneSignal is not configured.
func newPushTransport(configs Config, logger *zap.Logger) (ports.PushTransport, error) {
	if configs.OneSignalAppID == "" {
		return push.NewNopTransport(logger), nil
	}
	return push.NewOneSignalTransport(push.OneSignalConfig{
		AppID:      configs.OneSignalAppID,
		RESTAPIKey: configs.OneSignalAPIKey,
		URL:        configs.OneSignalURL,
	}, logger)
}

// Close releases the browser used for invoices.
func (c *CompositionRoot) Close() {
	c.renderer.Close()
}

// Unit of work factories, narrowed to what each group of commands needs.

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) loginUoWFactory() commands.LoginUoWFactory {
	return FuncLoginUoWFactory(func() commands.LoginUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) messageUoWFactory() commands.MessageUoWFactory {
	return FuncMessageUoWFactory(func() commands.MessageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) membershipUoWFactory() commands.MembershipUoWFactory {
	return FuncMembershipUoWFactory(func() commands.MembershipUoW {
		return c.uowFactory.Create()
	})
}

// Commands

func (c *CompositionRoot) CreateCreateAdminCommandHandler() commands.CreateAdminCommandHandler {
	return commands.NewCreateAdminCommandHandler(c.notificationUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateFlagLateDeliveriesCommandHandler() commands.FlagLateDeliveriesCommandHandler {
	return commands.NewFlagLateDeliveriesCommandHandler(c.deliveryUoWFactory(), c.dispatcher, c.pusher)
}

func (c *CompositionRoot) CreateExpireMembershipsCommandHandler() commands.ExpireMembershipsCommandHandler {
	return commands.NewExpireMembershipsCommandHandler(c.membershipUoWFactory(), c.dispatcher, c.pusher)
}

// CreateHandlers wires every use case reachable over HTTP.
func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	var (
		registerUser = commands.NewRegisterUserCommandHandler(c.accountUoWFactory(), c.hasher, c.storage, c.logger)
		login        = commands.NewLoginCommandHandler(c.loginUoWFactory(), c.hasher, c.tokens)
		updateProf   = commands.NewUpdateProfileCommandHandler(c.notificationUoWFactory())
		submitDoc    = commands.NewSubmitDocumentCommandHandler(c.accountUoWFactory(), c.storage, c.logger)

		validateDoc   = commands.NewValidateDocumentCommandHandler(c.accountUoWFactory(), c.dispatcher, c.pusher)
		rejectDoc     = commands.NewRejectDocumentCommandHandler(c.accountUoWFactory(), c.dispatcher, c.pusher)
		reviewRequest = commands.NewReviewValidationRequestCommandHandler(c.accountUoWFactory(), c.dispatcher, c.pusher)

		createAnnouncement = commands.NewCreateAnnouncementCommandHandler(c.deliveryUoWFactory())
		reschedule         = commands.NewRescheduleAnnouncementCommandHandler(c.deliveryUoWFactory())
		cancel             = commands.NewCancelAnnouncementCommandHandler(c.deliveryUoWFactory(), c.dispatcher, c.pusher)
		registerView       = commands.NewRegisterAnnouncementViewCommandHandler(c.deliveryUoWFactory())

		propose       = commands.NewProposeDeliveryCommandHandler(c.deliveryUoWFactory(), c.dispatcher, c.pusher)
		accept        = commands.NewAcceptDeliveryCommandHandler(c.deliveryUoWFactory(), c.dispatcher, c.pusher)
		markDelivered = commands.NewMarkDeliveredCommandHandler(c.deliveryUoWFactory(), c.dispatcher, c.pusher)
		assignBox     = commands.NewAssignStorageBoxCommandHandler(c.deliveryUoWFactory())

		createWarehouse = commands.NewCreateWarehouseCommandHandler(c.deliveryUoWFactory())
		addBox          = commands.NewAddStorageBoxCommandHandler(c.deliveryUoWFactory())

		recordPayment = commands.NewRecordPaymentCommandHandler(
			c.paymentUoWFactory(), c.dispatcher, c.pusher, c.renderer, c.storage, c.logger)
		updatePayment = commands.NewUpdatePaymentStatusCommandHandler(
			c.paymentUoWFactory(), c.dispatcher, c.pusher, c.renderer, c.storage, c.logger)

		markRead    = commands.NewMarkNotificationsReadCommandHandler(c.notificationUoWFactory())
		sendMessage = commands.NewSendMessageCommandHandler(c.messageUoWFactory())

		createContract = commands.NewCreateContractCommandHandler(c.membershipUoWFactory())
		changeContract = commands.NewChangeContractCommandHandler(c.membershipUoWFactory())
		subscribe      = commands.NewSubscribeCommandHandler(c.membershipUoWFactory())
		evaluate       = commands.NewSubmitEvaluationCommandHandler(c.membershipUoWFactory())
		createService  = commands.NewCreateServiceCommandHandler(c.membershipUoWFactory())
	)

	return httpin.Handlers{
		RegisterUser:   &registerUser,
		Login:          &login,
		UpdateProfile:  &updateProf,
		SubmitDocument: &submitDoc,

		ValidateDocument: &validateDoc,
		RejectDocument:   &rejectDoc,
		ReviewRequest:    &reviewRequest,

		CreateAnnouncement:     &createAnnouncement,
		RescheduleAnnouncement: &reschedule,
		CancelAnnouncement:     &cancel,
		RegisterView:           &registerView,

		ProposeDelivery:  &propose,
		AcceptDelivery:   &accept,
		MarkDelivered:    &markDelivered,
		AssignStorageBox: &assignBox,

		CreateWarehouse: &createWarehouse,
		AddStorageBox:   &addBox,

		RecordPayment:       &recordPayment,
		UpdatePaymentStatus: &updatePayment,

		MarkNotificationsRead: &markRead,
		SendMessage:           &sendMessage,

		CreateContract:   &createContract,
		ChangeContract:   &changeContract,
		Subscribe:        &subscribe,
		SubmitEvaluation: &evaluate,
		CreateService:    &createService,

		ListValidationRequests: queries.NewListValidationRequestsQueryHandler(c.gormDB),
		ListDocuments:          queries.NewListDocumentsQueryHandler(c.gormDB),
		ListMyAnnouncements:    queries.NewListMyAnnouncementsQueryHandler(c.gormDB),
		ListAvailable:          queries.NewListAvailableAnnouncementsQueryHandler(c.gormDB),
		ListMyDeliveries:       queries.NewListMyDeliveriesQueryHandler(c.gormDB),
		ListNotifications:      queries.NewListNotificationsQueryHandler(c.gormDB),
		MonthlyRevenue:         queries.NewMonthlyRevenueQueryHandler(c.gormDB),
		ListMessages:           queries.NewListMessagesQueryHandler(c.gormDB),
		ListLoginRecords:       queries.NewListLoginRecordsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateServer() (*httpin.Server, error) {
	return httpin.NewServer(c.CreateHandlers(), c.tokens, c.storage, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	flagLate := c.CreateFlagLateDeliveriesCommandHandler()
	expire := c.CreateExpireMembershipsCommandHandler()
	return jobs.NewJobManager(&flagLate, &expire, c.logger)
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncLoginUoWFactory func() commands.LoginUoW

func (f FuncLoginUoWFactory) Create() commands.LoginUoW {
	return f()
}

type FuncMessageUoWFactory func() commands.MessageUoW

func (f FuncMessageUoWFactory) Create() commands.MessageUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncMembershipUoWFactory func() commands.MembershipUoW

func (f FuncMembershipUoWFactory) Create() commands.MembershipUoW {
	return f()
}
