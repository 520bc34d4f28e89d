// Package http exposes the back office as a JSON REST API over echo.
package http

import (
	"context"
	"net/http"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/queries"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/ports"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// CommandHandler runs one state-changing use case.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler runs one read-side use case.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups every use case reachable over HTTP.
type Handlers struct {
	RegisterUser   CommandHandler[commands.RegisterUserCommand]
	Login          QueryHandler[commands.LoginCommand, string]
	UpdateProfile  CommandHandler[commands.UpdateProfileCommand]
	SubmitDocument CommandHandler[commands.SubmitDocumentCommand]

	ValidateDocument CommandHandler[commands.ValidateDocumentCommand]
	RejectDocument   CommandHandler[commands.RejectDocumentCommand]
	ReviewRequest    CommandHandler[commands.ReviewValidationRequestCommand]

	CreateAnnouncement     CommandHandler[commands.CreateAnnouncementCommand]
	RescheduleAnnouncement CommandHandler[commands.RescheduleAnnouncementCommand]
	CancelAnnouncement     CommandHandler[commands.CancelAnnouncementCommand]
	RegisterView           CommandHandler[commands.RegisterAnnouncementViewCommand]

	ProposeDelivery  CommandHandler[commands.ProposeDeliveryCommand]
	AcceptDelivery   CommandHandler[commands.AcceptDeliveryCommand]
	MarkDelivered    CommandHandler[commands.MarkDeliveredCommand]
	AssignStorageBox CommandHandler[commands.AssignStorageBoxCommand]

	CreateWarehouse CommandHandler[commands.CreateWarehouseCommand]
	AddStorageBox   CommandHandler[commands.AddStorageBoxCommand]

	RecordPayment       CommandHandler[commands.RecordPaymentCommand]
	UpdatePaymentStatus CommandHandler[commands.UpdatePaymentStatusCommand]

	MarkNotificationsRead CommandHandler[commands.MarkNotificationsReadCommand]
	SendMessage           CommandHandler[commands.SendMessageCommand]

	CreateContract   CommandHandler[commands.CreateContractCommand]
	ChangeContract   CommandHandler[commands.ChangeContractCommand]
	Subscribe        CommandHandler[commands.SubscribeCommand]
	SubmitEvaluation CommandHandler[commands.SubmitEvaluationCommand]
	CreateService    CommandHandler[commands.CreateServiceCommand]

	ListValidationRequests QueryHandler[queries.ListValidationRequestsQuery, []queries.ValidationRequestResponse]
	ListDocuments          QueryHandler[queries.ListDocumentsQuery, []queries.DocumentResponse]
	ListMyAnnouncements    QueryHandler[queries.ListMyAnnouncementsQuery, []queries.AnnouncementResponse]
	ListAvailable          QueryHandler[queries.ListAvailableAnnouncementsQuery, []queries.AnnouncementResponse]
	ListMyDeliveries       QueryHandler[queries.ListMyDeliveriesQuery, []queries.DeliveryResponse]
	ListNotifications      QueryHandler[queries.ListNotificationsQuery, []queries.NotificationResponse]
	MonthlyRevenue         QueryHandler[queries.MonthlyRevenueQuery, []queries.MonthlyRevenueResponse]
	ListMessages           QueryHandler[queries.ListMessagesQuery, []queries.MessageResponse]
	ListLoginRecords       QueryHandler[queries.ListLoginRecordsQuery, []queries.LoginRecordResponse]
}

// Server coordinates between HTTP requests and the application use cases.
type Server struct {
	handlers  Handlers
	tokens    TokenParser
	storage   ports.DocumentStorage
	validator *OpenAPIValidator
	logger    *zap.Logger
}

// NewServer fails when the embedded OpenAPI document does not load.
func NewServer(
	handlers Handlers, tokens TokenParser, storage ports.DocumentStorage, logger *zap.Logger,
) (*Server, error) {
	validator, err := NewOpenAPIValidator()
	if err != nil {
		return nil, err
	}

	return &Server{
		handlers:  handlers,
		tokens:    tokens,
		storage:   storage,
		validator: validator,
		logger:    logger.Named("http"),
	}, nil
}

// NewEcho builds an echo instance with the validator, error handler and
// request logger installed.
func NewEcho(logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger.Named("http"))
	e.Use(RequestLogger(logger.Named("http")))
	return e
}

// Register mounts every route under /api/v1, the OpenAPI document and the
// Swagger UI. Requests are checked against the document after
// authentication and role checks, so callers without access never learn
// the expected payload.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yaml", ServeOpenAPI)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	checked := s.validator.Middleware()

	api := e.Group("/api/v1")
	api.POST("/auth/register", s.RegisterAccount, checked)
	api.POST("/auth/register/courier", s.RegisterCourier)
	api.POST("/auth/login", s.Login, checked)

	authed := api.Group("", Authenticate(s.tokens))
	authed.POST("/auth/logout", s.Logout)
	authed.PUT("/auth/profile", s.UpdateProfile, checked)

	publishers := RequireRole(user.Client, user.Merchant)
	authed.POST("/announcements", s.CreateAnnouncement, publishers, checked)
	authed.GET("/announcements/mine", s.ListMyAnnouncements, publishers)
	authed.GET("/announcements/available", s.ListAvailableAnnouncements, RequireRole(user.Courier))
	authed.PUT("/announcements/:id/schedule", s.RescheduleAnnouncement, publishers, checked)
	authed.POST("/announcements/:id/cancel", s.CancelAnnouncement)
	authed.POST("/announcements/:id/views", s.RegisterAnnouncementView)
	authed.POST("/announcements/:id/deliveries", s.ProposeDelivery, RequireRole(user.Courier), checked)

	authed.GET("/deliveries/mine", s.ListMyDeliveries)
	authed.POST("/deliveries/:id/accept", s.AcceptDelivery)
	authed.POST("/deliveries/:id/deliver", s.MarkDelivered, checked)
	authed.POST("/deliveries/:id/storage-box", s.AssignStorageBox, checked)

	authed.POST("/documents", s.SubmitDocument)
	authed.GET("/documents/mine", s.ListMyDocuments)

	authed.POST("/payments", s.RecordPayment, checked)

	authed.GET("/notifications", s.ListNotifications, checked)
	authed.POST("/notifications/read", s.MarkAllNotificationsRead)
	authed.POST("/notifications/:id/read", s.MarkNotificationRead)

	authed.GET("/messages", s.ListMessages, checked)
	authed.POST("/messages", s.SendMessage, checked)

	authed.POST("/evaluations", s.SubmitEvaluation, checked)
	authed.POST("/subscriptions", s.Subscribe, checked)
	authed.POST("/contracts/:id/sign", s.SignContract)
	authed.POST("/contracts/:id/terminate", s.TerminateContract)
	authed.POST("/services", s.CreateService, RequireRole(user.ServiceProvider), checked)

	admin := authed.Group("/admin", RequireRole(user.Admin))
	admin.GET("/validation-requests", s.ListValidationRequests)
	admin.POST("/validation-requests/:id/:decision", s.ReviewValidationRequest, checked)
	admin.POST("/documents/:id/validate", s.ValidateDocument, checked)
	admin.POST("/documents/:id/reject", s.RejectDocument, checked)
	admin.PATCH("/payments/:id/status", s.UpdatePaymentStatus, checked)
	admin.POST("/warehouses", s.CreateWarehouse, checked)
	admin.POST("/warehouses/:id/boxes", s.AddStorageBox, checked)
	admin.POST("/contracts", s.CreateContract, checked)
	admin.GET("/revenue", s.MonthlyRevenue, checked)
	admin.GET("/login-records", s.ListLoginRecords, checked)
}
