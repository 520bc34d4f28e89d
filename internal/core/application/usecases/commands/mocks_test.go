package commands_test

import (
	"context"
	"io"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/application/notifications"
	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/announcement"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/audit"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/delivery"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/message"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/payment"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/profile"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"
	"github.com/Keloce-2005/Back-office/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.

type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) TrackedAggregates() []any {
	args := m.Called()
	tracked, _ := args.Get(0).([]any)
	return tracked
}

func (m *MockUnitOfWork) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUnitOfWork) ProfileRepository() ports.ProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ProfileRepository)
}

func (m *MockUnitOfWork) ValidationRepository() ports.ValidationRepository {
	args := m.Called()
	return args.Get(0).(ports.ValidationRepository)
}

func (m *MockUnitOfWork) AnnouncementRepository() ports.AnnouncementRepository {
	args := m.Called()
	return args.Get(0).(ports.AnnouncementRepository)
}

func (m *MockUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockUnitOfWork) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUnitOfWork) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockUnitOfWork) ContractRepository() ports.ContractRepository {
	args := m.Called()
	return args.Get(0).(ports.ContractRepository)
}

func (m *MockUnitOfWork) SubscriptionRepository() ports.SubscriptionRepository {
	args := m.Called()
	return args.Get(0).(ports.SubscriptionRepository)
}

func (m *MockUnitOfWork) EvaluationRepository() ports.EvaluationRepository {
	args := m.Called()
	return args.Get(0).(ports.EvaluationRepository)
}

func (m *MockUnitOfWork) ServiceRepository() ports.ServiceRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceRepository)
}

func (m *MockUnitOfWork) MessageRepository() ports.MessageRepository {
	args := m.Called()
	return args.Get(0).(ports.MessageRepository)
}

func (m *MockUnitOfWork) LoginRecordRepository() ports.LoginRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.LoginRecordRepository)
}

// The factories hand out the same mocked unit of work, narrowed to the
// interface each handler expects.

type loginUoWFactory struct{ uow *MockUnitOfWork }

func (f loginUoWFactory) Create() commands.LoginUoW { return f.uow }

type messageUoWFactory struct{ uow *MockUnitOfWork }

func (f messageUoWFactory) Create() commands.MessageUoW { return f.uow }

type accountUoWFactory struct{ uow *MockUnitOfWork }

func (f accountUoWFactory) Create() commands.AccountUoW { return f.uow }

type deliveryUoWFactory struct{ uow *MockUnitOfWork }

func (f deliveryUoWFactory) Create() commands.DeliveryUoW { return f.uow }

type paymentUoWFactory struct{ uow *MockUnitOfWork }

func (f paymentUoWFactory) Create() commands.PaymentUoW { return f.uow }

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	args := m.Called(ctx, login)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	args := m.Called(ctx, role)
	users, _ := args.Get(0).([]*user.User)
	return users, args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) AddCourier(ctx context.Context, p *profile.CourierProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateCourier(ctx context.Context, p *profile.CourierProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) GetCourier(ctx context.Context, userID kernel.UUID) (*profile.CourierProfile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*profile.CourierProfile)
	return p, args.Error(1)
}

func (m *MockProfileRepository) AddMerchant(ctx context.Context, p *profile.MerchantProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateMerchant(ctx context.Context, p *profile.MerchantProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) GetMerchant(ctx context.Context, userID kernel.UUID) (*profile.MerchantProfile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*profile.MerchantProfile)
	return p, args.Error(1)
}

func (m *MockProfileRepository) AddProvider(ctx context.Context, p *profile.ProviderProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateProvider(ctx context.Context, p *profile.ProviderProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) GetProvider(ctx context.Context, userID kernel.UUID) (*profile.ProviderProfile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*profile.ProviderProfile)
	return p, args.Error(1)
}

type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) Add(ctx context.Context, aggregate *announcement.Announcement) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) Update(ctx context.Context, aggregate *announcement.Announcement) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) Get(ctx context.Context, id kernel.UUID) (*announcement.Announcement, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*announcement.Announcement)
	return a, args.Error(1)
}

func (m *MockAnnouncementRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*announcement.Announcement, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*announcement.Announcement)
	return a, args.Error(1)
}

func (m *MockAnnouncementRepository) ListByAuthor(ctx context.Context, authorID kernel.UUID) ([]*announcement.Announcement, error) {
	args := m.Called(ctx, authorID)
	list, _ := args.Get(0).([]*announcement.Announcement)
	return list, args.Error(1)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Add(ctx context.Context, aggregate *message.Message) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMessageRepository) Get(ctx context.Context, id kernel.UUID) (*message.Message, error) {
	args := m.Called(ctx, id)
	msg, _ := args.Get(0).(*message.Message)
	return msg, args.Error(1)
}

type MockLoginRecordRepository struct {
	mock.Mock
}

func (m *MockLoginRecordRepository) Add(ctx context.Context, record *audit.LoginRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) ListByAnnouncement(ctx context.Context, announcementID kernel.UUID) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, announcementID)
	list, _ := args.Get(0).([]*delivery.Delivery)
	return list, args.Error(1)
}

func (m *MockDeliveryRepository) CountNonCancelledByCourier(ctx context.Context, courierID kernel.UUID) (int, error) {
	args := m.Called(ctx, courierID)
	return args.Int(0), args.Error(1)
}

func (m *MockDeliveryRepository) ListActive(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*delivery.Delivery)
	return list, args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentRepository) AddInvoice(ctx context.Context, invoice *payment.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdateInvoice(ctx context.Context, invoice *payment.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

// FindInvoiceByPayment also accepts a func() *payment.Invoice return value
// for invoices created during the test.
func (m *MockPaymentRepository) FindInvoiceByPayment(ctx context.Context, paymentID kernel.UUID) (*payment.Invoice, error) {
	args := m.Called(ctx, paymentID)
	if lookup, ok := args.Get(0).(func() *payment.Invoice); ok {
		return lookup(), args.Error(1)
	}
	i, _ := args.Get(0).(*payment.Invoice)
	return i, args.Error(1)
}

type MockValidationRepository struct {
	mock.Mock
}

func (m *MockValidationRepository) AddRequest(ctx context.Context, r *validation.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockValidationRepository) UpdateRequest(ctx context.Context, r *validation.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockValidationRepository) GetRequest(ctx context.Context, id kernel.UUID) (*validation.Request, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*validation.Request)
	return r, args.Error(1)
}

func (m *MockValidationRepository) GetLatestRequest(ctx context.Context, courierID kernel.UUID) (*validation.Request, error) {
	args := m.Called(ctx, courierID)
	r, _ := args.Get(0).(*validation.Request)
	return r, args.Error(1)
}

func (m *MockValidationRepository) ListRequests(ctx context.Context, statuses ...validation.Status) ([]*validation.Request, error) {
	args := m.Called(ctx, statuses)
	list, _ := args.Get(0).([]*validation.Request)
	return list, args.Error(1)
}

func (m *MockValidationRepository) AddDocument(ctx context.Context, d *validation.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockValidationRepository) UpdateDocument(ctx context.Context, d *validation.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockValidationRepository) DeleteDocument(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockValidationRepository) GetDocument(ctx context.Context, id kernel.UUID) (*validation.Document, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*validation.Document)
	return d, args.Error(1)
}

func (m *MockValidationRepository) ListDocumentsByOwner(ctx context.Context, ownerID kernel.UUID) ([]*validation.Document, error) {
	args := m.Called(ctx, ownerID)
	list, _ := args.Get(0).([]*validation.Document)
	return list, args.Error(1)
}

func (m *MockValidationRepository) ListDocumentsByRequest(ctx context.Context, requestID kernel.UUID) ([]*validation.Document, error) {
	args := m.Called(ctx, requestID)
	list, _ := args.Get(0).([]*validation.Document)
	return list, args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}

func (m *MockNotificationRepository) ListByRecipient(
	ctx context.Context, recipientID kernel.UUID, unreadOnly bool,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, recipientID, unreadOnly)
	list, _ := args.Get(0).([]*notification.Notification)
	return list, args.Error(1)
}

func (m *MockNotificationRepository) ExistsSince(
	ctx context.Context, recipientID kernel.UUID, kind notification.Kind, link string, since time.Time,
) (bool, error) {
	args := m.Called(ctx, recipientID, kind, link, since)
	return args.Bool(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(
	ctx context.Context, repos notifications.Repos, recipientID kernel.UUID, tpl notification.Template, link string,
) error {
	args := m.Called(ctx, repos, recipientID, tpl, link)
	return args.Error(0)
}

func (m *MockNotifier) NotifyRole(
	ctx context.Context, repos notifications.Repos, role user.Role, tpl notification.Template, link string,
) error {
	args := m.Called(ctx, repos, role, tpl, link)
	return args.Error(0)
}

type MockPusher struct {
	mock.Mock
}

func (m *MockPusher) PushTracked(ctx context.Context, tracked []any) {
	m.Called(ctx, tracked)
}

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID kernel.UUID, role user.Role) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

type MockDocumentStorage struct {
	mock.Mock
}

func (m *MockDocumentStorage) Store(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentStorage) URLFor(ctx context.Context, ref string) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentStorage) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

type MockInvoiceRenderer struct {
	mock.Mock
}

func (m *MockInvoiceRenderer) Render(ctx context.Context, doc ports.InvoiceDocument) ([]byte, error) {
	args := m.Called(ctx, doc)
	pdf, _ := args.Get(0).([]byte)
	return pdf, args.Error(1)
}
