package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/announcement"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/audit"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/delivery"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/payment"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/profile"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/domain/services"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	id := kernel.NewUUID()
	u, err := user.NewUser(id, "user-"+id.String()[:8], id.String()[:8]+"@example.com", "hash", role, time.Now())
	require.NoError(t, err)
	return u
}

func newTestAnnouncement(t *testing.T, authorID kernel.UUID) *announcement.Announcement {
	t.Helper()
	route, err := kernel.NewRoute("Paris", "Lyon")
	require.NoError(t, err)
	departure := time.Now().Add(24 * time.Hour)
	schedule, err := kernel.NewSchedule(departure, departure.Add(6*time.Hour))
	require.NoError(t, err)
	price, err := kernel.MoneyFromString("49.90")
	require.NoError(t, err)

	a, err := announcement.NewAnnouncement(kernel.NewUUID(), authorID, announcement.Details{
		Title:    "Box of books",
		Kind:     announcement.Parcel,
		Route:    route,
		Schedule: schedule,
		Price:    price,
	}, time.Now())
	require.NoError(t, err)
	return a
}

func newVerifiedCourierProfile(t *testing.T, userID kernel.UUID) *profile.CourierProfile {
	t.Helper()
	p, err := profile.NewCourierProfile(userID, "bike")
	require.NoError(t, err)
	p.MarkVerified()
	return p
}

func TestCreateAnnouncementCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	author := newTestUser(t, user.Client)
	details := newTestAnnouncement(t, author.ID()).Details()

	cmd, err := commands.NewCreateAnnouncementCommand(kernel.NewUUID(), author.ID(), details)
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	users := new(MockUserRepository)
	announcements := new(MockAnnouncementRepository)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	users.On("Get", ctx, author.ID()).Return(author, nil).Once()
	uow.On("AnnouncementRepository").Return(announcements)
	announcements.On("Add", ctx, mock.MatchedBy(func(a *announcement.Announcement) bool {
		return a.ID().IsEqual(cmd.AnnouncementID()) && a.Status() == announcement.Active
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateAnnouncementCommandHandler(deliveryUoWFactory{uow: uow})

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	uow.AssertExpectations(t)
	users.AssertExpectations(t)
	announcements.AssertExpectations(t)
}

func TestCreateAnnouncementCommandHandler_Handle_CourierIsForbidden(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courier := newTestUser(t, user.Courier)
	details := newTestAnnouncement(t, courier.ID()).Details()

	cmd, err := commands.NewCreateAnnouncementCommand(kernel.NewUUID(), courier.ID(), details)
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	users := new(MockUserRepository)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	users.On("Get", ctx, courier.ID()).Return(courier, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateAnnouncementCommandHandler(deliveryUoWFactory{uow: uow})

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateAnnouncementCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var cmd commands.CreateAnnouncementCommand
	uow := new(MockUnitOfWork)
	handler := commands.NewCreateAnnouncementCommandHandler(deliveryUoWFactory{uow: uow})

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrCreateAnnouncementCommandIsNotConstructed)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateAnnouncementCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	author := newTestUser(t, user.Client)
	cmd, err := commands.NewCreateAnnouncementCommand(kernel.NewUUID(), author.ID(), newTestAnnouncement(t, author.ID()).Details())
	require.NoError(t, err)

	expectedErr := errors.New("connection refused")
	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(expectedErr).Once()

	handler := commands.NewCreateAnnouncementCommandHandler(deliveryUoWFactory{uow: uow})

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, expectedErr)
	uow.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	u := newTestUser(t, user.Courier)
	cmd, err := commands.NewLoginCommand(u.Username(), "correct horse", "203.0.113.7", "Mozilla/5.0")
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	users := new(MockUserRepository)
	records := new(MockLoginRecordRepository)
	hasher := new(MockPasswordHasher)
	tokens := new(MockTokenIssuer)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	users.On("FindByLogin", ctx, u.Username()).Return(u, nil).Once()
	hasher.On("Compare", "hash", "correct horse").Return(nil).Once()
	tokens.On("Issue", u.ID(), user.Courier).Return("signed", nil).Once()
	users.On("Update", ctx, u).Return(nil).Once()
	uow.On("LoginRecordRepository").Return(records)
	var recorded *audit.LoginRecord
	records.On("Add", ctx, mock.AnythingOfType("*audit.LoginRecord")).
		Run(func(args mock.Arguments) { recorded = args.Get(1).(*audit.LoginRecord) }).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewLoginCommandHandler(loginUoWFactory{uow: uow}, hasher, tokens)

	// Act
	token, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "signed", token)
	assert.NotNil(t, u.LastLogin())
	require.NotNil(t, recorded)
	assert.True(t, u.ID().IsEqual(recorded.UserID()))
	assert.Equal(t, "203.0.113.7", recorded.IP())
	assert.Equal(t, "Mozilla/5.0", recorded.UserAgent())
	uow.AssertExpectations(t)
	users.AssertExpectations(t)
	records.AssertExpectations(t)
	hasher.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_InvalidCredentials(t *testing.T) {
	u := newTestUser(t, user.Client)

	tests := []struct {
		name  string
		setup func(users *MockUserRepository, hasher *MockPasswordHasher)
	}{
		{
			name: "unknown login",
			setup: func(users *MockUserRepository, _ *MockPasswordHasher) {
				users.On("FindByLogin", mock.Anything, "ghost").
					Return(nil, errs.NewObjectNotFoundError("login", "ghost")).Once()
			},
		},
		{
			name: "wrong password",
			setup: func(users *MockUserRepository, hasher *MockPasswordHasher) {
				users.On("FindByLogin", mock.Anything, "ghost").Return(u, nil).Once()
				hasher.On("Compare", "hash", "wrong password").Return(errors.New("mismatch")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctx := t.Context()
			cmd, err := commands.NewLoginCommand("ghost", "wrong password", "203.0.113.7", "")
			require.NoError(t, err)

			uow := new(MockUnitOfWork)
			users := new(MockUserRepository)
			hasher := new(MockPasswordHasher)
			tokens := new(MockTokenIssuer)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("UserRepository").Return(users)
			uow.On("Rollback", ctx).Return(nil).Once()
			tt.setup(users, hasher)

			handler := commands.NewLoginCommandHandler(loginUoWFactory{uow: uow}, hasher, tokens)

			// Act
			token, err := handler.Handle(ctx, cmd)

			// Assert
			require.ErrorIs(t, err, commands.ErrInvalidCredentials)
			assert.Empty(t, token)
			tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
			uow.AssertNotCalled(t, "LoginRecordRepository")
		})
	}
}

func TestProposeDeliveryCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	client := newTestUser(t, user.Client)
	courier := newTestUser(t, user.Courier)
	courierProfile := newVerifiedCourierProfile(t, courier.ID())
	a := newTestAnnouncement(t, client.ID())

	cmd, err := commands.NewProposeDeliveryCommand(kernel.NewUUID(), courier.ID(), a.ID(), delivery.Parcel{
		Description: "books",
		Weight:      decimal.NewFromInt(3),
	})
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	users := new(MockUserRepository)
	profiles := new(MockProfileRepository)
	announcements := new(MockAnnouncementRepository)
	deliveries := new(MockDeliveryRepository)
	notifier := new(MockNotifier)
	pusher := new(MockPusher)
	tracked := []any{"notification"}

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("ProfileRepository").Return(profiles)
	uow.On("AnnouncementRepository").Return(announcements)
	uow.On("DeliveryRepository").Return(deliveries)
	users.On("Get", ctx, courier.ID()).Return(courier, nil).Once()
	profiles.On("GetCourier", ctx, courier.ID()).Return(courierProfile, nil)
	announcements.On("GetForUpdate", ctx, a.ID()).Return(a, nil).Once()
	deliveries.On("ListByAnnouncement", ctx, a.ID()).Return([]*delivery.Delivery{}, nil).Once()
	deliveries.On("Add", ctx, mock.MatchedBy(func(d *delivery.Delivery) bool {
		return d.ID().IsEqual(cmd.DeliveryID()) && d.Status() == delivery.Pending && d.ClientID().IsEqual(client.ID())
	})).Return(nil).Once()
	announcements.On("Update", ctx, a).Return(nil).Once()
	deliveries.On("CountNonCancelledByCourier", ctx, courier.ID()).Return(1, nil).Once()
	profiles.On("UpdateCourier", ctx, courierProfile).Return(nil).Once()
	notifier.On("Notify", ctx, uow, client.ID(), mock.Anything, "/deliveries/"+cmd.DeliveryID().String()).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("TrackedAggregates").Return(tracked).Once()
	pusher.On("PushTracked", ctx, tracked).Return().Once()

	handler := commands.NewProposeDeliveryCommandHandler(deliveryUoWFactory{uow: uow}, notifier, pusher)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, announcement.InProgress, a.Status())
	assert.Equal(t, 1, courierProfile.DeliveryCount())
	uow.AssertExpectations(t)
	deliveries.AssertExpectations(t)
	announcements.AssertExpectations(t)
	notifier.AssertExpectations(t)
	pusher.AssertExpectations(t)
}

func TestProposeDeliveryCommandHandler_Handle_UnverifiedCourierIsForbidden(t *testing.T) {
	// Arrange
	ctx := t.Context()
	courier := newTestUser(t, user.Courier)
	unverified, err := profile.NewCourierProfile(courier.ID(), "bike")
	require.NoError(t, err)

	cmd, err := commands.NewProposeDeliveryCommand(kernel.NewUUID(), courier.ID(), kernel.NewUUID(), delivery.Parcel{
		Description: "books",
		Weight:      decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	users := new(MockUserRepository)
	profiles := new(MockProfileRepository)
	notifier := new(MockNotifier)
	pusher := new(MockPusher)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("ProfileRepository").Return(profiles)
	users.On("Get", ctx, courier.ID()).Return(courier, nil).Once()
	profiles.On("GetCourier", ctx, courier.ID()).Return(unverified, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewProposeDeliveryCommandHandler(deliveryUoWFactory{uow: uow}, notifier, pusher)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrForbidden)
	uow.AssertNotCalled(t, "AnnouncementRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	pusher.AssertNotCalled(t, "PushTracked", mock.Anything, mock.Anything)
}

func TestProposeDeliveryCommandHandler_Handle_DuplicateBid(t *testing.T) {
	// Arrange
	ctx := t.Context()
	client := newTestUser(t, user.Client)
	courier := newTestUser(t, user.Courier)
	a := newTestAnnouncement(t, client.ID())
	parcel := delivery.Parcel{Description: "books", Weight: decimal.NewFromInt(2)}

	earlier, err := delivery.NewDelivery(kernel.NewUUID(), a.ID(), courier.ID(), client.ID(), parcel, a.Schedule(), time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewProposeDeliveryCommand(kernel.NewUUID(), courier.ID(), a.ID(), parcel)
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	users := new(MockUserRepository)
	profiles := new(MockProfileRepository)
	announcements := new(MockAnnouncementRepository)
	deliveries := new(MockDeliveryRepository)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users)
	uow.On("ProfileRepository").Return(profiles)
	uow.On("AnnouncementRepository").Return(announcements)
	uow.On("DeliveryRepository").Return(deliveries)
	users.On("Get", ctx, courier.ID()).Return(courier, nil).Once()
	profiles.On("GetCourier", ctx, courier.ID()).Return(newVerifiedCourierProfile(t, courier.ID()), nil).Once()
	announcements.On("GetForUpdate", ctx, a.ID()).Return(a, nil).Once()
	deliveries.On("ListByAnnouncement", ctx, a.ID()).Return([]*delivery.Delivery{earlier}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewProposeDeliveryCommandHandler(deliveryUoWFactory{uow: uow}, new(MockNotifier), new(MockPusher))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, services.ErrDuplicateBid)
	deliveries.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkDeliveredCommandHandler_Handle_SecondCallIsNoOp(t *testing.T) {
	// Arrange
	ctx := t.Context()
	client := newTestUser(t, user.Client)
	courier := newTestUser(t, user.Courier)
	a := newTestAnnouncement(t, client.ID())
	_, err := a.MarkInProgress()
	require.NoError(t, err)

	d, err := delivery.NewDelivery(kernel.NewUUID(), a.ID(), courier.ID(), client.ID(),
		delivery.Parcel{Description: "books", Weight: decimal.NewFromInt(2)}, a.Schedule(), time.Now())
	require.NoError(t, err)
	_, err = d.Accept(time.Now())
	require.NoError(t, err)

	code := d.ValidationCode()
	cmd, err := commands.NewMarkDeliveredCommand(d.ID(), courier.ID(), kernel.NewUUID(), &code)
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	deliveries := new(MockDeliveryRepository)
	announcements := new(MockAnnouncementRepository)
	payments := new(MockPaymentRepository)
	notifier := new(MockNotifier)
	pusher := new(MockPusher)
	tracked := []any{"notification"}

	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()
	uow.On("DeliveryRepository").Return(deliveries)
	uow.On("AnnouncementRepository").Return(announcements)
	uow.On("PaymentRepository").Return(payments)
	deliveries.On("Get", ctx, d.ID()).Return(d, nil).Twice()
	announcements.On("GetForUpdate", ctx, a.ID()).Return(a, nil).Twice()
	deliveries.On("Update", ctx, d).Return(nil).Once()
	announcements.On("Update", ctx, a).Return(nil).Once()
	payments.On("Add", ctx, mock.MatchedBy(func(p *payment.Payment) bool {
		return p.ID().IsEqual(cmd.PaymentID()) &&
			p.Status() == payment.Pending &&
			p.PayerID().IsEqual(client.ID()) &&
			p.BeneficiaryID().IsEqual(courier.ID()) &&
			p.Amount().Equal(a.Price())
	})).Return(nil).Once()
	notifier.On("Notify", ctx, uow, client.ID(), mock.Anything, "/deliveries/"+d.ID().String()).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("TrackedAggregates").Return(tracked).Once()
	pusher.On("PushTracked", ctx, tracked).Return().Once()

	handler := commands.NewMarkDeliveredCommandHandler(deliveryUoWFactory{uow: uow}, notifier, pusher)

	// Act
	firstErr := handler.Handle(ctx, cmd)
	secondErr := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.Equal(t, delivery.Delivered, d.Status())
	assert.Equal(t, announcement.Completed, a.Status())
	deliveries.AssertNumberOfCalls(t, "Update", 1)
	announcements.AssertNumberOfCalls(t, "Update", 1)
	payments.AssertNumberOfCalls(t, "Add", 1)
	notifier.AssertNumberOfCalls(t, "Notify", 1)
	uow.AssertNumberOfCalls(t, "Commit", 1)
	uow.AssertNotCalled(t, "WarehouseRepository")
}

func TestMarkDeliveredCommandHandler_Handle_OutsiderIsForbidden(t *testing.T) {
	// Arrange
	ctx := t.Context()
	client := newTestUser(t, user.Client)
	courier := newTestUser(t, user.Courier)
	outsider := newTestUser(t, user.Client)
	a := newTestAnnouncement(t, client.ID())

	d, err := delivery.NewDelivery(kernel.NewUUID(), a.ID(), courier.ID(), client.ID(),
		delivery.Parcel{Description: "books", Weight: decimal.NewFromInt(2)}, a.Schedule(), time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewMarkDeliveredCommand(d.ID(), outsider.ID(), kernel.NewUUID(), nil)
	require.NoError(t, err)

	uow := new(MockUnitOfWork)
	users := new(MockUserRepository)
	deliveries := new(MockDeliveryRepository)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveries)
	uow.On("UserRepository").Return(users)
	deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()
	users.On("Get", ctx, outsider.ID()).Return(outsider, nil).Once()

	handler := commands.NewMarkDeliveredCommandHandler(deliveryUoWFactory{uow: uow}, new(MockNotifier), new(MockPusher))

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, delivery.Pending, d.Status())
	uow.AssertNotCalled(t, "AnnouncementRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
