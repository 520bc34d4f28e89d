package notifications_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/application/notifications"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/ports"
	"github.com/Keloce-2005/Back-office/internal/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// The repositories embed the port so only the methods under test need a body.

type MockUserRepository struct {
	ports.UserRepository
	mock.Mock
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	args := m.Called(ctx, role)
	users, _ := args.Get(0).([]*user.User)
	return users, args.Error(1)
}

type MockNotificationRepository struct {
	ports.NotificationRepository
	mock.Mock
}

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type repos struct {
	users         *MockUserRepository
	notifications *MockNotificationRepository
}

func (r repos) UserRepository() ports.UserRepository                 { return r.users }
func (r repos) NotificationRepository() ports.NotificationRepository { return r.notifications }

type MockPushTransport struct {
	mock.Mock
}

func (m *MockPushTransport) Send(ctx context.Context, msg ports.PushMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func newUser(t *testing.T, role user.Role, lang user.Language) *user.User {
	t.Helper()
	id := kernel.NewUUID()
	u, err := user.NewUser(id, "u"+id.String()[:8], id.String()[:8]+"@example.com", "hash", role, time.Now())
	require.NoError(t, err)
	require.NoError(t, u.SetLanguage(lang))
	return u
}

func newDispatcher(t *testing.T) *notifications.Dispatcher {
	t.Helper()
	localizer, err := i18n.NewLocalizer()
	require.NoError(t, err)
	return notifications.NewDispatcher(localizer)
}

func TestDispatcher_Notify_LocalizesForRecipient(t *testing.T) {
	tests := []struct {
		lang  user.Language
		title string
		body  string
	}{
		{lang: user.French, title: "Proposition acceptée", body: "Votre proposition DLV-1 a été acceptée."},
		{lang: user.English, title: "Proposal accepted", body: "Your proposal DLV-1 has been accepted."},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			// Arrange
			ctx := t.Context()
			recipient := newUser(t, user.Courier, tt.lang)
			r := repos{users: new(MockUserRepository), notifications: new(MockNotificationRepository)}
			r.users.On("Get", ctx, recipient.ID()).Return(recipient, nil).Once()

			var recorded *notification.Notification
			r.notifications.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).
				Run(func(args mock.Arguments) { recorded = args.Get(1).(*notification.Notification) }).
				Return(nil).Once()

			// Act
			err := newDispatcher(t).Notify(ctx, r, recipient.ID(), notification.DeliveryAccepted("DLV-1"), "/deliveries/x")

			// Assert
			require.NoError(t, err)
			require.NotNil(t, recorded)
			assert.Equal(t, tt.title, recorded.Title())
			assert.Equal(t, tt.body, recorded.Message())
			assert.Equal(t, notification.Delivery, recorded.Kind())
			assert.Equal(t, "/deliveries/x", recorded.Link())
			assert.True(t, recorded.RecipientID().IsEqual(recipient.ID()))
			assert.False(t, recorded.IsRead())
		})
	}
}

func TestDispatcher_Notify_UnknownRecipient(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.NewUUID()
	r := repos{users: new(MockUserRepository), notifications: new(MockNotificationRepository)}
	r.users.On("Get", ctx, id).Return(nil, errors.New("not found")).Once()

	// Act
	err := newDispatcher(t).Notify(ctx, r, id, notification.DeliveryAccepted("DLV-1"), "")

	// Assert
	require.Error(t, err)
	r.notifications.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestDispatcher_NotifyRole_OnePerRecipient(t *testing.T) {
	// Arrange
	ctx := t.Context()
	admins := []*user.User{newUser(t, user.Admin, user.French), newUser(t, user.Admin, user.English)}
	r := repos{users: new(MockUserRepository), notifications: new(MockNotificationRepository)}
	r.users.On("ListByRole", ctx, user.Admin).Return(admins, nil).Once()
	r.notifications.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Twice()

	// Act
	err := newDispatcher(t).NotifyRole(ctx, r, user.Admin, notification.DeliveryAccepted("DLV-2"), "")

	// Assert
	require.NoError(t, err)
	r.notifications.AssertNumberOfCalls(t, "Add", 2)
}

func newNotification(t *testing.T, recipientID kernel.UUID) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(kernel.NewUUID(), recipientID, "title", "message", notification.Info, "/x", time.Now())
	require.NoError(t, err)
	return n
}

func TestPusher_PushTracked(t *testing.T) {
	// Arrange
	ctx := t.Context()
	recipient := kernel.NewUUID()
	fresh := newNotification(t, recipient)
	read := newNotification(t, recipient)
	read.MarkRead()

	transport := new(MockPushTransport)
	transport.On("Send", ctx, ports.PushMessage{
		UserID:  recipient,
		Title:   "title",
		Message: "message",
		Link:    "/x",
	}).Return(nil).Once()

	pusher := notifications.NewPusher(transport, zap.NewNop())

	// Act
	pusher.PushTracked(ctx, []any{fresh, read, fresh, "not a notification"})

	// Assert
	transport.AssertExpectations(t)
	transport.AssertNumberOfCalls(t, "Send", 1)
}

func TestPusher_PushTracked_FailureIsLogged(t *testing.T) {
	// Arrange
	ctx := t.Context()
	core, logs := observer.New(zap.WarnLevel)
	transport := new(MockPushTransport)
	transport.On("Send", ctx, mock.Anything).Return(errors.New("rejected")).Twice()

	pusher := notifications.NewPusher(transport, zap.New(core))

	// Act
	pusher.PushTracked(ctx, []any{newNotification(t, kernel.NewUUID()), newNotification(t, kernel.NewUUID())})

	// Assert
	transport.AssertExpectations(t)
	assert.Equal(t, 2, logs.FilterMessage("push notification failed").Len())
}
