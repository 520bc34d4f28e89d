package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"
	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/queries"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/pkg/auth"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockCommandHandler[C any] struct {
	mock.Mock
}

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockLoginHandler struct {
	mock.Mock
}

func (m *MockLoginHandler) Handle(ctx context.Context, cmd commands.LoginCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type staticTokens map[string]auth.Principal

func (t staticTokens) Parse(token string) (auth.Principal, error) {
	p, ok := t[token]
	if !ok {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	return p, nil
}

type testServer struct {
	echo    *echo.Echo
	courier auth.Principal
	client  auth.Principal
	admin   auth.Principal
}

func newTestServer(t *testing.T, handlers Handlers) testServer {
	t.Helper()
	ts := testServer{
		courier: auth.Principal{UserID: kernel.NewUUID(), Role: user.Courier},
		client:  auth.Principal{UserID: kernel.NewUUID(), Role: user.Client},
		admin:   auth.Principal{UserID: kernel.NewUUID(), Role: user.Admin},
	}
	tokens := staticTokens{"courier-token": ts.courier, "client-token": ts.client, "admin-token": ts.admin}

	server, err := NewServer(handlers, tokens, nil, zap.NewNop())
	require.NoError(t, err)

	ts.echo = NewEcho(zap.NewNop())
	server.Register(ts.echo)
	return ts
}

func (ts testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, Handlers{})

	rec := ts.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestLogin(t *testing.T) {
	login := &MockLoginHandler{}
	login.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.LoginCommand) bool {
		return cmd.Login() == "alice" && cmd.IP() == "192.0.2.1"
	})).Return("signed-token", nil).Once()
	ts := newTestServer(t, Handlers{Login: login})

	rec := ts.do(http.MethodPost, "/api/v1/auth/login", "", `{"login":"alice","password":"secret-pass"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"signed-token","token_type":"Bearer"}`, rec.Body.String())
	login.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	login := &MockLoginHandler{}
	login.On("Handle", mock.Anything, mock.Anything).Return("", commands.ErrInvalidCredentials).Once()
	ts := newTestServer(t, Handlers{Login: login})

	rec := ts.do(http.MethodPost, "/api/v1/auth/login", "", `{"login":"alice","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	ts := newTestServer(t, Handlers{Login: &MockLoginHandler{}})

	rec := ts.do(http.MethodPost, "/api/v1/auth/login", "", `{"login":"alice"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthenticate(t *testing.T) {
	ts := newTestServer(t, Handlers{})

	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodGet, "/api/v1/deliveries/mine", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodGet, "/api/v1/deliveries/mine", "bogus", "").Code)
}

func TestRequireRole(t *testing.T) {
	ts := newTestServer(t, Handlers{})

	rec := ts.do(http.MethodGet, "/api/v1/admin/validation-requests", "courier-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = ts.do(http.MethodPost, "/api/v1/announcements", "courier-token", `{}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProposeDelivery(t *testing.T) {
	propose := &MockCommandHandler[commands.ProposeDeliveryCommand]{}
	ts := newTestServer(t, Handlers{ProposeDelivery: propose})
	announcementID := kernel.NewUUID()

	propose.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ProposeDeliveryCommand) bool {
		return cmd.CourierID().IsEqual(ts.courier.UserID) && cmd.AnnouncementID().IsEqual(announcementID)
	})).Return(nil).Once()

	rec := ts.do(http.MethodPost, "/api/v1/announcements/"+announcementID.String()+"/deliveries", "courier-token",
		`{"description":"books","weight":"3.5","dimensions":"30x20x10"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"id"`)
	propose.AssertExpectations(t)
}

func TestProposeDelivery_MapsCoreErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: fmt.Errorf("%w: duplicate bid", errs.ErrStateConflict), status: http.StatusConflict},
		{err: errs.NewObjectNotFoundError("announcement", "x"), status: http.StatusNotFound},
		{err: errs.NewAuthorizationError("courier", "propose"), status: http.StatusForbidden},
		{err: errs.NewExternalCollaboratorError("storage", errors.New("down")), status: http.StatusBadGateway},
		{err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			propose := &MockCommandHandler[commands.ProposeDeliveryCommand]{}
			propose.On("Handle", mock.Anything, mock.Anything).Return(tt.err).Once()
			ts := newTestServer(t, Handlers{ProposeDelivery: propose})

			rec := ts.do(http.MethodPost, "/api/v1/announcements/"+kernel.NewUUID().String()+"/deliveries",
				"courier-token", `{"description":"books","weight":"1"}`)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestProposeDelivery_InvalidAnnouncementID(t *testing.T) {
	ts := newTestServer(t, Handlers{ProposeDelivery: &MockCommandHandler[commands.ProposeDeliveryCommand]{}})

	rec := ts.do(http.MethodPost, "/api/v1/announcements/not-a-uuid/deliveries", "courier-token",
		`{"description":"books","weight":"1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOpenAPIDocument(t *testing.T) {
	ts := newTestServer(t, Handlers{})

	rec := ts.do(http.MethodGet, "/openapi.yaml", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
	assert.Contains(t, rec.Body.String(), "/api/v1/messages:")
}

func TestSwaggerUI(t *testing.T) {
	ts := newTestServer(t, Handlers{})

	rec := ts.do(http.MethodGet, "/swagger/index.html", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")
}

func TestOpenAPIValidation_RejectsBodiesBeforeHandlers(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
	}{
		{
			name:   "proposal without description",
			method: http.MethodPost,
			path:   "/api/v1/announcements/" + kernel.NewUUID().String() + "/deliveries",
			token:  "courier-token",
			body:   `{"weight":"1"}`,
		},
		{
			name:   "unknown payment status",
			method: http.MethodPatch,
			path:   "/api/v1/admin/payments/" + kernel.NewUUID().String() + "/status",
			token:  "admin-token",
			body:   `{"status":"paid"}`,
		},
		{
			name:   "score out of range",
			method: http.MethodPost,
			path:   "/api/v1/evaluations",
			token:  "client-token",
			body:   `{"evaluated_id":"` + kernel.NewUUID().String() + `","score":9}`,
		},
		{
			name:   "unknown review decision",
			method: http.MethodPost,
			path:   "/api/v1/admin/validation-requests/" + kernel.NewUUID().String() + "/maybe",
			token:  "admin-token",
			body:   `{}`,
		},
		{
			name:   "revenue without year",
			method: http.MethodGet,
			path:   "/api/v1/admin/revenue",
			token:  "admin-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Handlers are left nil: reaching one would panic.
			ts := newTestServer(t, Handlers{})

			rec := ts.do(tt.method, tt.path, tt.token, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestSendMessage(t *testing.T) {
	send := &MockCommandHandler[commands.SendMessageCommand]{}
	ts := newTestServer(t, Handlers{SendMessage: send})
	receiverID := kernel.NewUUID()
	announcementID := kernel.NewUUID()

	send.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SendMessageCommand) bool {
		return cmd.SenderID().IsEqual(ts.courier.UserID) &&
			cmd.ReceiverID().IsEqual(receiverID) &&
			cmd.AnnouncementID() != nil && cmd.AnnouncementID().IsEqual(announcementID) &&
			cmd.Content() == "At the door"
	})).Return(nil).Once()

	rec := ts.do(http.MethodPost, "/api/v1/messages", "courier-token",
		`{"receiver_id":"`+receiverID.String()+`","announcement_id":"`+announcementID.String()+`","content":"At the door"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"id"`)
	send.AssertExpectations(t)
}

func TestSendMessage_MissingContent(t *testing.T) {
	ts := newTestServer(t, Handlers{SendMessage: &MockCommandHandler[commands.SendMessageCommand]{}})

	rec := ts.do(http.MethodPost, "/api/v1/messages", "client-token", `{"receiver_id":"`+kernel.NewUUID().String()+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type MockListMessagesHandler struct {
	mock.Mock
}

func (m *MockListMessagesHandler) Handle(ctx context.Context, query queries.ListMessagesQuery) ([]queries.MessageResponse, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]queries.MessageResponse)
	return list, args.Error(1)
}

func TestListMessages_BindsFilters(t *testing.T) {
	list := &MockListMessagesHandler{}
	ts := newTestServer(t, Handlers{ListMessages: list})
	announcementID := kernel.NewUUID()
	senderID := kernel.NewUUID()

	list.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListMessagesQuery) bool {
		f := q.Filter()
		return q.CallerID().IsEqual(ts.client.UserID) && !q.IsAdmin() &&
			f.ReceiverID != nil && f.ReceiverID.IsEqual(ts.client.UserID) &&
			f.AnnouncementID != nil && f.AnnouncementID.IsEqual(announcementID)
	})).Return([]queries.MessageResponse{{
		ID:             kernel.NewUUID(),
		SenderID:       senderID,
		ReceiverID:     ts.client.UserID,
		AnnouncementID: &announcementID,
		Content:        "On my way",
	}}, nil).Once()

	rec := ts.do(http.MethodGet, "/api/v1/messages?receiver="+ts.client.UserID.String()+"&announcement="+announcementID.String(),
		"client-token", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"content":"On my way"`)
	assert.Contains(t, rec.Body.String(), `"announcement_id":"`+announcementID.String()+`"`)
	list.AssertExpectations(t)
}

func TestListMessages_InvalidFilter(t *testing.T) {
	ts := newTestServer(t, Handlers{ListMessages: &MockListMessagesHandler{}})

	rec := ts.do(http.MethodGet, "/api/v1/messages?announcement=not-a-uuid", "client-token", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type MockLoginRecordsHandler struct {
	mock.Mock
}

func (m *MockLoginRecordsHandler) Handle(
	ctx context.Context, query queries.ListLoginRecordsQuery,
) ([]queries.LoginRecordResponse, error) {
	args := m.Called(ctx, query)
	list, _ := args.Get(0).([]queries.LoginRecordResponse)
	return list, args.Error(1)
}

func TestListLoginRecords_AdminOnly(t *testing.T) {
	records := &MockLoginRecordsHandler{}
	ts := newTestServer(t, Handlers{ListLoginRecords: records})
	records.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListLoginRecordsQuery) bool {
		return q.Limit() == 20 && q.UserID() == nil
	})).Return([]queries.LoginRecordResponse{{
		ID:       kernel.NewUUID(),
		UserID:   ts.courier.UserID,
		Username: "courier",
		IP:       "203.0.113.7",
	}}, nil).Once()

	forbidden := ts.do(http.MethodGet, "/api/v1/admin/login-records", "courier-token", "")
	rec := ts.do(http.MethodGet, "/api/v1/admin/login-records?limit=20", "admin-token", "")

	assert.Equal(t, http.StatusForbidden, forbidden.Code)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"ip_address":"203.0.113.7"`)
	records.AssertExpectations(t)
}
