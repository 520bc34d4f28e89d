package push

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOneSignalTransport_Send(t *testing.T) {
	userID := kernel.NewUUID()
	var got oneSignalPayload
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	transport, err := NewOneSignalTransport(OneSignalConfig{AppID: "app", RESTAPIKey: "key", URL: srv.URL}, zap.NewNop())
	require.NoError(t, err)

	err = transport.Send(t.Context(), ports.PushMessage{
		UserID:  userID,
		Title:   "Delivery late",
		Message: "Delivery LIV-1 has passed its scheduled time.",
		Link:    "/deliveries/LIV-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Basic key", auth)
	assert.Equal(t, "app", got.AppID)
	assert.Equal(t, "Delivery late", got.Headings["en"])
	assert.Equal(t, "/deliveries/LIV-1", got.URL)
	require.Len(t, got.Filters, 1)
	assert.Equal(t, userID.String(), got.Filters[0].Value)
}

func TestOneSignalTransport_Send_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	transport, err := NewOneSignalTransport(OneSignalConfig{AppID: "app", RESTAPIKey: "key", URL: srv.URL}, zap.NewNop())
	require.NoError(t, err)

	err = transport.Send(t.Context(), ports.PushMessage{UserID: kernel.NewUUID(), Title: "t", Message: "m"})
	assert.ErrorIs(t, err, ErrPushRejected)
}

func TestNewOneSignalTransport_RequiresCredentials(t *testing.T) {
	_, err := NewOneSignalTransport(OneSignalConfig{AppID: "app"}, zap.NewNop())
	assert.Error(t, err)
}
