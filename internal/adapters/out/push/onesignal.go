// Package push delivers notifications to the devices of a user.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/ports"

	"go.uber.org/zap"
)

var _ ports.PushTransport = (*OneSignalTransport)(nil)

const (
	defaultOneSignalURL = "https://onesignal.com/api/v1/notifications"
	defaultTimeout      = 5 * time.Second
	userIDTag           = "user_id"
)

var ErrPushRejected = errors.New("push provider rejected the notification")

type OneSignalConfig struct {
	AppID      string
	RESTAPIKey string
	// URL overrides the notifications endpoint.
	URL     string
	Timeout time.Duration
}

// OneSignalTransport targets devices tagged with the recipient's user id.
type OneSignalTransport struct {
	cfg    OneSignalConfig
	client *http.Client
	logger *zap.Logger
}

func NewOneSignalTransport(cfg OneSignalConfig, logger *zap.Logger) (*OneSignalTransport, error) {
	if cfg.AppID == "" || cfg.RESTAPIKey == "" {
		return nil, errors.New("onesignal app id and rest api key are required")
	}
	if cfg.URL == "" {
		cfg.URL = defaultOneSignalURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &OneSignalTransport{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.Named("push"),
	}, nil
}

type oneSignalFilter struct {
	Field    string `json:"field"`
	Key      string `json:"key"`
	Relation string `json:"relation"`
	Value    string `json:"value"`
}

type oneSignalPayload struct {
	AppID    string            `json:"app_id"`
	Contents map[string]string `json:"contents"`
	Headings map[string]string `json:"headings"`
	Filters  []oneSignalFilter `json:"filters"`
	URL      string            `json:"url,omitempty"`
}

// Send returns ErrPushRejected for any non-200 answer.
func (t *OneSignalTransport) Send(ctx context.Context, msg ports.PushMessage) error {
	body, err := json.Marshal(oneSignalPayload{
		AppID:    t.cfg.AppID,
		Contents: map[string]string{"en": msg.Message},
		Headings: map[string]string{"en": msg.Title},
		Filters: []oneSignalFilter{
			{Field: "tag", Key: userIDTag, Relation: "=", Value: msg.UserID.String()},
		},
		URL: msg.Link,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Basic "+t.cfg.RESTAPIKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrPushRejected, resp.StatusCode)
	}

	t.logger.Debug("push sent", zap.Stringer("user_id", msg.UserID))
	return nil
}
