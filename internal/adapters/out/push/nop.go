package push

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/ports"

	"go.uber.org/zap"
)

var _ ports.PushTransport = NopTransport{}

// NopTransport is used when no push provider is configured.
type NopTransport struct {
	logger *zap.Logger
}

func NewNopTransport(logger *zap.Logger) NopTransport {
	return NopTransport{logger: logger.Named("push")}
}

func (t NopTransport) Send(_ context.Context, msg ports.PushMessage) error {
	t.logger.Debug("push disabled, message dropped", zap.Stringer("user_id", msg.UserID), zap.String("title", msg.Title))
	return nil
}
