package notifications

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
	"github.com/Keloce-2005/Back-office/internal/core/ports"

	"go.uber.org/zap"
)

// Pusher forwards committed notifications to the push transport.
// Failures are logged and never retried.
type Pusher struct {
	transport ports.PushTransport
	logger    *zap.Logger
}

func NewPusher(transport ports.PushTransport, logger *zap.Logger) *Pusher {
	return &Pusher{
		transport: transport,
		logger:    logger.Named("push"),
	}
}

// PushTracked sends every newly created notification among the tracked
// aggregates of a committed unit of work. Read-flag updates are skipped.
func (p *Pusher) PushTracked(ctx context.Context, tracked []any) {
	seen := make(map[string]struct{})
	for _, aggregate := range tracked {
		n, ok := aggregate.(*notification.Notification)
		if !ok || n.IsRead() {
			continue
		}
		if _, dup := seen[n.ID().String()]; dup {
			continue
		}
		seen[n.ID().String()] = struct{}{}

		err := p.transport.Send(ctx, ports.PushMessage{
			UserID:  n.RecipientID(),
			Title:   n.Title(),
			Message: n.Message(),
			Link:    n.Link(),
		})
		if err != nil {
			p.logger.Warn("push notification failed",
				zap.String("notification_id", n.ID().String()),
				zap.String("recipient_id", n.RecipientID().String()),
				zap.Error(err))
		}
	}
}
