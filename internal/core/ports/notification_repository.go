package ports

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
)

// NotificationRepository persists notifications. There is no delete.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error
	Update(ctx context.Context, n *notification.Notification) error
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// ListByRecipient returns the newest notifications first.
	ListByRecipient(ctx context.Context, recipientID kernel.UUID, unreadOnly bool) ([]*notification.Notification, error)

	// ExistsSince reports whether the recipient got a notification with the
	// given link and kind at or after since.
	ExistsSince(ctx context.Context, recipientID kernel.UUID, kind notification.Kind, link string, since time.Time) (bool, error)
}
