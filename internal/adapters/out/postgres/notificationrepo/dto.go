// Package notificationrepo persists notifications. Rows are only inserted
// and marked read, never deleted.
package notificationrepo

import (
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID `gorm:"type:uuid;index"`
	Title       string    `gorm:"size:255"`
	Message     string
	Kind        int
	Link        string `gorm:"size:255"`
	Read        bool
	CreatedAt   time.Time
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          n.ID().Bytes(),
		RecipientID: n.RecipientID().Bytes(),
		Title:       n.Title(),
		Message:     n.Message(),
		Kind:        int(n.Kind()),
		Link:        n.Link(),
		Read:        n.IsRead(),
		CreatedAt:   n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id, recipientID, dto.Title, dto.Message, notification.Kind(dto.Kind), dto.Link, dto.Read, dto.CreatedAt)
}
