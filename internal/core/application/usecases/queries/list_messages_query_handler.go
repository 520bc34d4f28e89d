package queries

import (
	"context"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListMessagesQueryHandler struct {
	db *gorm.DB
}

func NewListMessagesQueryHandler(db *gorm.DB) ListMessagesQueryHandler {
	return ListMessagesQueryHandler{db: db}
}

// Handle returns the matching messages, oldest first, so a conversation
// reads top to bottom.
func (h ListMessagesQueryHandler) Handle(ctx context.Context, query ListMessagesQuery) ([]MessageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)
	if !query.IsAdmin() {
		conditions = append(conditions, "(sender_id = ? OR receiver_id = ?)")
		args = append(args, query.CallerID().Bytes(), query.CallerID().Bytes())
	}
	if receiverID := query.Filter().ReceiverID; receiverID != nil {
		conditions = append(conditions, "receiver_id = ?")
		args = append(args, receiverID.Bytes())
	}
	if announcementID := query.Filter().AnnouncementID; announcementID != nil {
		conditions = append(conditions, "announcement_id = ?")
		args = append(args, announcementID.Bytes())
	}

	stmt := "SELECT id, sender_id, receiver_id, announcement_id, content, created_at FROM messages"
	if len(conditions) > 0 {
		stmt += " WHERE " + strings.Join(conditions, " AND ")
	}
	stmt += " ORDER BY created_at, id"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]MessageResponse, 0)
	for rows.Next() {
		var resp MessageResponse
		var id, senderID, receiverID uuid.UUID
		var announcementID uuid.NullUUID

		if err = rows.Scan(&id, &senderID, &receiverID, &announcementID, &resp.Content, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
			return nil, err
		}
		if resp.ReceiverID, err = kernel.UUIDFromBytes(receiverID[:]); err != nil {
			return nil, err
		}
		if announcementID.Valid {
			if resp.AnnouncementID, err = kernel.UUIDPtrFromBytes(&announcementID.UUID); err != nil {
				return nil, err
			}
		}
		messages = append(messages, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
