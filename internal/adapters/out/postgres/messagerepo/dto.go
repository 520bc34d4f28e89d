// Package messagerepo persists messages between users and the login audit
// trail. Both tables are append-only.
package messagerepo

import (
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/audit"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/message"

	"github.com/google/uuid"
)

type MessageDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SenderID       uuid.UUID  `gorm:"type:uuid;index"`
	ReceiverID     uuid.UUID  `gorm:"type:uuid;index"`
	AnnouncementID *uuid.UUID `gorm:"type:uuid;index"`
	Content        string
	CreatedAt      time.Time
}

func (MessageDTO) TableName() string {
	return "messages"
}

type LoginRecordDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	IP        string    `gorm:"column:ip_address;size:45"`
	UserAgent string    `gorm:"size:255"`
	LoggedAt  time.Time `gorm:"index"`
}

func (LoginRecordDTO) TableName() string {
	return "login_records"
}

func messageFromDomain(m *message.Message) MessageDTO {
	return MessageDTO{
		ID:             m.ID().Bytes(),
		SenderID:       m.SenderID().Bytes(),
		ReceiverID:     m.ReceiverID().Bytes(),
		AnnouncementID: kernel.BytesPtr(m.AnnouncementID()),
		Content:        m.Content(),
		CreatedAt:      m.CreatedAt(),
	}
}

func messageToDomain(dto MessageDTO) (*message.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	receiverID, err := kernel.UUIDFromBytes(dto.ReceiverID[:])
	if err != nil {
		return nil, err
	}

	announcementID, err := kernel.UUIDPtrFromBytes(dto.AnnouncementID)
	if err != nil {
		return nil, err
	}

	return message.RestoreMessage(id, senderID, receiverID, announcementID, dto.Content, dto.CreatedAt)
}

func loginRecordFromDomain(r *audit.LoginRecord) LoginRecordDTO {
	return LoginRecordDTO{
		ID:        r.ID().Bytes(),
		UserID:    r.UserID().Bytes(),
		IP:        r.IP(),
		UserAgent: r.UserAgent(),
		LoggedAt:  r.At(),
	}
}
