package ports

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/audit"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/message"
)

// MessageRepository persists messages between users. Messages are only inserted.
type MessageRepository interface {
	Add(ctx context.Context, m *message.Message) error
	Get(ctx context.Context, id kernel.UUID) (*message.Message, error)
}

// LoginRecordRepository appends to the login audit trail.
type LoginRecordRepository interface {
	Add(ctx context.Context, r *audit.LoginRecord) error
}
