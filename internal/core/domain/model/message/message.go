package message

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

const MaxContentLength = 4000

var (
	ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")
	ErrSelfMessage             = errs.NewValueIsInvalidErrorWithCause("receiver", errors.New("users cannot message themselves"))
)

type Message struct {
	id             kernel.UUID
	senderID       kernel.UUID
	receiverID     kernel.UUID
	announcementID *kernel.UUID
	content        string
	createdAt      time.Time

	guard guard.ConstructorGuard
}

func NewMessage(
	id, senderID, receiverID kernel.UUID, announcementID *kernel.UUID, content string, now time.Time,
) (*Message, error) {
	content = strings.TrimSpace(content)

	var errList []error
	if content == "" {
		errList = append(errList, errs.NewValueIsRequiredError("content"))
	} else if n := utf8.RuneCountInString(content); n > MaxContentLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("content length", n, 1, MaxContentLength))
	}
	errList = append(errList, id.Validate(), senderID.Validate(), receiverID.Validate())
	if announcementID != nil {
		errList = append(errList, announcementID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	if senderID.IsEqual(receiverID) {
		return nil, ErrSelfMessage
	}

	return &Message{
		id:             id,
		senderID:       senderID,
		receiverID:     receiverID,
		announcementID: announcementID,
		content:        content,
		createdAt:      now.UTC(),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func RestoreMessage(
	id, senderID, receiverID kernel.UUID, announcementID *kernel.UUID, content string, createdAt time.Time,
) (*Message, error) {
	m, err := NewMessage(id, senderID, receiverID, announcementID, content, createdAt)
	if err != nil {
		return nil, err
	}
	m.createdAt = createdAt
	return m, nil
}

func (m *Message) Validate() error {
	if m == nil {
		return ErrMessageIsNotConstructed
	}
	return m.guard.Validate(ErrMessageIsNotConstructed)
}

func (m *Message) ID() kernel.UUID {
	return m.id
}

func (m *Message) SenderID() kernel.UUID {
	return m.senderID
}

func (m *Message) ReceiverID() kernel.UUID {
	return m.receiverID
}

// AnnouncementID is nil for messages not tied to an announcement.
func (m *Message) AnnouncementID() *kernel.UUID {
	return m.announcementID
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

// Involves reports whether the user sent or received the message.
func (m *Message) Involves(userID kernel.UUID) bool {
	return m.senderID.IsEqual(userID) || m.receiverID.IsEqual(userID)
}
