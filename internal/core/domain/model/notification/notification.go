package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Kind groups notifications for filtering in clients.
type Kind int

const (
	UnknownKind Kind = iota
	Info
	Validation
	Delivery
	Payment
	Account
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "unknown",
		Info:        "info",
		Validation:  "validation",
		Delivery:    "delivery",
		Payment:     "payment",
		Account:     "account",
	}
}

func (k Kind) Validate() error {
	if k < Info || k > Account {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid notification kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Notification is an append-only message to a user. Only the read flag
// changes after creation.
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	title       string
	message     string
	kind        Kind
	link        string
	read        bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

func NewNotification(
	id, recipientID kernel.UUID, title, message string, kind Kind, link string, now time.Time,
) (*Notification, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)

	var errList []error
	if title == "" {
		errList = append(errList, errs.NewValueIsRequiredError("title"))
	}
	if message == "" {
		errList = append(errList, errs.NewValueIsRequiredError("message"))
	}
	errList = append(errList, id.Validate(), recipientID.Validate(), kind.Validate())
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Notification{
		id:          id,
		recipientID: recipientID,
		title:       title,
		message:     message,
		kind:        kind,
		link:        link,
		createdAt:   now.UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func RestoreNotification(
	id, recipientID kernel.UUID, title, message string, kind Kind, link string, read bool, createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, recipientID, title, message, kind, link, createdAt)
	if err != nil {
		return nil, err
	}
	n.read = read
	n.createdAt = createdAt
	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Kind() Kind {
	return n.kind
}

func (n *Notification) Link() string {
	return n.link
}

func (n *Notification) IsRead() bool {
	return n.read
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead reports false when the notification was already read.
func (n *Notification) MarkRead() bool {
	if n.read {
		return false
	}
	n.read = true
	return true
}
