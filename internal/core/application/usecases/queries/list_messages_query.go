package queries

import (
	"errors"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrListMessagesQueryIsNotConstructed = errors.New(
	"ListMessagesQuery must be created via NewListMessagesQuery constructor",
)

// MessageFilter narrows a message listing. Nil fields do not filter.
type MessageFilter struct {
	ReceiverID     *kernel.UUID
	AnnouncementID *kernel.UUID
}

// ListMessagesQuery lists messages the caller sent or received. Admins see
// every conversation.
type ListMessagesQuery struct {
	callerID kernel.UUID
	admin    bool
	filter   MessageFilter

	guard guard.ConstructorGuard
}

func NewListMessagesQuery(callerID kernel.UUID, admin bool, filter MessageFilter) (ListMessagesQuery, error) {
	errList := []error{callerID.Validate()}
	if filter.ReceiverID != nil {
		errList = append(errList, filter.ReceiverID.Validate())
	}
	if filter.AnnouncementID != nil {
		errList = append(errList, filter.AnnouncementID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ListMessagesQuery{}, err
	}

	return ListMessagesQuery{
		callerID: callerID,
		admin:    admin,
		filter:   filter,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListMessagesQuery) Validate() error {
	return q.guard.Validate(ErrListMessagesQueryIsNotConstructed)
}

func (q ListMessagesQuery) CallerID() kernel.UUID {
	return q.callerID
}

func (q ListMessagesQuery) IsAdmin() bool {
	return q.admin
}

func (q ListMessagesQuery) Filter() MessageFilter {
	return q.filter
}

type MessageResponse struct {
	ID             kernel.UUID
	SenderID       kernel.UUID
	ReceiverID     kernel.UUID
	AnnouncementID *kernel.UUID
	Content        string
	CreatedAt      time.Time
}
