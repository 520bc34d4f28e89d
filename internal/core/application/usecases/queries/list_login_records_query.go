package queries

import (
	"errors"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

const (
	DefaultLoginRecordLimit = 100
	MaxLoginRecordLimit     = 1000
)

var ErrListLoginRecordsQueryIsNotConstructed = errors.New(
	"ListLoginRecordsQuery must be created via NewListLoginRecordsQuery constructor",
)

// ListLoginRecordsQuery reads the login audit trail, newest first. A nil
// user lists every account.
type ListLoginRecordsQuery struct {
	userID *kernel.UUID
	limit  int

	guard guard.ConstructorGuard
}

// NewListLoginRecordsQuery uses DefaultLoginRecordLimit when limit is zero.
func NewListLoginRecordsQuery(userID *kernel.UUID, limit int) (ListLoginRecordsQuery, error) {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return ListLoginRecordsQuery{}, err
		}
	}
	if limit == 0 {
		limit = DefaultLoginRecordLimit
	}
	if limit < 1 || limit > MaxLoginRecordLimit {
		return ListLoginRecordsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxLoginRecordLimit)
	}

	return ListLoginRecordsQuery{
		userID: userID,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListLoginRecordsQuery) Validate() error {
	return q.guard.Validate(ErrListLoginRecordsQueryIsNotConstructed)
}

func (q ListLoginRecordsQuery) UserID() *kernel.UUID {
	return q.userID
}

func (q ListLoginRecordsQuery) Limit() int {
	return q.limit
}

type LoginRecordResponse struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	Username  string
	IP        string
	UserAgent string
	LoggedAt  time.Time
}
