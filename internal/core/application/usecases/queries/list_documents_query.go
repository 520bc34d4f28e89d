package queries

import (
	"errors"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrListDocumentsQueryIsNotConstructed = errors.New(
	"ListDocumentsQuery must be created via NewListDocumentsQuery constructor",
)

// ListDocumentsQuery lists the justification documents of one user.
type ListDocumentsQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListDocumentsQuery(ownerID kernel.UUID) (ListDocumentsQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return ListDocumentsQuery{}, err
	}

	return ListDocumentsQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrListDocumentsQueryIsNotConstructed)
}

func (q ListDocumentsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// DocumentResponse is one document with its review outcome. Review is
// "pending", "validated" or "rejected".
type DocumentResponse struct {
	ID         kernel.UUID
	RequestID  *kernel.UUID
	Type       string
	FileRef    string
	UploadedAt time.Time
	Review     string
	ReviewedAt *time.Time
	Comment    string
}
