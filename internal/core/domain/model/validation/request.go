package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var (
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

	// ErrMandatoryDocumentsMissing is returned by Approve when the identity
	// card or the driving license is not validated yet.
	ErrMandatoryDocumentsMissing = fmt.Errorf(
		"%w: identity_card and driving_license must both be validated", errs.ErrStateConflict)
)

// Request is the onboarding approval workflow of a courier.
//
// Every transition method reports whether it changed the request. A call
// that finds the request already in the target state returns (false, nil)
// and leaves every field untouched, so callers emit notifications only on
// a real transition.
type Request struct {
	id              kernel.UUID
	courierID       kernel.UUID
	status          Status
	processedBy     *kernel.UUID
	processedAt     *time.Time
	rejectionReason string
	adminNotes      string
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewRequest opens a pending request for a courier.
func NewRequest(id, courierID kernel.UUID, now time.Time) (*Request, error) {
	if err := errors.Join(id.Validate(), courierID.Validate()); err != nil {
		return nil, err
	}

	return &Request{
		id:        id,
		courierID: courierID,
		status:    Pending,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RequestParams carries the persisted state of a Request.
type RequestParams struct {
	ID              kernel.UUID
	CourierID       kernel.UUID
	Status          Status
	ProcessedBy     *kernel.UUID
	ProcessedAt     *time.Time
	RejectionReason string
	AdminNotes      string
	CreatedAt       time.Time
}

// RestoreRequest rebuilds a request loaded from the store.
func RestoreRequest(p RequestParams) (*Request, error) {
	r, err := NewRequest(p.ID, p.CourierID, p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err = p.Status.Validate(); err != nil {
		return nil, err
	}

	r.status = p.Status
	r.processedBy = p.ProcessedBy
	r.processedAt = p.ProcessedAt
	r.rejectionReason = p.RejectionReason
	r.adminNotes = p.AdminNotes
	r.createdAt = p.CreatedAt
	return r, nil
}

func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

func (r *Request) ID() kernel.UUID {
	return r.id
}

func (r *Request) CourierID() kernel.UUID {
	return r.courierID
}

func (r *Request) Status() Status {
	return r.status
}

func (r *Request) ProcessedBy() *kernel.UUID {
	return r.processedBy
}

func (r *Request) ProcessedAt() *time.Time {
	return r.processedAt
}

func (r *Request) RejectionReason() string {
	return r.rejectionReason
}

func (r *Request) AdminNotes() string {
	return r.adminNotes
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// AcceptsDocuments fails once the request is approved.
func (r *Request) AcceptsDocuments() error {
	if r.status == Approved {
		return r.status.conflict("submit a document to")
	}
	return nil
}

// Escalate moves a pending request to UnderReview without an admin, when
// both mandatory documents have been validated. Any other status is left alone.
func (r *Request) Escalate() bool {
	if r.status != Pending {
		return false
	}
	r.status = UnderReview
	return true
}

// MarkUnderReview is the explicit admin move from Pending.
func (r *Request) MarkUnderReview(adminID kernel.UUID, notes string, now time.Time) (bool, error) {
	if err := adminID.Validate(); err != nil {
		return false, err
	}

	switch r.status {
	case UnderReview:
		return false, nil
	case Pending:
		r.status = UnderReview
		r.stamp(adminID, notes, now)
		return true, nil
	default:
		return false, r.status.conflict("mark under review")
	}
}

// Approve grants the request. docs are the documents attached to the
// request; both mandatory types must be validated among them.
func (r *Request) Approve(adminID kernel.UUID, notes string, docs []*Document, now time.Time) (bool, error) {
	if err := adminID.Validate(); err != nil {
		return false, err
	}

	switch r.status {
	case Approved:
		return false, nil
	case Pending, UnderReview:
		if !MandatoryDocumentsValidated(docs) {
			return false, ErrMandatoryDocumentsMissing
		}
		r.status = Approved
		r.stamp(adminID, notes, now)
		return true, nil
	default:
		return false, r.status.conflict("approve")
	}
}

// Reject refuses the request and appends motif to the rejection reason.
func (r *Request) Reject(adminID kernel.UUID, motif, notes string, now time.Time) (bool, error) {
	if err := adminID.Validate(); err != nil {
		return false, err
	}
	motif = strings.TrimSpace(motif)
	if motif == "" {
		return false, errs.NewValueIsRequiredError("motif")
	}

	switch r.status {
	case Rejected:
		return false, nil
	case Pending, UnderReview:
		r.status = Rejected
		if r.rejectionReason == "" {
			r.rejectionReason = motif
		} else {
			r.rejectionReason += "\n" + motif
		}
		r.stamp(adminID, notes, now)
		return true, nil
	default:
		return false, r.status.conflict("reject")
	}
}

// Reopen is the explicit admin re-entry from Rejected to UnderReview.
// An approved request cannot be reopened.
func (r *Request) Reopen(adminID kernel.UUID, notes string, now time.Time) (bool, error) {
	if err := adminID.Validate(); err != nil {
		return false, err
	}

	switch r.status {
	case UnderReview:
		return false, nil
	case Rejected:
		r.status = UnderReview
		r.stamp(adminID, notes, now)
		return true, nil
	default:
		return false, r.status.conflict("reopen")
	}
}

func (r *Request) stamp(adminID kernel.UUID, notes string, now time.Time) {
	at := now.UTC()
	r.processedBy = &adminID
	r.processedAt = &at
	if notes = strings.TrimSpace(notes); notes != "" {
		r.adminNotes = notes
	}
}
