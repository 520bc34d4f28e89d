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

var ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")

// DocumentType classifies a justification document.
type DocumentType int

const (
	UnknownDocumentType DocumentType = iota
	IdentityCard
	DrivingLicense
	ProofOfAddress
	ProfessionalCard
	Insurance
	OtherDocument
)

func getDocumentTypeStrings() map[DocumentType]string {
	return map[DocumentType]string{
		UnknownDocumentType: "unknown",
		IdentityCard:        "identity_card",
		DrivingLicense:      "driving_license",
		ProofOfAddress:      "proof_of_address",
		ProfessionalCard:    "professional_card",
		Insurance:           "insurance",
		OtherDocument:       "other",
	}
}

// MandatoryDocumentTypes must all be validated before a request can be approved.
func MandatoryDocumentTypes() []DocumentType {
	return []DocumentType{IdentityCard, DrivingLicense}
}

func ParseDocumentType(s string) (DocumentType, error) {
	for t, name := range getDocumentTypeStrings() {
		if t != UnknownDocumentType && name == s {
			return t, nil
		}
	}
	return UnknownDocumentType, errs.NewValueIsInvalidErrorWithCause("document type", fmt.Errorf("%q is not a valid document type", s))
}

func (t DocumentType) Validate() error {
	if t <= UnknownDocumentType || t > OtherDocument {
		return errs.NewValueIsInvalidErrorWithCause("document type", fmt.Errorf("%d is not a valid document type", t))
	}
	return nil
}

func (t DocumentType) String() string {
	if s, ok := getDocumentTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

func (t DocumentType) IsMandatory() bool {
	return t == IdentityCard || t == DrivingLicense
}

// Document is a justification file uploaded by a user and reviewed by an admin.
// Its review fields change only through Approve and Reject.
//
// Review states:
//   - awaiting review: reviewedBy is nil
//   - validated: validated is true
//   - rejected: reviewedBy is set and validated is false
type Document struct {
	id         kernel.UUID
	ownerID    kernel.UUID
	requestID  *kernel.UUID
	docType    DocumentType
	fileRef    string
	uploadedAt time.Time
	validated  bool
	reviewedBy *kernel.UUID
	reviewedAt *time.Time
	comment    string

	guard guard.ConstructorGuard
}

// NewDocument registers an uploaded file awaiting review.
//
// Parameters:
//   - id: identifier of the document
//   - ownerID: user who uploaded the file
//   - requestID: validation request the document supports, nil for non-couriers
//   - docType: kind of document
//   - fileRef: reference returned by the document storage
//   - now: upload time
func NewDocument(
	id, ownerID kernel.UUID, requestID *kernel.UUID, docType DocumentType, fileRef string, now time.Time,
) (*Document, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := ownerID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := docType.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(fileRef) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("file"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Document{
		id:         id,
		ownerID:    ownerID,
		requestID:  requestID,
		docType:    docType,
		fileRef:    fileRef,
		uploadedAt: now.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// DocumentParams carries the persisted state of a Document.
type DocumentParams struct {
	ID         kernel.UUID
	OwnerID    kernel.UUID
	RequestID  *kernel.UUID
	Type       DocumentType
	FileRef    string
	UploadedAt time.Time
	Validated  bool
	ReviewedBy *kernel.UUID
	ReviewedAt *time.Time
	Comment    string
}

// RestoreDocument rebuilds a document loaded from the store.
func RestoreDocument(p DocumentParams) (*Document, error) {
	d, err := NewDocument(p.ID, p.OwnerID, p.RequestID, p.Type, p.FileRef, p.UploadedAt)
	if err != nil {
		return nil, err
	}
	d.uploadedAt = p.UploadedAt
	d.validated = p.Validated
	d.reviewedBy = p.ReviewedBy
	d.reviewedAt = p.ReviewedAt
	d.comment = p.Comment
	return d, nil
}

func (d *Document) Validate() error {
	if d == nil {
		return ErrDocumentIsNotConstructed
	}
	return d.guard.Validate(ErrDocumentIsNotConstructed)
}

func (d *Document) ID() kernel.UUID {
	return d.id
}

func (d *Document) OwnerID() kernel.UUID {
	return d.ownerID
}

func (d *Document) RequestID() *kernel.UUID {
	return d.requestID
}

func (d *Document) Type() DocumentType {
	return d.docType
}

func (d *Document) FileRef() string {
	return d.fileRef
}

func (d *Document) UploadedAt() time.Time {
	return d.uploadedAt
}

func (d *Document) IsValidated() bool {
	return d.validated
}

// IsRejected reports whether an admin reviewed the document and refused it.
func (d *Document) IsRejected() bool {
	return d.reviewedBy != nil && !d.validated
}

func (d *Document) ReviewedBy() *kernel.UUID {
	return d.reviewedBy
}

func (d *Document) ReviewedAt() *time.Time {
	return d.reviewedAt
}

func (d *Document) Comment() string {
	return d.comment
}

// Approve marks the document as validated by adminID.
// It returns false without touching anything when the document is already validated.
func (d *Document) Approve(adminID kernel.UUID, comment string, now time.Time) (bool, error) {
	if err := adminID.Validate(); err != nil {
		return false, err
	}
	if d.validated {
		return false, nil
	}

	d.markReviewed(adminID, now)
	d.validated = true
	d.comment = strings.TrimSpace(comment)
	return true, nil
}

// Reject marks the document as refused with a reason.
// It returns false without touching anything when the document is already rejected,
// whatever the new reason is.
func (d *Document) Reject(adminID kernel.UUID, reason string, now time.Time) (bool, error) {
	if err := adminID.Validate(); err != nil {
		return false, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return false, errs.NewValueIsRequiredError("reason")
	}
	if d.IsRejected() {
		return false, nil
	}

	d.markReviewed(adminID, now)
	d.validated = false
	d.comment = reason
	return true, nil
}

func (d *Document) markReviewed(adminID kernel.UUID, now time.Time) {
	at := now.UTC()
	d.reviewedBy = &adminID
	d.reviewedAt = &at
}

// MandatoryDocumentsValidated reports whether, among docs, every mandatory
// type has at least one validated document.
func MandatoryDocumentsValidated(docs []*Document) bool {
	validated := make(map[DocumentType]bool)
	for _, d := range docs {
		if d.IsValidated() {
			validated[d.Type()] = true
		}
	}

	for _, t := range MandatoryDocumentTypes() {
		if !validated[t] {
			return false
		}
	}
	return true
}
