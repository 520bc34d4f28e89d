package payment

import (
	"errors"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// Invoice is issued once per succeeded payment. It mirrors the payment
// status afterwards but is never reversed.
type Invoice struct {
	id            kernel.UUID
	reference     string
	paymentID     kernel.UUID
	total         kernel.Money
	paymentStatus Status
	issuedAt      time.Time
	pdfRef        string

	guard guard.ConstructorGuard
}

// NewInvoice issues the invoice of a succeeded payment.
func NewInvoice(id kernel.UUID, p *Payment, now time.Time) (*Invoice, error) {
	if err := errors.Join(id.Validate(), p.Validate()); err != nil {
		return nil, err
	}
	if p.Status() != Succeeded {
		return nil, errs.NewStateConflictError("payment", p.Status().String(), "invoice")
	}

	return &Invoice{
		id:            id,
		reference:     kernel.NewInvoiceReference(now),
		paymentID:     p.ID(),
		total:         p.Amount(),
		paymentStatus: p.Status(),
		issuedAt:      now.UTC(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreInvoice rebuilds an invoice loaded from the store.
func RestoreInvoice(
	id kernel.UUID, reference string, paymentID kernel.UUID, total kernel.Money,
	paymentStatus Status, issuedAt time.Time, pdfRef string,
) (*Invoice, error) {
	var errList []error
	if reference == "" {
		errList = append(errList, errs.NewValueIsRequiredError("reference"))
	}
	errList = append(errList, id.Validate(), paymentID.Validate(), total.Validate(), paymentStatus.Validate())
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Invoice{
		id:            id,
		reference:     reference,
		paymentID:     paymentID,
		total:         total,
		paymentStatus: paymentStatus,
		issuedAt:      issuedAt,
		pdfRef:        pdfRef,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (i *Invoice) Validate() error {
	if i == nil {
		return ErrInvoiceIsNotConstructed
	}
	return i.guard.Validate(ErrInvoiceIsNotConstructed)
}

func (i *Invoice) ID() kernel.UUID {
	return i.id
}

func (i *Invoice) Reference() string {
	return i.reference
}

func (i *Invoice) PaymentID() kernel.UUID {
	return i.paymentID
}

func (i *Invoice) Total() kernel.Money {
	return i.total
}

func (i *Invoice) PaymentStatus() Status {
	return i.paymentStatus
}

func (i *Invoice) IssuedAt() time.Time {
	return i.issuedAt
}

// PDFRef is the storage reference of the rendered PDF, empty until rendered.
func (i *Invoice) PDFRef() string {
	return i.pdfRef
}

// MirrorStatus copies a later payment status and reports whether it changed.
func (i *Invoice) MirrorStatus(s Status) bool {
	if i.paymentStatus == s {
		return false
	}
	i.paymentStatus = s
	return true
}

func (i *Invoice) AttachPDF(ref string) {
	i.pdfRef = ref
}
