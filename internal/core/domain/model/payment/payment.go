package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Subject links a payment to what it pays for. Both fields are optional.
type Subject struct {
	DeliveryID *kernel.UUID
	ServiceID  *kernel.UUID
}

// Payment records money moving from a payer to a beneficiary.
type Payment struct {
	id            kernel.UUID
	reference     string
	subject       Subject
	payerID       kernel.UUID
	beneficiaryID kernel.UUID
	amount        kernel.Money
	mode          Mode
	externalID    string
	status        Status
	paidAt        time.Time

	guard guard.ConstructorGuard
}

// NewPayment records a payment in the given initial status. An empty
// reference is replaced by a generated one. The amount must be positive.
func NewPayment(
	id kernel.UUID,
	reference string,
	payerID, beneficiaryID kernel.UUID,
	subject Subject,
	amount kernel.Money,
	mode Mode,
	status Status,
	now time.Time,
) (*Payment, error) {
	var errList []error
	if amount.Validate() == nil && !amount.IsPositive() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0 (exclusive)", "unbounded"))
	}
	if len(reference) > kernel.DocumentReferenceMaxLen {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"reference", fmt.Errorf("longer than %d characters", kernel.DocumentReferenceMaxLen)))
	}
	errList = append(errList,
		id.Validate(),
		payerID.Validate(),
		beneficiaryID.Validate(),
		amount.Validate(),
		mode.Validate(),
		status.Validate(),
	)
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	if reference == "" {
		reference = kernel.NewPaymentReference(now)
	}

	return &Payment{
		id:            id,
		reference:     reference,
		subject:       subject,
		payerID:       payerID,
		beneficiaryID: beneficiaryID,
		amount:        amount,
		mode:          mode,
		status:        status,
		paidAt:        now.UTC(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestorePayment rebuilds a payment loaded from the store.
func RestorePayment(
	id kernel.UUID,
	reference string,
	payerID, beneficiaryID kernel.UUID,
	subject Subject,
	amount kernel.Money,
	mode Mode,
	externalID string,
	status Status,
	paidAt time.Time,
) (*Payment, error) {
	if reference == "" {
		return nil, errs.NewValueIsRequiredError("reference")
	}
	p, err := NewPayment(id, reference, payerID, beneficiaryID, subject, amount, mode, status, paidAt)
	if err != nil {
		return nil, err
	}
	p.externalID = externalID
	p.paidAt = paidAt
	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

func (p *Payment) Reference() string {
	return p.reference
}

func (p *Payment) Subject() Subject {
	return p.subject
}

func (p *Payment) PayerID() kernel.UUID {
	return p.payerID
}

func (p *Payment) BeneficiaryID() kernel.UUID {
	return p.beneficiaryID
}

func (p *Payment) Amount() kernel.Money {
	return p.amount
}

func (p *Payment) Mode() Mode {
	return p.mode
}

// ExternalID is the gateway transaction identifier, if any.
func (p *Payment) ExternalID() string {
	return p.externalID
}

func (p *Payment) Status() Status {
	return p.status
}

func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}

// Transition is the outcome of a status change.
type Transition struct {
	Previous Status
	Current  Status
}

// Changed reports whether the status moved.
func (t Transition) Changed() bool {
	return t.Previous != t.Current
}

// EnteredSucceeded reports a first entry into Succeeded.
func (t Transition) EnteredSucceeded() bool {
	return t.Previous != Succeeded && t.Current == Succeeded
}

// ChangeStatus moves the payment to next. Setting the current status is a
// no-op. A non-empty externalID replaces the stored one.
func (p *Payment) ChangeStatus(next Status, externalID string) (Transition, error) {
	if err := next.Validate(); err != nil {
		return Transition{}, err
	}

	tr := Transition{Previous: p.status, Current: next}
	if !tr.Changed() {
		return tr, nil
	}
	if !p.status.CanMoveTo(next) {
		return Transition{}, errs.NewStateConflictError("payment", p.status.String(), "set "+next.String()+" on")
	}

	p.status = next
	if externalID != "" {
		p.externalID = externalID
	}
	return tr, nil
}
