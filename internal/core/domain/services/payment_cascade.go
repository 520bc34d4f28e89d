package services

import (
	"errors"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/payment"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
)

var ErrBeneficiaryMismatch = errors.New("beneficiary does not match the payment")

// PaymentCascade applies the consequences of a payment status change.
//
// On the first entry into Succeeded, with no invoice yet, it issues the
// invoice and credits the beneficiary wallet by the payment amount. Any
// other change only mirrors the status on an existing invoice. Nothing is
// reversed on refund.
type PaymentCascade struct{}

func NewPaymentCascade() PaymentCascade {
	return PaymentCascade{}
}

// CascadeResult tells the caller what to persist.
type CascadeResult struct {
	Invoice        *payment.Invoice
	InvoiceCreated bool
	InvoiceUpdated bool
	WalletCredited bool
}

// Apply runs the cascade. existing is the invoice already linked to the
// payment, nil when none.
func (PaymentCascade) Apply(
	p *payment.Payment,
	tr payment.Transition,
	existing *payment.Invoice,
	beneficiary *user.User,
	now time.Time,
) (CascadeResult, error) {
	if err := errors.Join(p.Validate(), beneficiary.Validate()); err != nil {
		return CascadeResult{}, err
	}
	if !beneficiary.ID().IsEqual(p.BeneficiaryID()) {
		return CascadeResult{}, ErrBeneficiaryMismatch
	}

	if existing != nil {
		return CascadeResult{
			Invoice:        existing,
			InvoiceUpdated: existing.MirrorStatus(p.Status()),
		}, nil
	}

	if !tr.EnteredSucceeded() {
		return CascadeResult{}, nil
	}

	invoice, err := payment.NewInvoice(kernel.NewUUID(), p, now)
	if err != nil {
		return CascadeResult{}, err
	}
	if err = beneficiary.Credit(p.Amount()); err != nil {
		return CascadeResult{}, err
	}

	return CascadeResult{
		Invoice:        invoice,
		InvoiceCreated: true,
		WalletCredited: true,
	}, nil
}
