package commands

import (
	"errors"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/payment"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// PaymentDraft describes a payment to record. An empty Reference is
// generated.
type PaymentDraft struct {
	Reference     string
	PayerID       kernel.UUID
	BeneficiaryID kernel.UUID
	Subject       payment.Subject
	Amount        kernel.Money
	Mode          payment.Mode
	Status        payment.Status
	ExternalID    string
}

type RecordPaymentCommand struct {
	paymentID kernel.UUID
	actorID   kernel.UUID
	draft     PaymentDraft

	guard guard.ConstructorGuard
}

func NewRecordPaymentCommand(paymentID, actorID kernel.UUID, draft PaymentDraft) (RecordPaymentCommand, error) {
	if draft.Status == payment.Unknown {
		draft.Status = payment.Pending
	}
	draft.Reference = strings.TrimSpace(draft.Reference)

	if err := errors.Join(
		paymentID.Validate(),
		actorID.Validate(),
		draft.PayerID.Validate(),
		draft.BeneficiaryID.Validate(),
		draft.Mode.Validate(),
		draft.Status.Validate(),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return RecordPaymentCommand{
		paymentID: paymentID,
		actorID:   actorID,
		draft:     draft,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c RecordPaymentCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c RecordPaymentCommand) Draft() PaymentDraft {
	return c.draft
}
