package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/payment"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/ports"

	"go.uber.org/zap"
)

type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	notifier   Notifier
	pusher     Pusher
	invoices   invoicePublisher
}

func NewRecordPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	notifier Notifier,
	pusher Pusher,
	renderer ports.InvoiceRenderer,
	storage ports.DocumentStorage,
	logger *zap.Logger,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		pusher:     pusher,
		invoices: invoicePublisher{
			uowFactory: uowFactory,
			renderer:   renderer,
			storage:    storage,
			logger:     logger.Named("cascade"),
		},
	}
}

// Handle records the payment. A payment recorded directly as succeeded
// goes through the invoice and wallet cascade in the same transaction.
// The payer or an admin may record it.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	draft := cmd.Draft()
	if !draft.PayerID.IsEqual(cmd.ActorID()) {
		if _, err := requireRole(ctx, uow, cmd.ActorID(), "record payments for other users", user.Admin); err != nil {
			return err
		}
	}
	if _, err := uow.UserRepository().Get(ctx, draft.PayerID); err != nil {
		return err
	}

	now := time.Now()
	p, err := payment.NewPayment(cmd.PaymentID(), draft.Reference, draft.PayerID, draft.BeneficiaryID,
		draft.Subject, draft.Amount, draft.Mode, payment.Pending, now)
	if err != nil {
		return err
	}
	tr, err := p.ChangeStatus(draft.Status, draft.ExternalID)
	if err != nil {
		return err
	}
	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return err
	}

	var doc *ports.InvoiceDocument
	if tr.Changed() {
		if doc, err = settle(ctx, uow, h.notifier, p, tr, now); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.pusher.PushTracked(ctx, uow.TrackedAggregates())
	h.invoices.publish(ctx, p.ID(), doc)
	return nil
}
