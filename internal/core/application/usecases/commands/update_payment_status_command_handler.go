package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/ports"

	"go.uber.org/zap"
)

type UpdatePaymentStatusCommandHandler struct {
	uowFactory PaymentUoWFactory
	notifier   Notifier
	pusher     Pusher
	invoices   invoicePublisher
}

func NewUpdatePaymentStatusCommandHandler(
	uowFactory PaymentUoWFactory,
	notifier Notifier,
	pusher Pusher,
	renderer ports.InvoiceRenderer,
	storage ports.DocumentStorage,
	logger *zap.Logger,
) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
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

// Handle moves the payment to the requested status under a row lock. The
// first entry into succeeded issues exactly one invoice and credits the
// beneficiary once; saving the same status again changes nothing. The
// invoice PDF is produced after commit.
func (h *UpdatePaymentStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePaymentStatusCommand) error {
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

	if _, err := requireRole(ctx, uow, cmd.ActorID(), "change payment status", user.Admin); err != nil {
		return err
	}

	paymentRepo := uow.PaymentRepository()
	p, err := paymentRepo.GetForUpdate(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	tr, err := p.ChangeStatus(cmd.Status(), cmd.ExternalID())
	if err != nil || !tr.Changed() {
		return err
	}
	if err = paymentRepo.Update(ctx, p); err != nil {
		return err
	}

	doc, err := settle(ctx, uow, h.notifier, p, tr, time.Now())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.pusher.PushTracked(ctx, uow.TrackedAggregates())
	h.invoices.publish(ctx, p.ID(), doc)
	return nil
}
