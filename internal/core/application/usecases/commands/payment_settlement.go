package commands

import (
	"bytes"
	"context"
	"path"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/payment"
	"github.com/Keloce-2005/Back-office/internal/core/domain/services"
	"github.com/Keloce-2005/Back-office/internal/core/ports"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"go.uber.org/zap"
)

const (
	invoicesFolder = "invoices"
	paymentsLink   = "/payments"
	pdfContentType = "application/pdf"
)

// settle runs the cascade for a payment whose status just moved and records
// the notifications. It returns the document to render when an invoice was
// issued, nil otherwise.
func settle(
	ctx context.Context, uow PaymentUoW, notifier Notifier, p *payment.Payment, tr payment.Transition, now time.Time,
) (*ports.InvoiceDocument, error) {
	paymentRepo := uow.PaymentRepository()
	existing, err := paymentRepo.FindInvoiceByPayment(ctx, p.ID())
	if err != nil {
		return nil, err
	}

	userRepo := uow.UserRepository()
	beneficiary, err := userRepo.GetForUpdate(ctx, p.BeneficiaryID())
	if err != nil {
		return nil, err
	}

	result, err := services.NewPaymentCascade().Apply(p, tr, existing, beneficiary, now)
	if err != nil {
		return nil, err
	}

	switch {
	case result.InvoiceCreated:
		if err = paymentRepo.AddInvoice(ctx, result.Invoice); err != nil {
			return nil, err
		}
	case result.InvoiceUpdated:
		if err = paymentRepo.UpdateInvoice(ctx, result.Invoice); err != nil {
			return nil, err
		}
	}
	if result.WalletCredited {
		if err = userRepo.Update(ctx, beneficiary); err != nil {
			return nil, err
		}
	}

	if !result.InvoiceCreated {
		return nil, nil
	}

	amount := p.Amount().String()
	if err = notifier.Notify(ctx, uow, p.PayerID(),
		notification.PaymentSucceeded(p.Reference(), amount, result.Invoice.Reference()), paymentsLink); err != nil {
		return nil, err
	}
	if err = notifier.Notify(ctx, uow, p.BeneficiaryID(),
		notification.PaymentReceived(amount, p.Reference()), paymentsLink); err != nil {
		return nil, err
	}

	payer, err := userRepo.Get(ctx, p.PayerID())
	if err != nil {
		return nil, err
	}
	return &ports.InvoiceDocument{
		Reference:        result.Invoice.Reference(),
		PaymentReference: p.Reference(),
		PayerName:        payer.FullName(),
		PayerEmail:       payer.Email(),
		BeneficiaryName:  beneficiary.FullName(),
		IssuedAt:         result.Invoice.IssuedAt(),
		Lines: []ports.InvoiceLine{
			{Label: "Payment " + p.Reference(), Amount: amount},
		},
		Total: result.Invoice.Total().String(),
	}, nil
}

// invoicePublisher renders and stores invoice PDFs once the payment
// transaction has committed. Failures are logged and leave the invoice
// without a PDF.
type invoicePublisher struct {
	uowFactory PaymentUoWFactory
	renderer   ports.InvoiceRenderer
	storage    ports.DocumentStorage
	logger     *zap.Logger
}

func (p invoicePublisher) publish(ctx context.Context, paymentID kernel.UUID, doc *ports.InvoiceDocument) {
	if doc == nil {
		return
	}
	logger := p.logger.With(zap.String("invoice", doc.Reference), zap.String("payment_id", paymentID.String()))

	pdf, err := p.renderer.Render(ctx, *doc)
	if err != nil {
		logger.Warn("invoice rendering failed", zap.Error(err))
		return
	}

	ref, err := p.storage.Store(ctx, path.Join(invoicesFolder, doc.Reference+".pdf"), pdfContentType, bytes.NewReader(pdf))
	if err != nil {
		logger.Warn("invoice storage failed", zap.Error(err))
		return
	}

	if err = p.attach(ctx, paymentID, ref); err != nil {
		logger.Warn("invoice PDF reference not saved", zap.Error(err))
		discardBlobs(ctx, p.storage, logger, ref)
	}
}

func (p invoicePublisher) attach(ctx context.Context, paymentID kernel.UUID, ref string) error {
	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PaymentRepository()
	invoice, err := repo.FindInvoiceByPayment(ctx, paymentID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return errs.NewObjectNotFoundError("invoice of payment", paymentID.String())
	}

	invoice.AttachPDF(ref)
	if err = repo.UpdateInvoice(ctx, invoice); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
