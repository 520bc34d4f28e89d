package ports

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/payment"
)

// PaymentRepository persists payments and their invoices.
type PaymentRepository interface {
	Add(ctx context.Context, aggregate *payment.Payment) error
	Update(ctx context.Context, aggregate *payment.Payment) error
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetForUpdate loads the payment and locks its row. The status
	// comparison of the cascade runs under this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	AddInvoice(ctx context.Context, invoice *payment.Invoice) error
	UpdateInvoice(ctx context.Context, invoice *payment.Invoice) error

	// FindInvoiceByPayment returns nil and no error when the payment has no invoice.
	FindInvoiceByPayment(ctx context.Context, paymentID kernel.UUID) (*payment.Invoice, error)
}
