// Package paymentrepo persists payments and their invoices. The unique
// index on invoices.payment_id guarantees one invoice per payment.
package paymentrepo

import (
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Reference     string          `gorm:"size:20;uniqueIndex"`
	DeliveryID    *uuid.UUID      `gorm:"type:uuid"`
	ServiceID     *uuid.UUID      `gorm:"type:uuid"`
	PayerID       uuid.UUID       `gorm:"type:uuid;not null"`
	BeneficiaryID uuid.UUID       `gorm:"type:uuid;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Mode          int
	ExternalID    string `gorm:"size:255"`
	Status        int    `gorm:"index"`
	PaidAt        time.Time
}

func (PaymentDTO) TableName() string {
	return "payments"
}

type InvoiceDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Reference     string          `gorm:"size:20;uniqueIndex"`
	PaymentID     uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentStatus int
	IssuedAt      time.Time
	PDFRef        string `gorm:"column:pdf_ref;size:255"`
}

func (InvoiceDTO) TableName() string {
	return "invoices"
}

func paymentFromDomain(p *payment.Payment) PaymentDTO {
	subject := p.Subject()
	return PaymentDTO{
		ID:            p.ID().Bytes(),
		Reference:     p.Reference(),
		DeliveryID:    kernel.BytesPtr(subject.DeliveryID),
		ServiceID:     kernel.BytesPtr(subject.ServiceID),
		PayerID:       p.PayerID().Bytes(),
		BeneficiaryID: p.BeneficiaryID().Bytes(),
		Amount:        p.Amount().Decimal(),
		Mode:          int(p.Mode()),
		ExternalID:    p.ExternalID(),
		Status:        int(p.Status()),
		PaidAt:        p.PaidAt(),
	}
}

func paymentToDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	payerID, err := kernel.UUIDFromBytes(dto.PayerID[:])
	if err != nil {
		return nil, err
	}

	beneficiaryID, err := kernel.UUIDFromBytes(dto.BeneficiaryID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDPtrFromBytes(dto.DeliveryID)
	if err != nil {
		return nil, err
	}

	serviceID, err := kernel.UUIDPtrFromBytes(dto.ServiceID)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		dto.Reference,
		payerID,
		beneficiaryID,
		payment.Subject{DeliveryID: deliveryID, ServiceID: serviceID},
		amount,
		payment.Mode(dto.Mode),
		dto.ExternalID,
		payment.Status(dto.Status),
		dto.PaidAt,
	)
}

func invoiceFromDomain(i *payment.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:            i.ID().Bytes(),
		Reference:     i.Reference(),
		PaymentID:     i.PaymentID().Bytes(),
		Total:         i.Total().Decimal(),
		PaymentStatus: int(i.PaymentStatus()),
		IssuedAt:      i.IssuedAt(),
		PDFRef:        i.PDFRef(),
	}
}

func invoiceToDomain(dto InvoiceDTO) (*payment.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	paymentID, err := kernel.UUIDFromBytes(dto.PaymentID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return payment.RestoreInvoice(
		id, dto.Reference, paymentID, total, payment.Status(dto.PaymentStatus), dto.IssuedAt, dto.PDFRef)
}
