package payment_test

import (
	"testing"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/payment"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()

	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newPayment(t *testing.T, status payment.Status) *payment.Payment {
	t.Helper()

	deliveryID := kernel.NewUUID()
	p, err := payment.NewPayment(kernel.NewUUID(), "", kernel.NewUUID(), kernel.NewUUID(),
		payment.Subject{DeliveryID: &deliveryID}, money(t, "49.90"), payment.Card, status, now)
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("should generate a reference when absent", func(t *testing.T) {
		p := newPayment(t, payment.Pending)

		require.NoError(t, p.Validate())
		assert.Regexp(t, `^PAY-20261017-[0-9A-F]{6}$`, p.Reference())
		assert.LessOrEqual(t, len(p.Reference()), kernel.DocumentReferenceMaxLen)
		assert.Equal(t, now, p.PaidAt())
	})

	t.Run("should keep a given reference", func(t *testing.T) {
		p, err := payment.NewPayment(kernel.NewUUID(), "PAY-MANUAL-1", kernel.NewUUID(), kernel.NewUUID(),
			payment.Subject{}, money(t, "10"), payment.Transfer, payment.Succeeded, now)

		require.NoError(t, err)
		assert.Equal(t, "PAY-MANUAL-1", p.Reference())
	})

	t.Run("should refuse a zero amount", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), "", kernel.NewUUID(), kernel.NewUUID(),
			payment.Subject{}, kernel.ZeroMoney(), payment.Card, payment.Pending, now)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := payment.NewPayment(invalidID, "", invalidID, invalidID,
			payment.Subject{}, kernel.Money{}, payment.UnknownMode, payment.Unknown, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPayment_ChangeStatus(t *testing.T) {
	t.Run("pending to succeeded enters succeeded once", func(t *testing.T) {
		p := newPayment(t, payment.Pending)

		tr, err := p.ChangeStatus(payment.Succeeded, "pi_123")
		require.NoError(t, err)
		assert.True(t, tr.Changed())
		assert.True(t, tr.EnteredSucceeded())
		assert.Equal(t, "pi_123", p.ExternalID())

		tr, err = p.ChangeStatus(payment.Succeeded, "")
		require.NoError(t, err)
		assert.False(t, tr.Changed())
		assert.False(t, tr.EnteredSucceeded())
		assert.Equal(t, "pi_123", p.ExternalID())
	})

	t.Run("succeeded to refunded is allowed", func(t *testing.T) {
		p := newPayment(t, payment.Succeeded)

		tr, err := p.ChangeStatus(payment.Refunded, "")

		require.NoError(t, err)
		assert.Equal(t, payment.Succeeded, tr.Previous)
		assert.False(t, tr.EnteredSucceeded())
	})

	t.Run("terminal statuses refuse moves", func(t *testing.T) {
		for _, from := range []payment.Status{payment.Failed, payment.Refunded} {
			p := newPayment(t, from)

			_, err := p.ChangeStatus(payment.Succeeded, "")

			require.ErrorIs(t, err, errs.ErrStateConflict)
			assert.Equal(t, from, p.Status())
		}
	})

	t.Run("succeeded cannot go back to pending", func(t *testing.T) {
		p := newPayment(t, payment.Succeeded)

		_, err := p.ChangeStatus(payment.Pending, "")

		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestParse(t *testing.T) {
	s, err := payment.ParseStatus("refunded")
	require.NoError(t, err)
	assert.Equal(t, payment.Refunded, s)

	_, err = payment.ParseStatus("unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	m, err := payment.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, payment.Card, m)

	m, err = payment.ParseMode("wallet")
	require.NoError(t, err)
	assert.Equal(t, payment.Wallet, m)
}

func TestNewInvoice(t *testing.T) {
	t.Run("should issue the invoice of a succeeded payment", func(t *testing.T) {
		p := newPayment(t, payment.Succeeded)

		inv, err := payment.NewInvoice(kernel.NewUUID(), p, now)

		require.NoError(t, err)
		assert.True(t, inv.PaymentID().IsEqual(p.ID()))
		assert.True(t, inv.Total().Equal(p.Amount()))
		assert.Equal(t, payment.Succeeded, inv.PaymentStatus())
		assert.Regexp(t, `^INV-20261017-[0-9A-F]{6}$`, inv.Reference())
		assert.Empty(t, inv.PDFRef())
	})

	t.Run("should refuse a pending payment", func(t *testing.T) {
		_, err := payment.NewInvoice(kernel.NewUUID(), newPayment(t, payment.Pending), now)

		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("mirrors later statuses", func(t *testing.T) {
		inv, err := payment.NewInvoice(kernel.NewUUID(), newPayment(t, payment.Succeeded), now)
		require.NoError(t, err)

		assert.True(t, inv.MirrorStatus(payment.Refunded))
		assert.False(t, inv.MirrorStatus(payment.Refunded))
		inv.AttachPDF("invoices/INV.pdf")
		assert.Equal(t, "invoices/INV.pdf", inv.PDFRef())
	})
}
