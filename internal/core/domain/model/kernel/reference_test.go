package kernel_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryReference(t *testing.T) {
	ref := kernel.NewDeliveryReference()

	assert.LessOrEqual(t, len(ref), kernel.DeliveryReferenceMaxLen)
	assert.Regexp(t, regexp.MustCompile(`^DLV-[0-9A-F]{6}$`), ref)
	assert.NotEqual(t, ref, kernel.NewDeliveryReference())
}

func TestDatedReferences(t *testing.T) {
	at := time.Date(2026, time.October, 17, 23, 30, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		ref    string
		prefix string
	}{
		{name: "payment", ref: kernel.NewPaymentReference(at), prefix: "PAY"},
		{name: "invoice", ref: kernel.NewInvoiceReference(at), prefix: "INV"},
		{name: "contract", ref: kernel.NewContractReference(at), prefix: "CTR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.LessOrEqual(t, len(tc.ref), kernel.DocumentReferenceMaxLen)
			assert.Regexp(t, regexp.MustCompile(`^`+tc.prefix+`-20261017-[0-9A-F]{6}$`), tc.ref)
		})
	}
}

func TestNewValidationCode(t *testing.T) {
	for range 50 {
		code, err := kernel.NewValidationCode()

		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[0-9]{6}$`), code)
	}
}
