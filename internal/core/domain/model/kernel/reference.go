package kernel

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Reference prefixes. A delivery reference fits in ten characters,
// payment, invoice and contract references in twenty.
const (
	DeliveryReferencePrefix = "DLV"
	PaymentReferencePrefix  = "PAY"
	InvoiceReferencePrefix  = "INV"
	ContractReferencePrefix = "CTR"

	DeliveryReferenceMaxLen = 10
	DocumentReferenceMaxLen = 20

	ValidationCodeLen = 6
)

// NewDeliveryReference returns a reference like "DLV-7F3A9C".
func NewDeliveryReference() string {
	return DeliveryReferencePrefix + "-" + randomToken(6)
}

// NewPaymentReference returns a reference like "PAY-20261017-7F3A9C".
func NewPaymentReference(at time.Time) string {
	return datedReference(PaymentReferencePrefix, at)
}

// NewInvoiceReference returns a reference like "INV-20261017-7F3A9C".
func NewInvoiceReference(at time.Time) string {
	return datedReference(InvoiceReferencePrefix, at)
}

// NewContractReference returns a reference like "CTR-20261017-7F3A9C".
func NewContractReference(at time.Time) string {
	return datedReference(ContractReferencePrefix, at)
}

// NewValidationCode returns the 6-digit code the client hands over to the
// courier at delivery time.
func NewValidationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate validation code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func datedReference(prefix string, at time.Time) string {
	return fmt.Sprintf("%s-%s-%s", prefix, at.UTC().Format("20060102"), randomToken(6))
}

func randomToken(n int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:n])
}
