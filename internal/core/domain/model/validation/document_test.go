package validation_test

import (
	"testing"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	requestID := kernel.NewUUID()

	d, err := validation.NewDocument(kernel.NewUUID(), kernel.NewUUID(), &requestID, validation.IdentityCard, "documents/id.png", now)

	require.NoError(t, err)
	assert.False(t, d.IsValidated())
	assert.False(t, d.IsRejected())
	assert.True(t, d.Type().IsMandatory())
	assert.True(t, d.RequestID().IsEqual(requestID))

	_, err = validation.NewDocument(kernel.NewUUID(), kernel.NewUUID(), nil, validation.UnknownDocumentType, "", now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestDocument_Review(t *testing.T) {
	admin := kernel.NewUUID()
	d, _ := validation.NewDocument(kernel.NewUUID(), kernel.NewUUID(), nil, validation.DrivingLicense, "f", now)

	changed, err := d.Reject(admin, "expired", now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, d.IsRejected())
	assert.Equal(t, "expired", d.Comment())

	changed, err = d.Reject(admin, "also unreadable", now)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "expired", d.Comment())

	changed, err = d.Approve(admin, "new scan accepted", now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, d.IsValidated())
	assert.False(t, d.IsRejected())
	assert.True(t, d.ReviewedBy().IsEqual(admin))

	changed, err = d.Approve(admin, "twice", now)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "new scan accepted", d.Comment())

	_, err = d.Reject(admin, "", now)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestMandatoryDocumentsValidated(t *testing.T) {
	courier := kernel.NewUUID()

	assert.False(t, validation.MandatoryDocumentsValidated(nil))
	assert.False(t, validation.MandatoryDocumentsValidated(validatedDocs(t, courier, validation.IdentityCard, validation.Insurance)))
	assert.True(t, validation.MandatoryDocumentsValidated(validatedDocs(t, courier, validation.DrivingLicense, validation.IdentityCard)))
}

func TestParseDocumentType(t *testing.T) {
	docType, err := validation.ParseDocumentType("proof_of_address")
	require.NoError(t, err)
	assert.Equal(t, validation.ProofOfAddress, docType)

	_, err = validation.ParseDocumentType("passport")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
