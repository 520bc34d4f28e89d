package validation_test

import (
	"testing"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/validation"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

func newRequest(t *testing.T, status validation.Status) *validation.Request {
	t.Helper()

	r, err := validation.RestoreRequest(validation.RequestParams{
		ID:        kernel.NewUUID(),
		CourierID: kernel.NewUUID(),
		Status:    status,
		CreatedAt: now,
	})
	require.NoError(t, err)
	return r
}

func validatedDocs(t *testing.T, courierID kernel.UUID, types ...validation.DocumentType) []*validation.Document {
	t.Helper()

	docs := make([]*validation.Document, 0, len(types))
	for _, docType := range types {
		d, err := validation.NewDocument(kernel.NewUUID(), courierID, nil, docType, "documents/"+docType.String(), now)
		require.NoError(t, err)
		_, err = d.Approve(kernel.NewUUID(), "ok", now)
		require.NoError(t, err)
		docs = append(docs, d)
	}
	return docs
}

func TestNewRequest(t *testing.T) {
	r, err := validation.NewRequest(kernel.NewUUID(), kernel.NewUUID(), now)

	require.NoError(t, err)
	require.NoError(t, r.Validate())
	assert.Equal(t, validation.Pending, r.Status())
	assert.Nil(t, r.ProcessedBy())
	require.NoError(t, r.AcceptsDocuments())
}

func TestRequest_Approve(t *testing.T) {
	admin := kernel.NewUUID()

	t.Run("requires both mandatory documents", func(t *testing.T) {
		r := newRequest(t, validation.UnderReview)
		docs := validatedDocs(t, r.CourierID(), validation.IdentityCard)

		changed, err := r.Approve(admin, "", docs, now)

		require.ErrorIs(t, err, errs.ErrStateConflict)
		require.ErrorIs(t, err, validation.ErrMandatoryDocumentsMissing)
		assert.False(t, changed)
		assert.Equal(t, validation.UnderReview, r.Status())
	})

	t.Run("unvalidated documents do not count", func(t *testing.T) {
		r := newRequest(t, validation.Pending)
		pendingDoc, _ := validation.NewDocument(kernel.NewUUID(), r.CourierID(), nil, validation.DrivingLicense, "f", now)
		docs := append(validatedDocs(t, r.CourierID(), validation.IdentityCard), pendingDoc)

		_, err := r.Approve(admin, "", docs, now)
		require.ErrorIs(t, err, validation.ErrMandatoryDocumentsMissing)
	})

	for _, from := range []validation.Status{validation.Pending, validation.UnderReview} {
		t.Run("from "+from.String(), func(t *testing.T) {
			r := newRequest(t, from)
			docs := validatedDocs(t, r.CourierID(), validation.IdentityCard, validation.DrivingLicense)

			changed, err := r.Approve(admin, "looks good", docs, now)

			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, validation.Approved, r.Status())
			assert.True(t, r.ProcessedBy().IsEqual(admin))
			assert.Equal(t, "looks good", r.AdminNotes())
			require.ErrorIs(t, r.AcceptsDocuments(), errs.ErrStateConflict)
		})
	}

	t.Run("already approved is a no-op", func(t *testing.T) {
		r := newRequest(t, validation.Approved)

		changed, err := r.Approve(admin, "again", nil, now)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Empty(t, r.AdminNotes())
	})

	t.Run("rejected cannot be approved", func(t *testing.T) {
		r := newRequest(t, validation.Rejected)
		docs := validatedDocs(t, r.CourierID(), validation.IdentityCard, validation.DrivingLicense)

		_, err := r.Approve(admin, "", docs, now)
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestRequest_Reject(t *testing.T) {
	admin := kernel.NewUUID()

	t.Run("appends motif once", func(t *testing.T) {
		r := newRequest(t, validation.UnderReview)

		changed, err := r.Reject(admin, "blurry scan", "", now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, validation.Rejected, r.Status())

		changed, err = r.Reject(admin, "different reason", "", now)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "blurry scan", r.RejectionReason())
	})

	t.Run("motif accumulates across reopen", func(t *testing.T) {
		r := newRequest(t, validation.Pending)
		_, _ = r.Reject(admin, "first", "", now)
		_, err := r.Reopen(admin, "", now)
		require.NoError(t, err)
		_, err = r.Reject(admin, "second", "", now)
		require.NoError(t, err)

		assert.Equal(t, "first\nsecond", r.RejectionReason())
	})

	t.Run("approved cannot be rejected", func(t *testing.T) {
		r := newRequest(t, validation.Approved)
		_, err := r.Reject(admin, "late", "", now)
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("motif is required", func(t *testing.T) {
		r := newRequest(t, validation.Pending)
		_, err := r.Reject(admin, "  ", "", now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRequest_MarkUnderReviewAndEscalate(t *testing.T) {
	admin := kernel.NewUUID()

	r := newRequest(t, validation.Pending)
	changed, err := r.MarkUnderReview(admin, "checking", now)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = r.MarkUnderReview(admin, "checking", now)
	require.NoError(t, err)
	assert.False(t, changed)

	assert.False(t, r.Escalate())
	assert.True(t, newRequest(t, validation.Pending).Escalate())
	assert.False(t, newRequest(t, validation.Rejected).Escalate())

	_, err = newRequest(t, validation.Approved).MarkUnderReview(admin, "", now)
	require.ErrorIs(t, err, errs.ErrStateConflict)
}

func TestRequest_Reopen(t *testing.T) {
	admin := kernel.NewUUID()

	_, err := newRequest(t, validation.Approved).Reopen(admin, "", now)
	require.ErrorIs(t, err, errs.ErrStateConflict)

	_, err = newRequest(t, validation.Pending).Reopen(admin, "", now)
	require.ErrorIs(t, err, errs.ErrStateConflict)

	r := newRequest(t, validation.Rejected)
	changed, err := r.Reopen(admin, "new documents", now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, validation.UnderReview, r.Status())
}

func TestRestoreRequest_InvalidStatus(t *testing.T) {
	_, err := validation.RestoreRequest(validation.RequestParams{
		ID:        kernel.NewUUID(),
		CourierID: kernel.NewUUID(),
		Status:    validation.Unknown,
	})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
