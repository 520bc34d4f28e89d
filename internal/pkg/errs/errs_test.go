package errs_test

import (
	"errors"
	"testing"

	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessagesAndSentinels(t *testing.T) {
	storageDown := errors.New("bucket unreachable")

	tests := []struct {
		name     string
		err      error
		message  string
		sentinel error
	}{
		{
			name:     "delivery not found",
			err:      errs.NewObjectNotFoundError("delivery", "2f1c0e4e"),
			message:  "object not found: 2f1c0e4e",
			sentinel: errs.ErrObjectNotFound,
		},
		{
			name:     "announcement not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("announcement", "7d3a", errors.New("row deleted")),
			message:  "object not found: param is: announcement, ID is: 7d3a (cause: row deleted)",
			sentinel: errs.ErrObjectNotFound,
		},
		{
			name:     "invalid email",
			err:      errs.NewValueIsInvalidError("email"),
			message:  "value is invalid: email",
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name:     "invalid siret with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("siret", errors.New("must have 14 digits")),
			message:  "value is invalid: siret (cause: must have 14 digits)",
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name:     "score out of range",
			err:      errs.NewValueIsOutOfRangeError("score", 6, 1, 5),
			message:  "value is invalid: 6 is score, min value is 1, max value is 5",
			sentinel: errs.ErrValueIsOutOfRange,
		},
		{
			name:     "rating out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("rating", -1, 0, 5, errors.New("negative")),
			message:  "value is invalid: -1 is rating, min value is 0, max value is 5 (cause: negative)",
			sentinel: errs.ErrValueIsOutOfRange,
		},
		{
			name:     "username required",
			err:      errs.NewValueIsRequiredError("username"),
			message:  "value is required: username",
			sentinel: errs.ErrValueIsRequired,
		},
		{
			name:     "motif required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("motif", errors.New("blank")),
			message:  "value is required: motif (cause: blank)",
			sentinel: errs.ErrValueIsRequired,
		},
		{
			name:     "approve a rejected request",
			err:      errs.NewStateConflictError("validation request", "rejected", "approve"),
			message:  "state conflict: cannot approve validation request in state rejected",
			sentinel: errs.ErrStateConflict,
		},
		{
			name:     "courier proposes without verification",
			err:      errs.NewAuthorizationError("courier 42", "propose a delivery"),
			message:  "forbidden: courier 42 is not allowed to propose a delivery",
			sentinel: errs.ErrForbidden,
		},
		{
			name:     "document storage failure",
			err:      errs.NewExternalCollaboratorError("document storage", storageDown),
			message:  "external collaborator failed: document storage (cause: bucket unreachable)",
			sentinel: errs.ErrExternalCollaborator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Assert
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestExternalCollaboratorError_KeepsCause(t *testing.T) {
	// Arrange
	cause := errors.New("onesignal returned 503")

	// Act
	err := errs.NewExternalCollaboratorError("push transport", cause)

	// Assert
	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, errs.ErrExternalCollaborator)
	assert.NotErrorIs(t, err, errs.ErrStateConflict)
}

func TestValueIsOutOfRangeError_FlattensNewlines(t *testing.T) {
	// Act
	err := errs.NewValueIsOutOfRangeError("comment", "great\ncourier", 0, 10)

	// Assert
	assert.Contains(t, err.Error(), "great courier")
	assert.NotContains(t, err.Error(), "\n")
}

func TestErrorsSurviveWrapping(t *testing.T) {
	// Arrange
	inner := errs.NewStateConflictError("delivery", "delivered", "accept")

	// Act
	wrapped := errors.Join(errs.NewValueIsRequiredError("code"), inner)

	// Assert
	require.ErrorIs(t, wrapped, errs.ErrStateConflict)
	require.ErrorIs(t, wrapped, errs.ErrValueIsRequired)

	var conflict *errs.StateConflictError
	require.ErrorAs(t, wrapped, &conflict)
	assert.Equal(t, "accept", conflict.Action)
}
