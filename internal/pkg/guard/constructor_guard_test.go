package guard_test

import (
	"errors"
	"testing"

	"github.com/Keloce-2005/Back-office/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errParcelIsNotConstructed = errors.New("parcel must be created via newParcel")

type parcel struct {
	reference string
	guard     guard.ConstructorGuard
}

func newParcel(reference string) (parcel, error) {
	if reference == "" {
		return parcel{}, errors.New("reference is required")
	}
	return parcel{reference: reference, guard: guard.NewConstructorGuard()}, nil
}

func (p parcel) Validate() error {
	return p.guard.Validate(errParcelIsNotConstructed)
}

func TestConstructorGuard_Validate(t *testing.T) {
	tests := []struct {
		name     string
		guard    guard.ConstructorGuard
		given    error
		expected error
	}{
		{"constructed guard with custom error", guard.NewConstructorGuard(), errParcelIsNotConstructed, nil},
		{"constructed guard with nil error", guard.NewConstructorGuard(), nil, nil},
		{"zero guard returns the custom error", guard.ConstructorGuard{}, errParcelIsNotConstructed, errParcelIsNotConstructed},
		{"zero guard falls back to the default error", guard.ConstructorGuard{}, nil, guard.ErrDefaultConstructorGuard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := tt.guard.Validate(tt.given)

			// Assert
			if tt.expected == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Same(t, tt.expected, err)
		})
	}
}

func TestConstructorGuard_EmbeddedInAggregate(t *testing.T) {
	t.Run("constructor output validates", func(t *testing.T) {
		// Act
		p, err := newParcel("DLV-20240101-ABC123")

		// Assert
		require.NoError(t, err)
		require.NoError(t, p.Validate())
	})

	t.Run("struct literal is rejected", func(t *testing.T) {
		// Arrange
		p := parcel{reference: "DLV-20240101-ABC123"}

		// Act
		err := p.Validate()

		// Assert
		assert.ErrorIs(t, err, errParcelIsNotConstructed)
	})

	t.Run("failed construction yields a zero value", func(t *testing.T) {
		// Act
		p, err := newParcel("")

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, p.Validate(), errParcelIsNotConstructed)
	})

	t.Run("copies keep the constructed state", func(t *testing.T) {
		// Arrange
		p, err := newParcel("DLV-20240101-XYZ789")
		require.NoError(t, err)

		// Act
		copied := p

		// Assert
		require.NoError(t, copied.Validate())
	})
}
