package catalog_test

import (
	"testing"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/catalog"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	price, err := kernel.MoneyFromString("25")
	require.NoError(t, err)
	provider := kernel.NewUUID()

	s, err := catalog.NewService(kernel.NewUUID(), provider, " Dog walking ", "", catalog.PetSitting, price, time.Now())

	require.NoError(t, err)
	assert.Equal(t, "Dog walking", s.Name())
	assert.True(t, s.IsAvailable())
	assert.True(t, s.IsOfferedBy(provider))
	assert.Equal(t, "pet_sitting", s.Kind().String())

	s.SetAvailability(false)
	assert.False(t, s.IsAvailable())

	_, err = catalog.NewService(kernel.NewUUID(), provider, "", "", catalog.UnknownKind, price, time.Now())
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseKind(t *testing.T) {
	k, err := catalog.ParseKind("handyman")
	require.NoError(t, err)
	assert.Equal(t, catalog.Handyman, k)

	_, err = catalog.ParseKind("unknown")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
