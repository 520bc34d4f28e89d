package subscription_test

import (
	"testing"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/subscription"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubscription(t *testing.T) {
	start := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

	s, err := subscription.NewSubscription(kernel.NewUUID(), kernel.NewUUID(), subscription.Premium, start, 3)

	require.NoError(t, err)
	assert.True(t, s.IsActive())
	assert.Equal(t, "19.90", s.MonthlyPrice().String())
	assert.Equal(t, start.AddDate(0, 3, 0), s.End())

	_, err = subscription.NewSubscription(kernel.NewUUID(), kernel.NewUUID(), subscription.UnknownPlan, time.Time{}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSubscription_Expiry(t *testing.T) {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	s, err := subscription.NewSubscription(kernel.NewUUID(), kernel.NewUUID(), subscription.Starter, start, 1)
	require.NoError(t, err)

	assert.False(t, s.ExpireIfDue(s.End()))
	assert.True(t, s.ExpireIfDue(s.End().Add(time.Second)))
	assert.False(t, s.ExpireIfDue(s.End().Add(time.Hour)))
	assert.False(t, s.Cancel())
}

func TestPlan(t *testing.T) {
	p, err := subscription.ParsePlan("starter")
	require.NoError(t, err)
	assert.Equal(t, "9.90", p.MonthlyPrice().String())
	assert.True(t, subscription.Free.MonthlyPrice().IsZero())

	_, err = subscription.ParsePlan("gold")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
