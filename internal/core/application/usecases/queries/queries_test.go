package queries_test

import (
	"testing"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/queries"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListMyDeliveriesQuery(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewListMyDeliveriesQuery(id)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.UserID().IsEqual(id))
}

func TestNewListMyDeliveriesQuery_ZeroID(t *testing.T) {
	_, err := queries.NewListMyDeliveriesQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestListMyDeliveriesQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.ListMyDeliveriesQuery{}.Validate()

	assert.ErrorIs(t, err, queries.ErrListMyDeliveriesQueryIsNotConstructed)
}

func TestNewListNotificationsQuery(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewListNotificationsQuery(id, true)

	require.NoError(t, err)
	assert.True(t, query.UnreadOnly())
	assert.ErrorIs(t, queries.ListNotificationsQuery{}.Validate(), queries.ErrListNotificationsQueryIsNotConstructed)
}

func TestNewMonthlyRevenueQuery_YearRange(t *testing.T) {
	tests := []struct {
		year  int
		valid bool
	}{
		{year: 1999, valid: false},
		{year: 2000, valid: true},
		{year: 2025, valid: true},
		{year: 9999, valid: true},
		{year: 10000, valid: false},
	}

	for _, tt := range tests {
		query, err := queries.NewMonthlyRevenueQuery(tt.year)
		if !tt.valid {
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "year %d", tt.year)
			continue
		}
		require.NoError(t, err, "year %d", tt.year)
		assert.Equal(t, tt.year, query.Year())
	}
}

func TestMonthlyRevenueQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.MonthlyRevenueQuery{}.Validate()

	assert.ErrorIs(t, err, queries.ErrMonthlyRevenueQueryIsNotConstructed)
}

func TestNewListDocumentsQuery(t *testing.T) {
	query, err := queries.NewListDocumentsQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.ErrorIs(t, queries.ListDocumentsQuery{}.Validate(), queries.ErrListDocumentsQueryIsNotConstructed)
}

func TestNewListMessagesQuery(t *testing.T) {
	caller := kernel.NewUUID()
	announcementID := kernel.NewUUID()

	query, err := queries.NewListMessagesQuery(caller, false, queries.MessageFilter{AnnouncementID: &announcementID})

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.False(t, query.IsAdmin())
	assert.Nil(t, query.Filter().ReceiverID)
	assert.ErrorIs(t, queries.ListMessagesQuery{}.Validate(), queries.ErrListMessagesQueryIsNotConstructed)
}

func TestNewListMessagesQuery_ZeroFilterID(t *testing.T) {
	zero := kernel.UUID{}

	_, err := queries.NewListMessagesQuery(kernel.NewUUID(), false, queries.MessageFilter{ReceiverID: &zero})

	require.Error(t, err)
}

func TestNewListLoginRecordsQuery_Limit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
		valid bool
	}{
		{limit: 0, want: queries.DefaultLoginRecordLimit, valid: true},
		{limit: 1, want: 1, valid: true},
		{limit: queries.MaxLoginRecordLimit, want: queries.MaxLoginRecordLimit, valid: true},
		{limit: -1, valid: false},
		{limit: queries.MaxLoginRecordLimit + 1, valid: false},
	}

	for _, tt := range tests {
		query, err := queries.NewListLoginRecordsQuery(nil, tt.limit)
		if !tt.valid {
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "limit %d", tt.limit)
			continue
		}
		require.NoError(t, err, "limit %d", tt.limit)
		assert.Equal(t, tt.want, query.Limit())
		assert.Nil(t, query.UserID())
	}
}
