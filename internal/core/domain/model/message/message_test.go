package message_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/message"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	now := time.Now()
	sender := kernel.NewUUID()
	receiver := kernel.NewUUID()

	t.Run("should trim content and keep the announcement", func(t *testing.T) {
		announcementID := kernel.NewUUID()

		m, err := message.NewMessage(kernel.NewUUID(), sender, receiver, &announcementID, "  Is 6pm ok?  ", now)

		require.NoError(t, err)
		assert.Equal(t, "Is 6pm ok?", m.Content())
		require.NotNil(t, m.AnnouncementID())
		assert.True(t, announcementID.IsEqual(*m.AnnouncementID()))
		assert.True(t, m.Involves(sender))
		assert.True(t, m.Involves(receiver))
		assert.False(t, m.Involves(kernel.NewUUID()))
		require.NoError(t, m.Validate())
	})

	t.Run("should accept a message without announcement", func(t *testing.T) {
		m, err := message.NewMessage(kernel.NewUUID(), sender, receiver, nil, "hello", now)

		require.NoError(t, err)
		assert.Nil(t, m.AnnouncementID())
	})

	t.Run("should require content", func(t *testing.T) {
		_, err := message.NewMessage(kernel.NewUUID(), sender, receiver, nil, "   ", now)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should refuse content over the limit", func(t *testing.T) {
		content := strings.Repeat("é", message.MaxContentLength+1)

		_, err := message.NewMessage(kernel.NewUUID(), sender, receiver, nil, content, now)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should refuse messages to oneself", func(t *testing.T) {
		_, err := message.NewMessage(kernel.NewUUID(), sender, sender, nil, "note to self", now)

		assert.ErrorIs(t, err, message.ErrSelfMessage)
	})
}

func TestMessage_Validate_ZeroValue(t *testing.T) {
	var m *message.Message
	assert.ErrorIs(t, m.Validate(), message.ErrMessageIsNotConstructed)

	assert.ErrorIs(t, (&message.Message{}).Validate(), message.ErrMessageIsNotConstructed)
}
