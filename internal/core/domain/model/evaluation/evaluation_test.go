package evaluation_test

import (
	"testing"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/evaluation"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvaluation(t *testing.T) {
	now := time.Now()
	deliveryID := kernel.NewUUID()

	t.Run("should accept scores from 1 to 5", func(t *testing.T) {
		for score := evaluation.MinScore; score <= evaluation.MaxScore; score++ {
			e, err := evaluation.NewEvaluation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				evaluation.Subject{DeliveryID: &deliveryID}, score, " fine ", now)

			require.NoError(t, err)
			assert.Equal(t, score, e.Score())
			assert.Equal(t, "fine", e.Comment())
		}
	})

	t.Run("should refuse out of range scores", func(t *testing.T) {
		for _, score := range []int{0, 6, -1} {
			_, err := evaluation.NewEvaluation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				evaluation.Subject{}, score, "", now)

			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should refuse self evaluation", func(t *testing.T) {
		user := kernel.NewUUID()

		_, err := evaluation.NewEvaluation(kernel.NewUUID(), user, user, evaluation.Subject{}, 4, "", now)

		assert.ErrorIs(t, err, evaluation.ErrSelfEvaluation)
	})
}
