package ports

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/catalog"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/contract"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/evaluation"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/subscription"
)

type ContractRepository interface {
	Add(ctx context.Context, c *contract.Contract) error
	Update(ctx context.Context, c *contract.Contract) error
	Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error)
	ListByOwner(ctx context.Context, ownerID kernel.UUID) ([]*contract.Contract, error)

	// ListActiveEndedBefore returns active contracts whose end date is before t.
	ListActiveEndedBefore(ctx context.Context, t time.Time) ([]*contract.Contract, error)
}

type SubscriptionRepository interface {
	Add(ctx context.Context, s *subscription.Subscription) error
	Update(ctx context.Context, s *subscription.Subscription) error
	ListByUser(ctx context.Context, userID kernel.UUID) ([]*subscription.Subscription, error)
	ListActiveEndedBefore(ctx context.Context, t time.Time) ([]*subscription.Subscription, error)
}

type EvaluationRepository interface {
	Add(ctx context.Context, e *evaluation.Evaluation) error

	// ListScores returns every score the user received.
	ListScores(ctx context.Context, evaluatedID kernel.UUID) ([]int, error)

	// ExistsForDelivery reports whether the evaluator already rated the delivery.
	ExistsForDelivery(ctx context.Context, evaluatorID, deliveryID kernel.UUID) (bool, error)
}

type ServiceRepository interface {
	Add(ctx context.Context, s *catalog.Service) error
	Update(ctx context.Context, s *catalog.Service) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Service, error)
	ListAvailable(ctx context.Context) ([]*catalog.Service, error)
}
