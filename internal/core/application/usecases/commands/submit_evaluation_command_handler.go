package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/delivery"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/evaluation"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/core/domain/services"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
)

var ErrDeliveryAlreadyEvaluated = fmt.Errorf("%w: delivery already evaluated by this user", errs.ErrStateConflict)

type SubmitEvaluationCommandHandler struct {
	uowFactory MembershipUoWFactory
}

func NewSubmitEvaluationCommandHandler(uowFactory MembershipUoWFactory) SubmitEvaluationCommandHandler {
	return SubmitEvaluationCommandHandler{uowFactory: uowFactory}
}

// Handle records the evaluation and recomputes the rating of the evaluated
// courier or service provider. A delivery is rated once per evaluator, by
// its client, after it was delivered.
func (h *SubmitEvaluationCommandHandler) Handle(ctx context.Context, cmd SubmitEvaluationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if deliveryID := cmd.Subject().DeliveryID; deliveryID != nil {
		if err := h.checkDelivery(ctx, uow, cmd, *deliveryID); err != nil {
			return err
		}
	}

	e, err := evaluation.NewEvaluation(cmd.EvaluationID(), cmd.EvaluatorID(), cmd.EvaluatedID(),
		cmd.Subject(), cmd.Score(), cmd.Comment(), time.Now())
	if err != nil {
		return err
	}

	evaluated, err := uow.UserRepository().Get(ctx, cmd.EvaluatedID())
	if err != nil {
		return err
	}

	evaluations := uow.EvaluationRepository()
	if err = evaluations.Add(ctx, e); err != nil {
		return err
	}

	if err = refreshRating(ctx, uow, evaluated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *SubmitEvaluationCommandHandler) checkDelivery(
	ctx context.Context, uow MembershipUoW, cmd SubmitEvaluationCommand, deliveryID kernel.UUID,
) error {
	d, err := uow.DeliveryRepository().Get(ctx, deliveryID)
	if err != nil {
		return err
	}
	if !d.ClientID().IsEqual(cmd.EvaluatorID()) || !d.CourierID().IsEqual(cmd.EvaluatedID()) {
		return errs.NewAuthorizationError(cmd.EvaluatorID().String(), "evaluate delivery "+d.Reference())
	}
	if d.Status() != delivery.Delivered {
		return errs.NewStateConflictError("delivery", d.Status().String(), "evaluate")
	}

	exists, err := uow.EvaluationRepository().ExistsForDelivery(ctx, cmd.EvaluatorID(), deliveryID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDeliveryAlreadyEvaluated
	}
	return nil
}

// refreshRating recomputes the average score of couriers and providers.
// Other roles carry no rating.
func refreshRating(ctx context.Context, uow MembershipUoW, evaluated *user.User) error {
	scores, err := uow.EvaluationRepository().ListScores(ctx, evaluated.ID())
	if err != nil {
		return err
	}
	rating := services.NewRatingCalculator().Average(scores)

	profiles := uow.ProfileRepository()
	switch evaluated.Role() {
	case user.Courier:
		p, getErr := profiles.GetCourier(ctx, evaluated.ID())
		if getErr != nil {
			return getErr
		}
		if err = p.UpdateRating(rating); err != nil {
			return err
		}
		return profiles.UpdateCourier(ctx, p)
	case user.ServiceProvider:
		p, getErr := profiles.GetProvider(ctx, evaluated.ID())
		if getErr != nil {
			return getErr
		}
		if err = p.UpdateRating(rating); err != nil {
			return err
		}
		return profiles.UpdateProvider(ctx, p)
	default:
		return nil
	}
}
