package commands

import (
	"context"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/notification"
)

const accountLink = "/account"

type ExpireMembershipsCommandHandler struct {
	uowFactory MembershipUoWFactory
	notifier   Notifier
	pusher     Pusher
}

func NewExpireMembershipsCommandHandler(
	uowFactory MembershipUoWFactory, notifier Notifier, pusher Pusher,
) ExpireMembershipsCommandHandler {
	return ExpireMembershipsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		pusher:     pusher,
	}
}

// Handle expires active contracts and subscriptions whose end date has
// passed and notifies their owners.
func (h *ExpireMembershipsCommandHandler) Handle(ctx context.Context, cmd ExpireMembershipsCommand) error {
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

	now := cmd.Now()

	contracts := uow.ContractRepository()
	dueContracts, err := contracts.ListActiveEndedBefore(ctx, now)
	if err != nil {
		return err
	}
	for _, c := range dueContracts {
		if !c.ExpireIfDue(now) {
			continue
		}
		if err = contracts.Update(ctx, c); err != nil {
			return err
		}
		if err = h.notifier.Notify(ctx, uow, c.OwnerID(), notification.ContractExpired(c.Reference()), accountLink); err != nil {
			return err
		}
	}

	subscriptions := uow.SubscriptionRepository()
	dueSubscriptions, err := subscriptions.ListActiveEndedBefore(ctx, now)
	if err != nil {
		return err
	}
	for _, s := range dueSubscriptions {
		if !s.ExpireIfDue(now) {
			continue
		}
		if err = subscriptions.Update(ctx, s); err != nil {
			return err
		}
		if err = h.notifier.Notify(ctx, uow, s.UserID(), notification.SubscriptionExpired(s.Plan().String()), accountLink); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.pusher.PushTracked(ctx, uow.TrackedAggregates())
	return nil
}
