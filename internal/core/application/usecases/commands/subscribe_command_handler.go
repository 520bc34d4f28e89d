package commands

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/subscription"
)

type SubscribeCommandHandler struct {
	uowFactory MembershipUoWFactory
}

func NewSubscribeCommandHandler(uowFactory MembershipUoWFactory) SubscribeCommandHandler {
	return SubscribeCommandHandler{uowFactory: uowFactory}
}

// Handle starts a new subscription today. Any subscription of the user that
// is still active is cancelled first, so a user holds one active plan.
func (h *SubscribeCommandHandler) Handle(ctx context.Context, cmd SubscribeCommand) error {
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

	if _, err := uow.UserRepository().Get(ctx, cmd.UserID()); err != nil {
		return err
	}

	repo := uow.SubscriptionRepository()
	current, err := repo.ListByUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	for _, s := range current {
		if !s.Cancel() {
			continue
		}
		if err = repo.Update(ctx, s); err != nil {
			return err
		}
	}

	s, err := subscription.NewSubscription(cmd.SubscriptionID(), cmd.UserID(), cmd.Plan(), time.Now(), cmd.Months())
	if err != nil {
		return err
	}
	if err = repo.Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
