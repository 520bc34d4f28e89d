package commands

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/subscription"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrSubscribeCommandIsNotConstructed = errors.New("SubscribeCommand must be created via NewSubscribeCommand constructor")

type SubscribeCommand struct {
	subscriptionID kernel.UUID
	userID         kernel.UUID
	plan           subscription.Plan
	months         int

	guard guard.ConstructorGuard
}

func NewSubscribeCommand(subscriptionID, userID kernel.UUID, plan subscription.Plan, months int) (SubscribeCommand, error) {
	if err := errors.Join(subscriptionID.Validate(), userID.Validate(), plan.Validate()); err != nil {
		return SubscribeCommand{}, err
	}

	return SubscribeCommand{
		subscriptionID: subscriptionID,
		userID:         userID,
		plan:           plan,
		months:         months,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c SubscribeCommand) Validate() error {
	return c.guard.Validate(ErrSubscribeCommandIsNotConstructed)
}

func (c SubscribeCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}

func (c SubscribeCommand) UserID() kernel.UUID {
	return c.userID
}

func (c SubscribeCommand) Plan() subscription.Plan {
	return c.plan
}

func (c SubscribeCommand) Months() int {
	return c.months
}
